package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/repository"
)

var (
	ErrValidationNotFound     = repository.ErrValidationNotFound
	ErrConditionNotFound      = repository.ErrConditionNotFound
	ErrUnlockConditionsUnmet  = errors.New("all unlock conditions must be fulfilled before approval")
	ErrConditionNotInCampaign = errors.New("unlock condition does not belong to the validation's campaign")
)

type ValidationRepository interface {
	FindOrCreate(ctx context.Context, userID, campaignID uint) (domain.CampaignValidation, error)
	FindByID(ctx context.Context, id uint) (domain.CampaignValidation, error)
	FindByCampaignID(ctx context.Context, campaignID uint) ([]domain.CampaignValidation, error)
	UpdateStatus(ctx context.Context, userID, campaignID uint, status domain.ValidationStatus, comment string, managerID uint) (domain.CampaignValidation, error)
	CreateConditions(ctx context.Context, conditions []domain.UnlockCondition) ([]domain.UnlockCondition, error)
	FindConditionByID(ctx context.Context, id uint) (domain.UnlockCondition, error)
	FindConditionsByCampaignID(ctx context.Context, campaignID uint) ([]domain.UnlockCondition, error)
	UpsertFulfillment(ctx context.Context, validationID, conditionID uint, isFulfilled bool, comment string, managerID uint) (domain.ConditionFulfillment, error)
	FindFulfillments(ctx context.Context, validationID uint) ([]domain.ConditionFulfillment, error)
}

// ValidationService drives the manager-side certification of a user's
// campaign completion: pending until a manager approves or rejects, with an
// optional checklist of unlock conditions gating approval.
type ValidationService struct {
	repo ValidationRepository
}

func NewValidationService(repo ValidationRepository) *ValidationService {
	return &ValidationService{
		repo: repo,
	}
}

func (s *ValidationService) GetValidationsForCampaign(ctx context.Context, campaignID uint) ([]domain.CampaignValidation, error) {
	validations, err := s.repo.FindByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCampaignID -> %w", err)
	}

	return validations, nil
}

// GetMyStatus returns the user's validation record for the campaign, creating
// a pending one when it does not exist yet.
func (s *ValidationService) GetMyStatus(ctx context.Context, userID, campaignID uint) (domain.CampaignValidation, error) {
	validation, err := s.repo.FindOrCreate(ctx, userID, campaignID)
	if err != nil {
		return domain.CampaignValidation{}, fmt.Errorf("s.repo.FindOrCreate -> %w", err)
	}

	return validation, nil
}

// UpdateValidation moves the (user, campaign) validation to the given status,
// creating the record when missing. Approval is blocked while any unlock
// condition of the campaign lacks a fulfilled fulfillment. Resetting to
// pending is allowed as an administrative override and clears the validation
// stamps.
func (s *ValidationService) UpdateValidation(ctx context.Context, managerID, userID, campaignID uint, status domain.ValidationStatus, comment string) (domain.CampaignValidation, error) {
	if status == domain.ValidationStatusApproved {
		if err := s.checkUnlockConditions(ctx, userID, campaignID); err != nil {
			return domain.CampaignValidation{}, err
		}
	}

	validation, err := s.repo.UpdateStatus(ctx, userID, campaignID, status, comment, managerID)
	if err != nil {
		return domain.CampaignValidation{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return validation, nil
}

func (s *ValidationService) checkUnlockConditions(ctx context.Context, userID, campaignID uint) error {
	conditions, err := s.repo.FindConditionsByCampaignID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("s.repo.FindConditionsByCampaignID -> %w", err)
	}
	if len(conditions) == 0 {
		return nil
	}

	validation, err := s.repo.FindOrCreate(ctx, userID, campaignID)
	if err != nil {
		return fmt.Errorf("s.repo.FindOrCreate -> %w", err)
	}

	fulfillments, err := s.repo.FindFulfillments(ctx, validation.ID)
	if err != nil {
		return fmt.Errorf("s.repo.FindFulfillments -> %w", err)
	}

	fulfilled := make(map[uint]bool, len(fulfillments))
	for _, f := range fulfillments {
		fulfilled[f.ConditionID] = f.IsFulfilled
	}

	for _, condition := range conditions {
		if !fulfilled[condition.ID] {
			return ErrUnlockConditionsUnmet
		}
	}

	return nil
}

// CreateUnlockConditions bulk-inserts the campaign's checklist. Conditions
// without an explicit display order are numbered by insertion order.
func (s *ValidationService) CreateUnlockConditions(ctx context.Context, campaignID uint, conditions []domain.UnlockCondition) ([]domain.UnlockCondition, error) {
	for i := range conditions {
		conditions[i].CampaignID = campaignID
		if conditions[i].DisplayOrder == 0 {
			conditions[i].DisplayOrder = i + 1
		}
	}

	created, err := s.repo.CreateConditions(ctx, conditions)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CreateConditions -> %w", err)
	}

	return created, nil
}

// SetFulfillment records a manager's confirmation of one checklist item. The
// condition must belong to the campaign of the validation being updated.
func (s *ValidationService) SetFulfillment(ctx context.Context, managerID, validationID, conditionID uint, isFulfilled bool, comment string) (domain.ConditionFulfillment, error) {
	validation, err := s.repo.FindByID(ctx, validationID)
	if err != nil {
		return domain.ConditionFulfillment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	condition, err := s.repo.FindConditionByID(ctx, conditionID)
	if err != nil {
		return domain.ConditionFulfillment{}, fmt.Errorf("s.repo.FindConditionByID -> %w", err)
	}
	if condition.CampaignID != validation.CampaignID {
		return domain.ConditionFulfillment{}, ErrConditionNotInCampaign
	}

	fulfillment, err := s.repo.UpsertFulfillment(ctx, validationID, conditionID, isFulfilled, comment, managerID)
	if err != nil {
		return domain.ConditionFulfillment{}, fmt.Errorf("s.repo.UpsertFulfillment -> %w", err)
	}

	return fulfillment, nil
}

// GetFulfillmentsForValidation pairs every condition of the validation's
// campaign with its fulfillment row. A condition never touched by a manager
// has a nil fulfillment and counts as not fulfilled.
func (s *ValidationService) GetFulfillmentsForValidation(ctx context.Context, validationID uint) ([]domain.ConditionWithFulfillment, error) {
	validation, err := s.repo.FindByID(ctx, validationID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	conditions, err := s.repo.FindConditionsByCampaignID(ctx, validation.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindConditionsByCampaignID -> %w", err)
	}

	fulfillments, err := s.repo.FindFulfillments(ctx, validationID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFulfillments -> %w", err)
	}

	byCondition := make(map[uint]domain.ConditionFulfillment, len(fulfillments))
	for _, f := range fulfillments {
		byCondition[f.ConditionID] = f
	}

	result := make([]domain.ConditionWithFulfillment, len(conditions))
	for i, condition := range conditions {
		result[i] = domain.ConditionWithFulfillment{Condition: condition}
		if f, ok := byCondition[condition.ID]; ok {
			fulfillment := f
			result[i].Fulfillment = &fulfillment
		}
	}

	return result, nil
}
