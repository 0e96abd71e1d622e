package repository

import (
	"context"
	"fmt"

	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/repository/dao"
)

var (
	ErrValidationNotFound = dao.ErrValidationNotFound
	ErrConditionNotFound  = dao.ErrConditionNotFound
)

type ValidationDAO interface {
	FindOrCreate(ctx context.Context, userID, campaignID uint) (dao.CampaignValidation, error)
	FindByID(ctx context.Context, id uint) (dao.CampaignValidation, error)
	FindByCampaignID(ctx context.Context, campaignID uint) ([]dao.CampaignValidation, error)
	UpdateStatus(ctx context.Context, userID, campaignID uint, status, comment string, managerID uint) (dao.CampaignValidation, error)
	InsertConditions(ctx context.Context, conditions []dao.UnlockCondition) ([]dao.UnlockCondition, error)
	FindConditionByID(ctx context.Context, id uint) (dao.UnlockCondition, error)
	FindConditionsByCampaignID(ctx context.Context, campaignID uint) ([]dao.UnlockCondition, error)
	UpsertFulfillment(ctx context.Context, validationID, conditionID uint, isFulfilled bool, comment string, managerID uint) (dao.ConditionFulfillment, error)
	FindFulfillmentsByValidationID(ctx context.Context, validationID uint) ([]dao.ConditionFulfillment, error)
}

type ValidationRepository struct {
	dao ValidationDAO
}

func NewValidationRepository(dao ValidationDAO) *ValidationRepository {
	return &ValidationRepository{
		dao: dao,
	}
}

func (r *ValidationRepository) FindOrCreate(ctx context.Context, userID, campaignID uint) (domain.CampaignValidation, error) {
	found, err := r.dao.FindOrCreate(ctx, userID, campaignID)
	if err != nil {
		return domain.CampaignValidation{}, fmt.Errorf("r.dao.FindOrCreate -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ValidationRepository) FindByID(ctx context.Context, id uint) (domain.CampaignValidation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.CampaignValidation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ValidationRepository) FindByCampaignID(ctx context.Context, campaignID uint) ([]domain.CampaignValidation, error) {
	found, err := r.dao.FindByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCampaignID -> %w", err)
	}

	validations := make([]domain.CampaignValidation, len(found))
	for i, v := range found {
		validations[i] = r.daoToDomain(v)
	}

	return validations, nil
}

func (r *ValidationRepository) UpdateStatus(ctx context.Context, userID, campaignID uint, status domain.ValidationStatus, comment string, managerID uint) (domain.CampaignValidation, error) {
	updated, err := r.dao.UpdateStatus(ctx, userID, campaignID, string(status), comment, managerID)
	if err != nil {
		return domain.CampaignValidation{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ValidationRepository) CreateConditions(ctx context.Context, conditions []domain.UnlockCondition) ([]domain.UnlockCondition, error) {
	daoConditions := make([]dao.UnlockCondition, len(conditions))
	for i, c := range conditions {
		daoConditions[i] = dao.UnlockCondition{
			CampaignID:   c.CampaignID,
			Description:  c.Description,
			DisplayOrder: c.DisplayOrder,
		}
	}

	created, err := r.dao.InsertConditions(ctx, daoConditions)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertConditions -> %w", err)
	}

	result := make([]domain.UnlockCondition, len(created))
	for i, c := range created {
		result[i] = r.conditionDaoToDomain(c)
	}

	return result, nil
}

func (r *ValidationRepository) FindConditionByID(ctx context.Context, id uint) (domain.UnlockCondition, error) {
	found, err := r.dao.FindConditionByID(ctx, id)
	if err != nil {
		return domain.UnlockCondition{}, fmt.Errorf("r.dao.FindConditionByID -> %w", err)
	}

	return r.conditionDaoToDomain(found), nil
}

func (r *ValidationRepository) FindConditionsByCampaignID(ctx context.Context, campaignID uint) ([]domain.UnlockCondition, error) {
	found, err := r.dao.FindConditionsByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindConditionsByCampaignID -> %w", err)
	}

	conditions := make([]domain.UnlockCondition, len(found))
	for i, c := range found {
		conditions[i] = r.conditionDaoToDomain(c)
	}

	return conditions, nil
}

func (r *ValidationRepository) UpsertFulfillment(ctx context.Context, validationID, conditionID uint, isFulfilled bool, comment string, managerID uint) (domain.ConditionFulfillment, error) {
	upserted, err := r.dao.UpsertFulfillment(ctx, validationID, conditionID, isFulfilled, comment, managerID)
	if err != nil {
		return domain.ConditionFulfillment{}, fmt.Errorf("r.dao.UpsertFulfillment -> %w", err)
	}

	return r.fulfillmentDaoToDomain(upserted), nil
}

func (r *ValidationRepository) FindFulfillments(ctx context.Context, validationID uint) ([]domain.ConditionFulfillment, error) {
	found, err := r.dao.FindFulfillmentsByValidationID(ctx, validationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFulfillmentsByValidationID -> %w", err)
	}

	fulfillments := make([]domain.ConditionFulfillment, len(found))
	for i, f := range found {
		fulfillments[i] = r.fulfillmentDaoToDomain(f)
	}

	return fulfillments, nil
}

func (r *ValidationRepository) daoToDomain(v dao.CampaignValidation) domain.CampaignValidation {
	return domain.CampaignValidation{
		ID:          v.ID,
		UserID:      v.UserID,
		CampaignID:  v.CampaignID,
		Status:      domain.ValidationStatus(v.Status),
		ValidatedBy: v.ValidatedBy,
		ValidatedAt: v.ValidatedAt,
		Comment:     v.Comment,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (r *ValidationRepository) conditionDaoToDomain(c dao.UnlockCondition) domain.UnlockCondition {
	return domain.UnlockCondition{
		ID:           c.ID,
		CampaignID:   c.CampaignID,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
	}
}

func (r *ValidationRepository) fulfillmentDaoToDomain(f dao.ConditionFulfillment) domain.ConditionFulfillment {
	return domain.ConditionFulfillment{
		ID:           f.ID,
		ValidationID: f.ValidationID,
		ConditionID:  f.ConditionID,
		IsFulfilled:  f.IsFulfilled,
		Comment:      f.Comment,
		FulfilledBy:  f.FulfilledBy,
		FulfilledAt:  f.FulfilledAt,
	}
}
