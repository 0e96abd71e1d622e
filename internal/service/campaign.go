package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/repository"
)

var (
	ErrCampaignNotFound = repository.ErrCampaignNotFound
	ErrActionNotFound   = repository.ErrActionNotFound
	ErrEmptyDateRange   = errors.New("campaign end date must be after its start date")
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	FindAll(ctx context.Context) ([]domain.Campaign, error)
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
	FindActionByID(ctx context.Context, id uint) (domain.Action, error)
	SetActionCompletion(ctx context.Context, userID uint, action domain.Action, completed bool) (domain.UserAction, error)
}

type CampaignService struct {
	repo CampaignRepository
}

func NewCampaignService(repo CampaignRepository) *CampaignService {
	return &CampaignService{
		repo: repo,
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if !campaign.EndDate.After(campaign.StartDate) {
		return domain.Campaign{}, ErrEmptyDateRange
	}

	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CampaignService) GetCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return campaigns, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, id uint) (domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return campaign, nil
}

// CompleteAction records that the user finished the action. Completing the
// same action twice is idempotent.
func (s *CampaignService) CompleteAction(ctx context.Context, userID, actionID uint) (domain.UserAction, error) {
	action, err := s.repo.FindActionByID(ctx, actionID)
	if err != nil {
		return domain.UserAction{}, fmt.Errorf("s.repo.FindActionByID -> %w", err)
	}

	ua, err := s.repo.SetActionCompletion(ctx, userID, action, true)
	if err != nil {
		return domain.UserAction{}, fmt.Errorf("s.repo.SetActionCompletion -> %w", err)
	}

	return ua, nil
}

// UncompleteAction reverts a completion, clearing the completion timestamp.
func (s *CampaignService) UncompleteAction(ctx context.Context, userID, actionID uint) (domain.UserAction, error) {
	action, err := s.repo.FindActionByID(ctx, actionID)
	if err != nil {
		return domain.UserAction{}, fmt.Errorf("s.repo.FindActionByID -> %w", err)
	}

	ua, err := s.repo.SetActionCompletion(ctx, userID, action, false)
	if err != nil {
		return domain.UserAction{}, fmt.Errorf("s.repo.SetActionCompletion -> %w", err)
	}

	return ua, nil
}
