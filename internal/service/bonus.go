package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/repository"
)

var (
	ErrBonusNotFound       = repository.ErrBonusNotFound
	ErrBonusConfigNotFound = repository.ErrBonusConfigNotFound
	ErrBonusesDisabled     = errors.New("bonuses are not enabled for this campaign")
	ErrBonusNotPending     = errors.New("only pending bonuses can be reviewed")
)

type BonusRepository interface {
	Create(ctx context.Context, bonus domain.DailyBonus) (domain.DailyBonus, error)
	FindByID(ctx context.Context, id uint) (domain.DailyBonus, error)
	FindByUserAndCampaign(ctx context.Context, userID, campaignID uint) ([]domain.DailyBonus, error)
	UpdateStatus(ctx context.Context, id uint, status domain.BonusStatus) (domain.DailyBonus, error)
	UpsertConfig(ctx context.Context, conf domain.CampaignBonusConfig) (domain.CampaignBonusConfig, error)
	FindConfig(ctx context.Context, campaignID uint) (domain.CampaignBonusConfig, error)
}

type BonusCampaignRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
}

type BonusService struct {
	repo         BonusRepository
	campaignRepo BonusCampaignRepository
}

func NewBonusService(repo BonusRepository, campaignRepo BonusCampaignRepository) *BonusService {
	return &BonusService{
		repo:         repo,
		campaignRepo: campaignRepo,
	}
}

// DeclareBonus creates a pending daily bonus for the user. The amount is
// frozen from the campaign's bonus config at creation time, so later config
// changes never affect declared bonuses.
func (s *BonusService) DeclareBonus(ctx context.Context, userID, campaignID uint, bonusDate time.Time, bonusType domain.BonusType) (domain.DailyBonus, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return domain.DailyBonus{}, fmt.Errorf("s.campaignRepo.FindByID -> %w", err)
	}
	if !campaign.BonusesEnabled {
		return domain.DailyBonus{}, ErrBonusesDisabled
	}

	conf, err := s.repo.FindConfig(ctx, campaignID)
	if err != nil {
		if errors.Is(err, ErrBonusConfigNotFound) {
			return domain.DailyBonus{}, ErrBonusConfigNotFound
		}

		return domain.DailyBonus{}, fmt.Errorf("s.repo.FindConfig -> %w", err)
	}

	amount := conf.BasketBonusAmount
	if bonusType == domain.BonusTypeSponsorship {
		amount = conf.SponsorshipBonusAmount
	}

	created, err := s.repo.Create(ctx, domain.DailyBonus{
		UserID:     userID,
		CampaignID: campaignID,
		BonusDate:  bonusDate,
		Type:       bonusType,
		Amount:     amount,
		Status:     domain.BonusStatusPending,
	})
	if err != nil {
		return domain.DailyBonus{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ReviewBonus moves a pending bonus to approved or rejected.
func (s *BonusService) ReviewBonus(ctx context.Context, bonusID uint, status domain.BonusStatus) (domain.DailyBonus, error) {
	bonus, err := s.repo.FindByID(ctx, bonusID)
	if err != nil {
		return domain.DailyBonus{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if bonus.Status != domain.BonusStatusPending {
		return domain.DailyBonus{}, ErrBonusNotPending
	}

	updated, err := s.repo.UpdateStatus(ctx, bonusID, status)
	if err != nil {
		return domain.DailyBonus{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return updated, nil
}

// GetBonuses lists all of the user's bonuses on the campaign, regardless of
// status. Pending and rejected rows are surfaced for the UI but never counted
// in earnings.
func (s *BonusService) GetBonuses(ctx context.Context, userID, campaignID uint) ([]domain.DailyBonus, error) {
	bonuses, err := s.repo.FindByUserAndCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserAndCampaign -> %w", err)
	}

	return bonuses, nil
}

func (s *BonusService) SetBonusConfig(ctx context.Context, conf domain.CampaignBonusConfig) (domain.CampaignBonusConfig, error) {
	if _, err := s.campaignRepo.FindByID(ctx, conf.CampaignID); err != nil {
		return domain.CampaignBonusConfig{}, fmt.Errorf("s.campaignRepo.FindByID -> %w", err)
	}

	upserted, err := s.repo.UpsertConfig(ctx, conf)
	if err != nil {
		return domain.CampaignBonusConfig{}, fmt.Errorf("s.repo.UpsertConfig -> %w", err)
	}

	return upserted, nil
}
