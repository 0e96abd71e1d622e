package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/salesboost/salesboost-api/internal/domain"
)

type EarningsCampaignRepository interface {
	FindChallenges(ctx context.Context, campaignID uint) ([]domain.Challenge, error)
	CountActions(ctx context.Context, challengeID uint) (int, error)
	CountCompletedActions(ctx context.Context, challengeID, userID uint) (int, error)
}

type EarningsBonusRepository interface {
	FindApproved(ctx context.Context, userID, campaignID uint) ([]domain.DailyBonus, error)
}

// EarningsService computes what a user has earned on a campaign. It is
// read-only reporting code: unknown users or campaigns yield zero-valued
// aggregates, never an error.
type EarningsService struct {
	campaignRepo EarningsCampaignRepository
	bonusRepo    EarningsBonusRepository
}

func NewEarningsService(campaignRepo EarningsCampaignRepository, bonusRepo EarningsBonusRepository) *EarningsService {
	return &EarningsService{
		campaignRepo: campaignRepo,
		bonusRepo:    bonusRepo,
	}
}

// ComputeCampaignEarnings sums the euro values of the user's fully-completed
// challenges. A challenge pays all-or-nothing: partial completion earns 0.
// Challenges without actions count toward neither the earned nor the maximum
// sum.
func (s *EarningsService) ComputeCampaignEarnings(ctx context.Context, userID, campaignID uint) (domain.CampaignEarnings, error) {
	challenges, err := s.campaignRepo.FindChallenges(ctx, campaignID)
	if err != nil {
		return domain.CampaignEarnings{}, fmt.Errorf("s.campaignRepo.FindChallenges -> %w", err)
	}

	earned := decimal.Zero
	maxPossible := decimal.Zero

	for _, challenge := range challenges {
		totalActions, err := s.campaignRepo.CountActions(ctx, challenge.ID)
		if err != nil {
			return domain.CampaignEarnings{}, fmt.Errorf("s.campaignRepo.CountActions -> %w", err)
		}
		if totalActions == 0 {
			continue
		}

		maxPossible = maxPossible.Add(challenge.ValueInEuro)

		completedActions, err := s.campaignRepo.CountCompletedActions(ctx, challenge.ID, userID)
		if err != nil {
			return domain.CampaignEarnings{}, fmt.Errorf("s.campaignRepo.CountCompletedActions -> %w", err)
		}
		if completedActions == totalActions {
			earned = earned.Add(challenge.ValueInEuro)
		}
	}

	return domain.CampaignEarnings{
		CampaignEarnings:    earned,
		MaxPossibleEarnings: maxPossible,
	}, nil
}

// ComputeBonusTotals sums the user's approved daily bonuses on the campaign.
// Pending and rejected bonuses are excluded.
func (s *EarningsService) ComputeBonusTotals(ctx context.Context, userID, campaignID uint) (domain.BonusTotals, error) {
	bonuses, err := s.bonusRepo.FindApproved(ctx, userID, campaignID)
	if err != nil {
		return domain.BonusTotals{}, fmt.Errorf("s.bonusRepo.FindApproved -> %w", err)
	}

	totals := domain.BonusTotals{
		TotalBonusAmount: decimal.Zero,
	}

	for _, bonus := range bonuses {
		totals.TotalBonusAmount = totals.TotalBonusAmount.Add(bonus.Amount)
		totals.BonusCount++

		switch bonus.Type {
		case domain.BonusTypeBasket:
			totals.BasketCount++
		case domain.BonusTypeSponsorship:
			totals.SponsorshipCount++
		}
	}

	return totals, nil
}

// CombineEarnings merges challenge earnings with bonus totals. Bonuses count
// fully toward the maximum since they are not capped independently. The
// completion percentage is campaignEarnings / maxPossibleEarnings, and 0 when
// the maximum is 0.
func (s *EarningsService) CombineEarnings(campaignEarnings, totalBonusAmount, maxPossibleCampaignEuros decimal.Decimal) domain.EarningsData {
	maxPossible := maxPossibleCampaignEuros.Add(totalBonusAmount)

	completionPercentage := 0.0
	if !maxPossible.IsZero() {
		completionPercentage = campaignEarnings.
			Div(maxPossible).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
	}

	return domain.EarningsData{
		CampaignEarnings:     campaignEarnings,
		TotalBonusAmount:     totalBonusAmount,
		TotalEarnings:        campaignEarnings.Add(totalBonusAmount),
		MaxPossibleEarnings:  maxPossible,
		CompletionPercentage: completionPercentage,
	}
}

// GetEarnings is the full report for one user on one campaign.
func (s *EarningsService) GetEarnings(ctx context.Context, userID, campaignID uint) (domain.EarningsData, error) {
	campaignEarnings, err := s.ComputeCampaignEarnings(ctx, userID, campaignID)
	if err != nil {
		return domain.EarningsData{}, fmt.Errorf("s.ComputeCampaignEarnings -> %w", err)
	}

	bonusTotals, err := s.ComputeBonusTotals(ctx, userID, campaignID)
	if err != nil {
		return domain.EarningsData{}, fmt.Errorf("s.ComputeBonusTotals -> %w", err)
	}

	return s.CombineEarnings(
		campaignEarnings.CampaignEarnings,
		bonusTotals.TotalBonusAmount,
		campaignEarnings.MaxPossibleEarnings,
	), nil
}
