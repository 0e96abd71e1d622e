package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/salesboost/salesboost-api/internal/domain"
)

type fakeBonusRepo struct {
	bonuses map[uint]domain.DailyBonus
	config  *domain.CampaignBonusConfig

	created []domain.DailyBonus
}

func (f *fakeBonusRepo) Create(ctx context.Context, bonus domain.DailyBonus) (domain.DailyBonus, error) {
	bonus.ID = uint(len(f.created) + 1)
	f.created = append(f.created, bonus)
	return bonus, nil
}

func (f *fakeBonusRepo) FindByID(ctx context.Context, id uint) (domain.DailyBonus, error) {
	bonus, ok := f.bonuses[id]
	if !ok {
		return domain.DailyBonus{}, ErrBonusNotFound
	}
	return bonus, nil
}

func (f *fakeBonusRepo) FindByUserAndCampaign(ctx context.Context, userID, campaignID uint) ([]domain.DailyBonus, error) {
	var out []domain.DailyBonus
	for _, b := range f.bonuses {
		if b.UserID == userID && b.CampaignID == campaignID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBonusRepo) UpdateStatus(ctx context.Context, id uint, status domain.BonusStatus) (domain.DailyBonus, error) {
	bonus := f.bonuses[id]
	bonus.Status = status
	f.bonuses[id] = bonus
	return bonus, nil
}

func (f *fakeBonusRepo) UpsertConfig(ctx context.Context, conf domain.CampaignBonusConfig) (domain.CampaignBonusConfig, error) {
	f.config = &conf
	return conf, nil
}

func (f *fakeBonusRepo) FindConfig(ctx context.Context, campaignID uint) (domain.CampaignBonusConfig, error) {
	if f.config == nil || f.config.CampaignID != campaignID {
		return domain.CampaignBonusConfig{}, ErrBonusConfigNotFound
	}
	return *f.config, nil
}

type fakeBonusCampaignRepo struct {
	campaigns map[uint]domain.Campaign
}

func (f *fakeBonusCampaignRepo) FindByID(ctx context.Context, id uint) (domain.Campaign, error) {
	campaign, ok := f.campaigns[id]
	if !ok {
		return domain.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

func TestBonusService_DeclareBonus(t *testing.T) {
	bonusDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("amount is frozen from the config by type", func(t *testing.T) {
		repo := &fakeBonusRepo{
			config: &domain.CampaignBonusConfig{
				CampaignID:             1,
				BasketBonusAmount:      euros("1.00"),
				SponsorshipBonusAmount: euros("3.00"),
			},
		}
		svc := NewBonusService(repo, &fakeBonusCampaignRepo{
			campaigns: map[uint]domain.Campaign{1: {ID: 1, BonusesEnabled: true}},
		})

		basket, err := svc.DeclareBonus(context.Background(), 42, 1, bonusDate, domain.BonusTypeBasket)
		require.NoError(t, err)
		require.True(t, basket.Amount.Equal(euros("1.00")))
		require.Equal(t, domain.BonusStatusPending, basket.Status)

		sponsorship, err := svc.DeclareBonus(context.Background(), 42, 1, bonusDate, domain.BonusTypeSponsorship)
		require.NoError(t, err)
		require.True(t, sponsorship.Amount.Equal(euros("3.00")))
	})

	t.Run("later config changes never touch declared bonuses", func(t *testing.T) {
		repo := &fakeBonusRepo{
			config: &domain.CampaignBonusConfig{
				CampaignID:        1,
				BasketBonusAmount: euros("1.00"),
			},
		}
		svc := NewBonusService(repo, &fakeBonusCampaignRepo{
			campaigns: map[uint]domain.Campaign{1: {ID: 1, BonusesEnabled: true}},
		})

		declared, err := svc.DeclareBonus(context.Background(), 42, 1, bonusDate, domain.BonusTypeBasket)
		require.NoError(t, err)

		_, err = svc.SetBonusConfig(context.Background(), domain.CampaignBonusConfig{
			CampaignID:        1,
			BasketBonusAmount: euros("2.00"),
		})
		require.NoError(t, err)

		require.True(t, declared.Amount.Equal(euros("1.00")))
		require.True(t, repo.created[0].Amount.Equal(euros("1.00")))
	})

	t.Run("bonuses disabled on the campaign", func(t *testing.T) {
		svc := NewBonusService(&fakeBonusRepo{}, &fakeBonusCampaignRepo{
			campaigns: map[uint]domain.Campaign{1: {ID: 1, BonusesEnabled: false}},
		})

		_, err := svc.DeclareBonus(context.Background(), 42, 1, bonusDate, domain.BonusTypeBasket)
		require.ErrorIs(t, err, ErrBonusesDisabled)
	})

	t.Run("missing config", func(t *testing.T) {
		svc := NewBonusService(&fakeBonusRepo{}, &fakeBonusCampaignRepo{
			campaigns: map[uint]domain.Campaign{1: {ID: 1, BonusesEnabled: true}},
		})

		_, err := svc.DeclareBonus(context.Background(), 42, 1, bonusDate, domain.BonusTypeBasket)
		require.ErrorIs(t, err, ErrBonusConfigNotFound)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		svc := NewBonusService(&fakeBonusRepo{}, &fakeBonusCampaignRepo{})

		_, err := svc.DeclareBonus(context.Background(), 42, 9, bonusDate, domain.BonusTypeBasket)
		require.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestBonusService_ReviewBonus(t *testing.T) {
	t.Run("approves a pending bonus", func(t *testing.T) {
		repo := &fakeBonusRepo{
			bonuses: map[uint]domain.DailyBonus{
				5: {ID: 5, Status: domain.BonusStatusPending},
			},
		}
		svc := NewBonusService(repo, &fakeBonusCampaignRepo{})

		got, err := svc.ReviewBonus(context.Background(), 5, domain.BonusStatusApproved)
		require.NoError(t, err)
		require.Equal(t, domain.BonusStatusApproved, got.Status)
	})

	t.Run("refuses to re-review an approved bonus", func(t *testing.T) {
		repo := &fakeBonusRepo{
			bonuses: map[uint]domain.DailyBonus{
				5: {ID: 5, Status: domain.BonusStatusApproved},
			},
		}
		svc := NewBonusService(repo, &fakeBonusCampaignRepo{})

		_, err := svc.ReviewBonus(context.Background(), 5, domain.BonusStatusRejected)
		require.ErrorIs(t, err, ErrBonusNotPending)
	})

	t.Run("unknown bonus", func(t *testing.T) {
		svc := NewBonusService(&fakeBonusRepo{}, &fakeBonusCampaignRepo{})

		_, err := svc.ReviewBonus(context.Background(), 5, domain.BonusStatusApproved)
		require.ErrorIs(t, err, ErrBonusNotFound)
	})
}

func TestBonusService_SetBonusConfig(t *testing.T) {
	t.Run("unknown campaign", func(t *testing.T) {
		svc := NewBonusService(&fakeBonusRepo{}, &fakeBonusCampaignRepo{})

		_, err := svc.SetBonusConfig(context.Background(), domain.CampaignBonusConfig{CampaignID: 9})
		require.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("replaces the existing config", func(t *testing.T) {
		repo := &fakeBonusRepo{
			config: &domain.CampaignBonusConfig{CampaignID: 1, BasketBonusAmount: euros("1.00")},
		}
		svc := NewBonusService(repo, &fakeBonusCampaignRepo{
			campaigns: map[uint]domain.Campaign{1: {ID: 1}},
		})

		got, err := svc.SetBonusConfig(context.Background(), domain.CampaignBonusConfig{
			CampaignID:        1,
			BasketBonusAmount: euros("2.50"),
		})
		require.NoError(t, err)
		require.True(t, got.BasketBonusAmount.Equal(euros("2.50")))
		require.True(t, repo.config.BasketBonusAmount.Equal(euros("2.50")))
	})
}
