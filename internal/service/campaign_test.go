package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/salesboost/salesboost-api/internal/domain"
)

type fakeCampaignRepo struct {
	campaigns map[uint]domain.Campaign
	actions   map[uint]domain.Action

	completions []domain.UserAction
}

func (f *fakeCampaignRepo) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	campaign.ID = 1
	return campaign, nil
}

func (f *fakeCampaignRepo) FindAll(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range f.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCampaignRepo) FindByID(ctx context.Context, id uint) (domain.Campaign, error) {
	campaign, ok := f.campaigns[id]
	if !ok {
		return domain.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

func (f *fakeCampaignRepo) FindActionByID(ctx context.Context, id uint) (domain.Action, error) {
	action, ok := f.actions[id]
	if !ok {
		return domain.Action{}, ErrActionNotFound
	}
	return action, nil
}

func (f *fakeCampaignRepo) SetActionCompletion(ctx context.Context, userID uint, action domain.Action, completed bool) (domain.UserAction, error) {
	ua := domain.UserAction{
		UserID:      userID,
		ActionID:    action.ID,
		ChallengeID: action.ChallengeID,
		Completed:   completed,
	}
	if completed {
		now := time.Now()
		ua.CompletedAt = &now
	}
	f.completions = append(f.completions, ua)
	return ua, nil
}

func TestCampaignService_CreateCampaign(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("end date must be after start date", func(t *testing.T) {
		svc := NewCampaignService(&fakeCampaignRepo{})

		_, err := svc.CreateCampaign(context.Background(), domain.Campaign{
			Name:      "March push",
			StartDate: start,
			EndDate:   start,
		})
		require.ErrorIs(t, err, ErrEmptyDateRange)
	})

	t.Run("defaults to draft status", func(t *testing.T) {
		svc := NewCampaignService(&fakeCampaignRepo{})

		created, err := svc.CreateCampaign(context.Background(), domain.Campaign{
			Name:      "March push",
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 14),
		})
		require.NoError(t, err)
		require.Equal(t, domain.CampaignStatusDraft, created.Status)
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		svc := NewCampaignService(&fakeCampaignRepo{})

		created, err := svc.CreateCampaign(context.Background(), domain.Campaign{
			Name:      "March push",
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 14),
			Status:    domain.CampaignStatusActive,
		})
		require.NoError(t, err)
		require.Equal(t, domain.CampaignStatusActive, created.Status)
	})
}

func TestCampaignService_CompleteAction(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		svc := NewCampaignService(&fakeCampaignRepo{})

		_, err := svc.CompleteAction(context.Background(), 42, 9)
		require.ErrorIs(t, err, ErrActionNotFound)
	})

	t.Run("stamps the completion time", func(t *testing.T) {
		repo := &fakeCampaignRepo{
			actions: map[uint]domain.Action{3: {ID: 3, ChallengeID: 7}},
		}
		svc := NewCampaignService(repo)

		ua, err := svc.CompleteAction(context.Background(), 42, 3)
		require.NoError(t, err)
		require.True(t, ua.Completed)
		require.NotNil(t, ua.CompletedAt)
		require.Equal(t, uint(7), ua.ChallengeID)
	})
}

func TestCampaignService_UncompleteAction(t *testing.T) {
	repo := &fakeCampaignRepo{
		actions: map[uint]domain.Action{3: {ID: 3, ChallengeID: 7}},
	}
	svc := NewCampaignService(repo)

	ua, err := svc.UncompleteAction(context.Background(), 42, 3)
	require.NoError(t, err)
	require.False(t, ua.Completed)
	require.Nil(t, ua.CompletedAt)
}
