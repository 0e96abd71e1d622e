package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/salesboost/salesboost-api/internal/domain"
)

type fakeValidationRepo struct {
	validation   domain.CampaignValidation
	conditions   []domain.UnlockCondition
	fulfillments []domain.ConditionFulfillment

	updateStatusFn      func(ctx context.Context, userID, campaignID uint, status domain.ValidationStatus, comment string, managerID uint) (domain.CampaignValidation, error)
	createConditionsFn  func(ctx context.Context, conditions []domain.UnlockCondition) ([]domain.UnlockCondition, error)
	upsertFulfillmentFn func(ctx context.Context, validationID, conditionID uint, isFulfilled bool, comment string, managerID uint) (domain.ConditionFulfillment, error)
	findConditionFn     func(ctx context.Context, id uint) (domain.UnlockCondition, error)
}

func (f *fakeValidationRepo) FindOrCreate(ctx context.Context, userID, campaignID uint) (domain.CampaignValidation, error) {
	return f.validation, nil
}

func (f *fakeValidationRepo) FindByID(ctx context.Context, id uint) (domain.CampaignValidation, error) {
	if f.validation.ID != id {
		return domain.CampaignValidation{}, ErrValidationNotFound
	}
	return f.validation, nil
}

func (f *fakeValidationRepo) FindByCampaignID(ctx context.Context, campaignID uint) ([]domain.CampaignValidation, error) {
	return []domain.CampaignValidation{f.validation}, nil
}

func (f *fakeValidationRepo) UpdateStatus(ctx context.Context, userID, campaignID uint, status domain.ValidationStatus, comment string, managerID uint) (domain.CampaignValidation, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, userID, campaignID, status, comment, managerID)
	}

	v := f.validation
	v.Status = status
	v.Comment = comment
	if status == domain.ValidationStatusPending {
		v.ValidatedBy = nil
		v.ValidatedAt = nil
	} else {
		now := time.Now()
		v.ValidatedBy = &managerID
		v.ValidatedAt = &now
	}
	return v, nil
}

func (f *fakeValidationRepo) CreateConditions(ctx context.Context, conditions []domain.UnlockCondition) ([]domain.UnlockCondition, error) {
	if f.createConditionsFn != nil {
		return f.createConditionsFn(ctx, conditions)
	}
	return conditions, nil
}

func (f *fakeValidationRepo) FindConditionByID(ctx context.Context, id uint) (domain.UnlockCondition, error) {
	if f.findConditionFn != nil {
		return f.findConditionFn(ctx, id)
	}
	for _, c := range f.conditions {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.UnlockCondition{}, ErrConditionNotFound
}

func (f *fakeValidationRepo) FindConditionsByCampaignID(ctx context.Context, campaignID uint) ([]domain.UnlockCondition, error) {
	return f.conditions, nil
}

func (f *fakeValidationRepo) UpsertFulfillment(ctx context.Context, validationID, conditionID uint, isFulfilled bool, comment string, managerID uint) (domain.ConditionFulfillment, error) {
	if f.upsertFulfillmentFn != nil {
		return f.upsertFulfillmentFn(ctx, validationID, conditionID, isFulfilled, comment, managerID)
	}
	return domain.ConditionFulfillment{
		ValidationID: validationID,
		ConditionID:  conditionID,
		IsFulfilled:  isFulfilled,
		Comment:      comment,
	}, nil
}

func (f *fakeValidationRepo) FindFulfillments(ctx context.Context, validationID uint) ([]domain.ConditionFulfillment, error) {
	return f.fulfillments, nil
}

func TestValidationService_UpdateValidation(t *testing.T) {
	t.Run("approval blocked while a condition is unfulfilled", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, UserID: 42, CampaignID: 1, Status: domain.ValidationStatusPending},
			conditions: []domain.UnlockCondition{
				{ID: 1, CampaignID: 1},
				{ID: 2, CampaignID: 1},
			},
			fulfillments: []domain.ConditionFulfillment{
				{ValidationID: 7, ConditionID: 1, IsFulfilled: true},
			},
		}
		svc := NewValidationService(repo)

		_, err := svc.UpdateValidation(context.Background(), 99, 42, 1, domain.ValidationStatusApproved, "")
		require.ErrorIs(t, err, ErrUnlockConditionsUnmet)
	})

	t.Run("approval blocked when a fulfillment was reverted", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, UserID: 42, CampaignID: 1, Status: domain.ValidationStatusPending},
			conditions: []domain.UnlockCondition{
				{ID: 1, CampaignID: 1},
			},
			fulfillments: []domain.ConditionFulfillment{
				{ValidationID: 7, ConditionID: 1, IsFulfilled: false},
			},
		}
		svc := NewValidationService(repo)

		_, err := svc.UpdateValidation(context.Background(), 99, 42, 1, domain.ValidationStatusApproved, "")
		require.ErrorIs(t, err, ErrUnlockConditionsUnmet)
	})

	t.Run("approval passes when every condition is fulfilled", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, UserID: 42, CampaignID: 1, Status: domain.ValidationStatusPending},
			conditions: []domain.UnlockCondition{
				{ID: 1, CampaignID: 1},
				{ID: 2, CampaignID: 1},
			},
			fulfillments: []domain.ConditionFulfillment{
				{ValidationID: 7, ConditionID: 1, IsFulfilled: true},
				{ValidationID: 7, ConditionID: 2, IsFulfilled: true},
			},
		}
		svc := NewValidationService(repo)

		got, err := svc.UpdateValidation(context.Background(), 99, 42, 1, domain.ValidationStatusApproved, "well done")
		require.NoError(t, err)
		require.Equal(t, domain.ValidationStatusApproved, got.Status)
		require.NotNil(t, got.ValidatedBy)
		require.Equal(t, uint(99), *got.ValidatedBy)
		require.NotNil(t, got.ValidatedAt)
	})

	t.Run("approval passes when the campaign has no conditions", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, UserID: 42, CampaignID: 1, Status: domain.ValidationStatusPending},
		}
		svc := NewValidationService(repo)

		got, err := svc.UpdateValidation(context.Background(), 99, 42, 1, domain.ValidationStatusApproved, "")
		require.NoError(t, err)
		require.Equal(t, domain.ValidationStatusApproved, got.Status)
	})

	t.Run("rejection skips the condition check", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, UserID: 42, CampaignID: 1, Status: domain.ValidationStatusPending},
			conditions: []domain.UnlockCondition{
				{ID: 1, CampaignID: 1},
			},
		}
		svc := NewValidationService(repo)

		got, err := svc.UpdateValidation(context.Background(), 99, 42, 1, domain.ValidationStatusRejected, "missing proof")
		require.NoError(t, err)
		require.Equal(t, domain.ValidationStatusRejected, got.Status)
		require.Equal(t, "missing proof", got.Comment)
	})

	t.Run("reset to pending clears the validation stamps", func(t *testing.T) {
		managerID := uint(99)
		validatedAt := time.Now()
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{
				ID:          7,
				UserID:      42,
				CampaignID:  1,
				Status:      domain.ValidationStatusApproved,
				ValidatedBy: &managerID,
				ValidatedAt: &validatedAt,
			},
		}
		svc := NewValidationService(repo)

		got, err := svc.UpdateValidation(context.Background(), 99, 42, 1, domain.ValidationStatusPending, "")
		require.NoError(t, err)
		require.Equal(t, domain.ValidationStatusPending, got.Status)
		require.Nil(t, got.ValidatedBy)
		require.Nil(t, got.ValidatedAt)
	})
}

func TestValidationService_CreateUnlockConditions(t *testing.T) {
	repo := &fakeValidationRepo{}
	svc := NewValidationService(repo)

	created, err := svc.CreateUnlockConditions(context.Background(), 5, []domain.UnlockCondition{
		{Description: "signed contract"},
		{Description: "completed training", DisplayOrder: 10},
		{Description: "team introduction"},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	for _, c := range created {
		require.Equal(t, uint(5), c.CampaignID)
	}
	require.Equal(t, 1, created[0].DisplayOrder)
	require.Equal(t, 10, created[1].DisplayOrder)
	require.Equal(t, 3, created[2].DisplayOrder)
}

func TestValidationService_SetFulfillment(t *testing.T) {
	t.Run("rejects a condition from another campaign", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, CampaignID: 1},
			conditions: []domain.UnlockCondition{
				{ID: 3, CampaignID: 2},
			},
		}
		svc := NewValidationService(repo)

		_, err := svc.SetFulfillment(context.Background(), 99, 7, 3, true, "")
		require.ErrorIs(t, err, ErrConditionNotInCampaign)
	})

	t.Run("unknown validation", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, CampaignID: 1},
		}
		svc := NewValidationService(repo)

		_, err := svc.SetFulfillment(context.Background(), 99, 8, 3, true, "")
		require.ErrorIs(t, err, ErrValidationNotFound)
	})

	t.Run("unknown condition", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, CampaignID: 1},
		}
		svc := NewValidationService(repo)

		_, err := svc.SetFulfillment(context.Background(), 99, 7, 3, true, "")
		require.ErrorIs(t, err, ErrConditionNotFound)
	})

	t.Run("records the fulfillment", func(t *testing.T) {
		repo := &fakeValidationRepo{
			validation: domain.CampaignValidation{ID: 7, CampaignID: 1},
			conditions: []domain.UnlockCondition{
				{ID: 3, CampaignID: 1},
			},
		}
		svc := NewValidationService(repo)

		got, err := svc.SetFulfillment(context.Background(), 99, 7, 3, true, "checked in person")
		require.NoError(t, err)
		require.Equal(t, uint(7), got.ValidationID)
		require.Equal(t, uint(3), got.ConditionID)
		require.True(t, got.IsFulfilled)
	})
}

func TestValidationService_GetFulfillmentsForValidation(t *testing.T) {
	repo := &fakeValidationRepo{
		validation: domain.CampaignValidation{ID: 7, CampaignID: 1},
		conditions: []domain.UnlockCondition{
			{ID: 1, CampaignID: 1, Description: "signed contract"},
			{ID: 2, CampaignID: 1, Description: "completed training"},
		},
		fulfillments: []domain.ConditionFulfillment{
			{ValidationID: 7, ConditionID: 2, IsFulfilled: true},
		},
	}
	svc := NewValidationService(repo)

	got, err := svc.GetFulfillmentsForValidation(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Nil(t, got[0].Fulfillment)
	require.NotNil(t, got[1].Fulfillment)
	require.True(t, got[1].Fulfillment.IsFulfilled)
}
