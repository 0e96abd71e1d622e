package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationDAO_FindOrCreate(t *testing.T) {
	db := openTestDB(t)
	d := NewValidationDAO(db)
	ctx := context.Background()

	created, err := d.FindOrCreate(ctx, 42, 1)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "pending", created.Status)

	// A second read returns the same row.
	again, err := d.FindOrCreate(ctx, 42, 1)
	require.NoError(t, err)
	require.Equal(t, created.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&CampaignValidation{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestValidationDAO_UpdateStatus(t *testing.T) {
	db := openTestDB(t)
	d := NewValidationDAO(db)
	ctx := context.Background()

	approved, err := d.UpdateStatus(ctx, 42, 1, "approved", "looks complete", 99)
	require.NoError(t, err)
	require.Equal(t, "approved", approved.Status)
	require.Equal(t, "looks complete", approved.Comment)
	require.NotNil(t, approved.ValidatedBy)
	require.EqualValues(t, 99, *approved.ValidatedBy)
	require.NotNil(t, approved.ValidatedAt)

	// Resetting to pending clears the stamps.
	pending, err := d.UpdateStatus(ctx, 42, 1, "pending", "", 99)
	require.NoError(t, err)
	require.Equal(t, "pending", pending.Status)
	require.Nil(t, pending.ValidatedBy)
	require.Nil(t, pending.ValidatedAt)
	require.Equal(t, approved.ID, pending.ID)
}

func TestValidationDAO_Conditions(t *testing.T) {
	db := openTestDB(t)
	d := NewValidationDAO(db)
	ctx := context.Background()

	created, err := d.InsertConditions(ctx, []UnlockCondition{
		{CampaignID: 1, Description: "signed contract", DisplayOrder: 2},
		{CampaignID: 1, Description: "completed training", DisplayOrder: 1},
		{CampaignID: 2, Description: "other campaign", DisplayOrder: 1},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	conditions, err := d.FindConditionsByCampaignID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, conditions, 2)
	require.Equal(t, "completed training", conditions[0].Description)
	require.Equal(t, "signed contract", conditions[1].Description)

	_, err = d.FindConditionByID(ctx, 9999)
	require.ErrorIs(t, err, ErrConditionNotFound)
}

func TestValidationDAO_UpsertFulfillment(t *testing.T) {
	db := openTestDB(t)
	d := NewValidationDAO(db)
	ctx := context.Background()

	validation, err := d.FindOrCreate(ctx, 42, 1)
	require.NoError(t, err)

	conditions, err := d.InsertConditions(ctx, []UnlockCondition{
		{CampaignID: 1, Description: "signed contract", DisplayOrder: 1},
	})
	require.NoError(t, err)

	fulfilled, err := d.UpsertFulfillment(ctx, validation.ID, conditions[0].ID, true, "checked", 99)
	require.NoError(t, err)
	require.True(t, fulfilled.IsFulfilled)
	require.NotNil(t, fulfilled.FulfilledBy)
	require.EqualValues(t, 99, *fulfilled.FulfilledBy)
	require.NotNil(t, fulfilled.FulfilledAt)

	// Reverting updates the same row and clears the stamps.
	reverted, err := d.UpsertFulfillment(ctx, validation.ID, conditions[0].ID, false, "", 99)
	require.NoError(t, err)
	require.Equal(t, fulfilled.ID, reverted.ID)
	require.False(t, reverted.IsFulfilled)
	require.Nil(t, reverted.FulfilledBy)
	require.Nil(t, reverted.FulfilledAt)

	fulfillments, err := d.FindFulfillmentsByValidationID(ctx, validation.ID)
	require.NoError(t, err)
	require.Len(t, fulfillments, 1)
}
