package dao

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBonusDAO_UpsertConfig(t *testing.T) {
	db := openTestDB(t)
	d := NewBonusDAO(db)
	ctx := context.Background()

	_, err := d.UpsertConfig(ctx, CampaignBonusConfig{
		CampaignID:             1,
		BasketBonusAmount:      decimal.RequireFromString("1.00"),
		SponsorshipBonusAmount: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	// A second write for the same campaign replaces the amounts.
	_, err = d.UpsertConfig(ctx, CampaignBonusConfig{
		CampaignID:             1,
		BasketBonusAmount:      decimal.RequireFromString("2.00"),
		SponsorshipBonusAmount: decimal.RequireFromString("4.00"),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&CampaignBonusConfig{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	conf, err := d.FindConfigByCampaignID(ctx, 1)
	require.NoError(t, err)
	require.True(t, conf.BasketBonusAmount.Equal(decimal.RequireFromString("2.00")))
	require.True(t, conf.SponsorshipBonusAmount.Equal(decimal.RequireFromString("4.00")))
}

func TestBonusDAO_FindConfigByCampaignID_NotFound(t *testing.T) {
	db := openTestDB(t)
	d := NewBonusDAO(db)

	_, err := d.FindConfigByCampaignID(context.Background(), 9999)
	require.ErrorIs(t, err, ErrBonusConfigNotFound)
}

func TestBonusDAO_FindApproved(t *testing.T) {
	db := openTestDB(t)
	d := NewBonusDAO(db)
	ctx := context.Background()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	seed := []DailyBonus{
		{UserID: 42, CampaignID: 1, BonusDate: date, BonusType: "basket", Amount: decimal.RequireFromString("1.00"), Status: "approved"},
		{UserID: 42, CampaignID: 1, BonusDate: date.AddDate(0, 0, 1), BonusType: "sponsorship", Amount: decimal.RequireFromString("3.00"), Status: "pending"},
		{UserID: 42, CampaignID: 1, BonusDate: date.AddDate(0, 0, 2), BonusType: "basket", Amount: decimal.RequireFromString("1.00"), Status: "rejected"},
		{UserID: 99, CampaignID: 1, BonusDate: date, BonusType: "basket", Amount: decimal.RequireFromString("1.00"), Status: "approved"},
	}
	for _, b := range seed {
		_, err := d.Insert(ctx, b)
		require.NoError(t, err)
	}

	approved, err := d.FindApproved(ctx, 42, 1)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.Equal(t, "basket", approved[0].BonusType)

	all, err := d.FindByUserAndCampaign(ctx, 42, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestBonusDAO_UpdateStatus(t *testing.T) {
	db := openTestDB(t)
	d := NewBonusDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, DailyBonus{
		UserID:     42,
		CampaignID: 1,
		BonusDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		BonusType:  "basket",
		Amount:     decimal.RequireFromString("1.00"),
		Status:     "pending",
	})
	require.NoError(t, err)

	updated, err := d.UpdateStatus(ctx, created.ID, "approved")
	require.NoError(t, err)
	require.Equal(t, "approved", updated.Status)

	_, err = d.UpdateStatus(ctx, 9999, "approved")
	require.ErrorIs(t, err, ErrBonusNotFound)
}
