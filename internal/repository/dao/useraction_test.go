package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserActionDAO_Upsert(t *testing.T) {
	db := openTestDB(t)
	d := NewUserActionDAO(db)
	ctx := context.Background()

	now := time.Now()

	first, err := d.Upsert(ctx, UserAction{
		UserID:      42,
		ActionID:    3,
		ChallengeID: 7,
		Completed:   true,
		CompletedAt: &now,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// Same (user, action) pair updates in place instead of inserting a
	// second row.
	_, err = d.Upsert(ctx, UserAction{
		UserID:      42,
		ActionID:    3,
		ChallengeID: 7,
		Completed:   false,
		CompletedAt: nil,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&UserAction{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	actions, err := d.FindByUserAndChallenge(ctx, 42, 7)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.False(t, actions[0].Completed)
	require.Nil(t, actions[0].CompletedAt)
}

func TestUserActionDAO_CountCompleted(t *testing.T) {
	db := openTestDB(t)
	d := NewUserActionDAO(db)
	ctx := context.Background()

	now := time.Now()
	seed := []UserAction{
		{UserID: 42, ActionID: 1, ChallengeID: 7, Completed: true, CompletedAt: &now},
		{UserID: 42, ActionID: 2, ChallengeID: 7, Completed: true, CompletedAt: &now},
		{UserID: 42, ActionID: 3, ChallengeID: 7, Completed: false},
		{UserID: 42, ActionID: 4, ChallengeID: 8, Completed: true, CompletedAt: &now},
		{UserID: 99, ActionID: 1, ChallengeID: 7, Completed: true, CompletedAt: &now},
	}
	for _, ua := range seed {
		_, err := d.Upsert(ctx, ua)
		require.NoError(t, err)
	}

	count, err := d.CountCompleted(ctx, 7, 42)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	count, err = d.CountCompleted(ctx, 8, 42)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = d.CountCompleted(ctx, 9, 42)
	require.NoError(t, err)
	require.Zero(t, count)
}
