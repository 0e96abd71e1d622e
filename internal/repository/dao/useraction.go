package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserAction struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;uniqueIndex:uq_user_actions_user_action"`
	ActionID    uint `gorm:"not null;uniqueIndex:uq_user_actions_user_action"`
	ChallengeID uint `gorm:"not null;index"`

	Completed   bool `gorm:"not null;default:false"`
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserActionDAO struct {
	db *gorm.DB
}

func NewUserActionDAO(db *gorm.DB) *UserActionDAO {
	return &UserActionDAO{
		db: db,
	}
}

// Upsert writes the completion record for (user, action), keyed on the unique
// index. Completing an already-completed action is a no-op update.
func (d *UserActionDAO) Upsert(ctx context.Context, ua UserAction) (UserAction, error) {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "action_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
		}).
		Create(&ua)
	if result.Error != nil {
		return UserAction{}, result.Error
	}

	return ua, nil
}

func (d *UserActionDAO) CountCompleted(ctx context.Context, challengeID, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&UserAction{}).
		Where("challenge_id = ? AND user_id = ? AND completed = ?", challengeID, userID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *UserActionDAO) FindByUserAndChallenge(ctx context.Context, userID, challengeID uint) ([]UserAction, error) {
	var userActions []UserAction

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Find(&userActions)
	if result.Error != nil {
		return nil, result.Error
	}

	return userActions, nil
}
