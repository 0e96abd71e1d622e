package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrActionNotFound    = errors.New("action not found")
)

type Campaign struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"not null"`
	Description    string
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null"`
	Status         string    `gorm:"not null;default:draft"` // "draft", "active", "completed", or "cancelled"
	BonusesEnabled bool      `gorm:"not null;default:false"`

	Challenges  []Challenge          `gorm:"foreignKey:CampaignID"`
	BonusConfig *CampaignBonusConfig `gorm:"foreignKey:CampaignID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Challenge struct {
	ID          uint            `gorm:"primaryKey"`
	CampaignID  uint            `gorm:"not null;index"`
	Date        time.Time       `gorm:"not null"`
	Title       string          `gorm:"not null"`
	ValueInEuro decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	Actions []Action `gorm:"foreignKey:ChallengeID"`
}

type Action struct {
	ID           uint   `gorm:"primaryKey"`
	ChallengeID  uint   `gorm:"not null;index"`
	Type         string `gorm:"not null"` // "sale", "recruitment", or "social"
	Title        string `gorm:"not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

type CampaignDAO struct {
	db *gorm.DB
}

func NewCampaignDAO(db *gorm.DB) *CampaignDAO {
	return &CampaignDAO{
		db: db,
	}
}

// Insert creates the campaign together with its challenges and their actions
// in one transaction. GORM cascades the associations from the struct.
func (d *CampaignDAO) Insert(ctx context.Context, campaign Campaign) (Campaign, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&campaign).Error
	})
	if err != nil {
		return Campaign{}, err
	}

	return campaign, nil
}

func (d *CampaignDAO) FindAll(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign

	result := d.db.WithContext(ctx).Order("start_date DESC").Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}

	return campaigns, nil
}

func (d *CampaignDAO) FindByID(ctx context.Context, id uint) (Campaign, error) {
	var campaign Campaign

	result := d.db.WithContext(ctx).
		Preload("Challenges", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenges.date ASC")
		}).
		Preload("Challenges.Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order("actions.display_order ASC")
		}).
		Preload("BonusConfig").
		First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}

		return Campaign{}, result.Error
	}

	return campaign, nil
}

func (d *CampaignDAO) FindChallengesByCampaignID(ctx context.Context, campaignID uint) ([]Challenge, error) {
	var challenges []Challenge

	result := d.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("date ASC").
		Find(&challenges)
	if result.Error != nil {
		return nil, result.Error
	}

	return challenges, nil
}

func (d *CampaignDAO) FindActionByID(ctx context.Context, id uint) (Action, error) {
	var action Action

	result := d.db.WithContext(ctx).First(&action, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Action{}, ErrActionNotFound
		}

		return Action{}, result.Error
	}

	return action, nil
}

func (d *CampaignDAO) CountActionsByChallengeID(ctx context.Context, challengeID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Action{}).
		Where("challenge_id = ?", challengeID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
