package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBonusNotFound       = errors.New("bonus not found")
	ErrBonusConfigNotFound = errors.New("bonus config not found")
)

type DailyBonus struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;index"`
	CampaignID uint `gorm:"not null;index"`

	BonusDate time.Time       `gorm:"not null"`
	BonusType string          `gorm:"not null"` // "basket" or "sponsorship"
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status    string          `gorm:"not null;default:pending"` // "pending", "approved", or "rejected"

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CampaignBonusConfig struct {
	ID         uint `gorm:"primaryKey"`
	CampaignID uint `gorm:"not null;uniqueIndex"`

	BasketBonusAmount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SponsorshipBonusAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

type BonusDAO struct {
	db *gorm.DB
}

func NewBonusDAO(db *gorm.DB) *BonusDAO {
	return &BonusDAO{
		db: db,
	}
}

func (d *BonusDAO) Insert(ctx context.Context, bonus DailyBonus) (DailyBonus, error) {
	result := d.db.WithContext(ctx).Create(&bonus)
	if result.Error != nil {
		return DailyBonus{}, result.Error
	}

	return bonus, nil
}

func (d *BonusDAO) FindByID(ctx context.Context, id uint) (DailyBonus, error) {
	var bonus DailyBonus

	result := d.db.WithContext(ctx).First(&bonus, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DailyBonus{}, ErrBonusNotFound
		}

		return DailyBonus{}, result.Error
	}

	return bonus, nil
}

func (d *BonusDAO) FindByUserAndCampaign(ctx context.Context, userID, campaignID uint) ([]DailyBonus, error) {
	var bonuses []DailyBonus

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ?", userID, campaignID).
		Order("bonus_date ASC").
		Find(&bonuses)
	if result.Error != nil {
		return nil, result.Error
	}

	return bonuses, nil
}

func (d *BonusDAO) FindApproved(ctx context.Context, userID, campaignID uint) ([]DailyBonus, error) {
	var bonuses []DailyBonus

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ? AND status = ?", userID, campaignID, "approved").
		Find(&bonuses)
	if result.Error != nil {
		return nil, result.Error
	}

	return bonuses, nil
}

func (d *BonusDAO) UpdateStatus(ctx context.Context, id uint, status string) (DailyBonus, error) {
	var bonus DailyBonus

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&bonus, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBonusNotFound
			}

			return err
		}

		bonus.Status = status

		return tx.Save(&bonus).Error
	})
	if err != nil {
		return DailyBonus{}, err
	}

	return bonus, nil
}

// UpsertConfig replaces the campaign's bonus config, keyed on campaign_id.
func (d *BonusDAO) UpsertConfig(ctx context.Context, conf CampaignBonusConfig) (CampaignBonusConfig, error) {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"basket_bonus_amount", "sponsorship_bonus_amount"}),
		}).
		Create(&conf)
	if result.Error != nil {
		return CampaignBonusConfig{}, result.Error
	}

	return conf, nil
}

func (d *BonusDAO) FindConfigByCampaignID(ctx context.Context, campaignID uint) (CampaignBonusConfig, error) {
	var conf CampaignBonusConfig

	result := d.db.WithContext(ctx).First(&conf, "campaign_id = ?", campaignID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CampaignBonusConfig{}, ErrBonusConfigNotFound
		}

		return CampaignBonusConfig{}, result.Error
	}

	return conf, nil
}
