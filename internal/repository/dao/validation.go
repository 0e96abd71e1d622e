package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrValidationNotFound = errors.New("campaign validation not found")
	ErrConditionNotFound  = errors.New("unlock condition not found")
)

type CampaignValidation struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;uniqueIndex:uq_campaign_validations_user_campaign"`
	CampaignID uint `gorm:"not null;uniqueIndex:uq_campaign_validations_user_campaign"`

	Status      string `gorm:"not null;default:pending"` // "pending", "approved", or "rejected"
	ValidatedBy *uint
	ValidatedAt *time.Time
	Comment     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UnlockCondition struct {
	ID           uint   `gorm:"primaryKey"`
	CampaignID   uint   `gorm:"not null;index"`
	Description  string `gorm:"not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

type ConditionFulfillment struct {
	ID           uint `gorm:"primaryKey"`
	ValidationID uint `gorm:"not null;uniqueIndex:uq_condition_fulfillments_validation_condition"`
	ConditionID  uint `gorm:"not null;uniqueIndex:uq_condition_fulfillments_validation_condition"`

	IsFulfilled bool `gorm:"not null;default:false"`
	Comment     string
	FulfilledBy *uint
	FulfilledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ValidationDAO struct {
	db *gorm.DB
}

func NewValidationDAO(db *gorm.DB) *ValidationDAO {
	return &ValidationDAO{
		db: db,
	}
}

// FindOrCreate returns the validation record for (user, campaign), creating a
// pending one when none exists yet.
func (d *ValidationDAO) FindOrCreate(ctx context.Context, userID, campaignID uint) (CampaignValidation, error) {
	var validation CampaignValidation

	result := d.db.WithContext(ctx).
		Where(CampaignValidation{UserID: userID, CampaignID: campaignID}).
		Attrs(CampaignValidation{Status: "pending"}).
		FirstOrCreate(&validation)
	if result.Error != nil {
		return CampaignValidation{}, result.Error
	}

	return validation, nil
}

func (d *ValidationDAO) FindByID(ctx context.Context, id uint) (CampaignValidation, error) {
	var validation CampaignValidation

	result := d.db.WithContext(ctx).First(&validation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CampaignValidation{}, ErrValidationNotFound
		}

		return CampaignValidation{}, result.Error
	}

	return validation, nil
}

func (d *ValidationDAO) FindByCampaignID(ctx context.Context, campaignID uint) ([]CampaignValidation, error) {
	var validations []CampaignValidation

	result := d.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("user_id ASC").
		Find(&validations)
	if result.Error != nil {
		return nil, result.Error
	}

	return validations, nil
}

// UpdateStatus moves the (user, campaign) validation to the given status in a
// single transaction, creating the record when missing. Moving to "approved"
// or "rejected" stamps validated_by/validated_at; resetting to "pending"
// clears them.
func (d *ValidationDAO) UpdateStatus(ctx context.Context, userID, campaignID uint, status, comment string, managerID uint) (CampaignValidation, error) {
	var validation CampaignValidation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where(CampaignValidation{UserID: userID, CampaignID: campaignID}).
			Attrs(CampaignValidation{Status: "pending"}).
			FirstOrCreate(&validation)
		if result.Error != nil {
			return result.Error
		}

		validation.Status = status
		validation.Comment = comment

		if status == "pending" {
			validation.ValidatedBy = nil
			validation.ValidatedAt = nil
		} else {
			now := time.Now()
			validation.ValidatedBy = &managerID
			validation.ValidatedAt = &now
		}

		return tx.Save(&validation).Error
	})
	if err != nil {
		return CampaignValidation{}, err
	}

	return validation, nil
}

func (d *ValidationDAO) InsertConditions(ctx context.Context, conditions []UnlockCondition) ([]UnlockCondition, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&conditions).Error
	})
	if err != nil {
		return nil, err
	}

	return conditions, nil
}

func (d *ValidationDAO) FindConditionByID(ctx context.Context, id uint) (UnlockCondition, error) {
	var condition UnlockCondition

	result := d.db.WithContext(ctx).First(&condition, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return UnlockCondition{}, ErrConditionNotFound
		}

		return UnlockCondition{}, result.Error
	}

	return condition, nil
}

func (d *ValidationDAO) FindConditionsByCampaignID(ctx context.Context, campaignID uint) ([]UnlockCondition, error) {
	var conditions []UnlockCondition

	result := d.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("display_order ASC").
		Find(&conditions)
	if result.Error != nil {
		return nil, result.Error
	}

	return conditions, nil
}

// UpsertFulfillment writes the fulfillment row for (validation, condition).
// Fulfilling stamps fulfilled_by/fulfilled_at; reverting clears them.
func (d *ValidationDAO) UpsertFulfillment(ctx context.Context, validationID, conditionID uint, isFulfilled bool, comment string, managerID uint) (ConditionFulfillment, error) {
	var fulfillment ConditionFulfillment

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where(ConditionFulfillment{ValidationID: validationID, ConditionID: conditionID}).
			FirstOrCreate(&fulfillment)
		if result.Error != nil {
			return result.Error
		}

		fulfillment.IsFulfilled = isFulfilled
		fulfillment.Comment = comment

		if isFulfilled {
			now := time.Now()
			fulfillment.FulfilledBy = &managerID
			fulfillment.FulfilledAt = &now
		} else {
			fulfillment.FulfilledBy = nil
			fulfillment.FulfilledAt = nil
		}

		return tx.Save(&fulfillment).Error
	})
	if err != nil {
		return ConditionFulfillment{}, err
	}

	return fulfillment, nil
}

func (d *ValidationDAO) FindFulfillmentsByValidationID(ctx context.Context, validationID uint) ([]ConditionFulfillment, error) {
	var fulfillments []ConditionFulfillment

	result := d.db.WithContext(ctx).
		Where("validation_id = ?", validationID).
		Find(&fulfillments)
	if result.Error != nil {
		return nil, result.Error
	}

	return fulfillments, nil
}
