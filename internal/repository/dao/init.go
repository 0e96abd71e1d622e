package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Campaign{},
		&Challenge{},
		&Action{},
		&UserAction{},
		&DailyBonus{},
		&CampaignBonusConfig{},
		&CampaignValidation{},
		&UnlockCondition{},
		&ConditionFulfillment{},
	)
}
