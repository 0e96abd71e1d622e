package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BonusType string

const (
	BonusTypeBasket      BonusType = "basket"
	BonusTypeSponsorship BonusType = "sponsorship"
)

type BonusStatus string

const (
	BonusStatusPending  BonusStatus = "pending"
	BonusStatusApproved BonusStatus = "approved"
	BonusStatusRejected BonusStatus = "rejected"
)

type DailyBonus struct {
	ID         uint            `json:"id"`
	UserID     uint            `json:"user_id"`
	CampaignID uint            `json:"campaign_id"`
	BonusDate  time.Time       `json:"bonus_date"`
	Type       BonusType       `json:"bonus_type"`
	Amount     decimal.Decimal `json:"amount"`
	Status     BonusStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CampaignBonusConfig freezes the bonus amounts for a campaign. A declared
// bonus copies the configured amount at creation time, so later config edits
// never change already-declared bonuses.
type CampaignBonusConfig struct {
	CampaignID             uint            `json:"campaign_id"`
	BasketBonusAmount      decimal.Decimal `json:"basket_bonus_amount"`
	SponsorshipBonusAmount decimal.Decimal `json:"sponsorship_bonus_amount"`
}

// BonusTotals aggregates the approved bonuses of one user on one campaign.
type BonusTotals struct {
	TotalBonusAmount decimal.Decimal `json:"total_bonus_amount"`
	BonusCount       int             `json:"bonus_count"`
	BasketCount      int             `json:"basket_count"`
	SponsorshipCount int             `json:"sponsorship_count"`
}
