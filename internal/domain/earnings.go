package domain

import "github.com/shopspring/decimal"

// CampaignEarnings is the challenge-only part of a user's earnings: the sum
// of euro values of fully-completed challenges, and the sum of euro values of
// every challenge that has at least one action.
type CampaignEarnings struct {
	CampaignEarnings    decimal.Decimal `json:"campaign_earnings"`
	MaxPossibleEarnings decimal.Decimal `json:"max_possible_earnings"`
}

// EarningsData is the full earnings report for one user on one campaign:
// challenge earnings combined with approved daily bonuses.
type EarningsData struct {
	CampaignEarnings     decimal.Decimal `json:"campaign_earnings"`
	TotalBonusAmount     decimal.Decimal `json:"total_bonus_amount"`
	TotalEarnings        decimal.Decimal `json:"total_earnings"`
	MaxPossibleEarnings  decimal.Decimal `json:"max_possible_earnings"`
	CompletionPercentage float64         `json:"completion_percentage"`
}
