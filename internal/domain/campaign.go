package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

type Campaign struct {
	ID             uint                 `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	Status         CampaignStatus       `json:"status"`
	BonusesEnabled bool                 `json:"bonuses_enabled"`
	Challenges     []Challenge          `json:"challenges,omitempty"`
	BonusConfig    *CampaignBonusConfig `json:"bonus_config,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type Challenge struct {
	ID          uint            `json:"id"`
	CampaignID  uint            `json:"campaign_id"`
	Date        time.Time       `json:"date"`
	Title       string          `json:"title"`
	ValueInEuro decimal.Decimal `json:"value_in_euro"`
	Actions     []Action        `json:"actions,omitempty"`
}

type ActionType string

const (
	ActionTypeSale        ActionType = "sale"
	ActionTypeRecruitment ActionType = "recruitment"
	ActionTypeSocial      ActionType = "social"
)

type Action struct {
	ID           uint       `json:"id"`
	ChallengeID  uint       `json:"challenge_id"`
	Type         ActionType `json:"type"` // "sale", "recruitment", or "social"
	Title        string     `json:"title"`
	DisplayOrder int        `json:"display_order"`
}
