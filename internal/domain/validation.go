package domain

import "time"

type ValidationStatus string

const (
	ValidationStatusPending  ValidationStatus = "pending"
	ValidationStatusApproved ValidationStatus = "approved"
	ValidationStatusRejected ValidationStatus = "rejected"
)

// CampaignValidation is a manager's certification of one user's campaign
// completion. There is at most one record per (user, campaign); it is created
// lazily the first time it is read or updated.
type CampaignValidation struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"user_id"`
	CampaignID  uint             `json:"campaign_id"`
	Status      ValidationStatus `json:"status"`
	ValidatedBy *uint            `json:"validated_by,omitempty"`
	ValidatedAt *time.Time       `json:"validated_at,omitempty"`
	Comment     string           `json:"comment"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type UnlockCondition struct {
	ID           uint   `json:"id"`
	CampaignID   uint   `json:"campaign_id"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

type ConditionFulfillment struct {
	ID           uint       `json:"id"`
	ValidationID uint       `json:"validation_id"`
	ConditionID  uint       `json:"condition_id"`
	IsFulfilled  bool       `json:"is_fulfilled"`
	Comment      string     `json:"comment"`
	FulfilledBy  *uint      `json:"fulfilled_by,omitempty"`
	FulfilledAt  *time.Time `json:"fulfilled_at,omitempty"`
}

// ConditionWithFulfillment pairs a condition with its fulfillment row.
// Fulfillment is nil when the manager never touched the condition, which is
// treated as "not fulfilled".
type ConditionWithFulfillment struct {
	Condition   UnlockCondition       `json:"condition"`
	Fulfillment *ConditionFulfillment `json:"fulfillment,omitempty"`
}
