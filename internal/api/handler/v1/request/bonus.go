package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type DeclareBonusRequest struct {
	BonusDate string `json:"bonus_date"`
	BonusType string `json:"bonus_type"` // "basket" or "sponsorship"
}

func (req *DeclareBonusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BonusDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.BonusType, validation.Required, validation.In("basket", "sponsorship")),
	)
}

type ReviewBonusRequest struct {
	Status string `json:"status"` // "approved" or "rejected"
}

func (req *ReviewBonusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In("approved", "rejected")),
	)
}
