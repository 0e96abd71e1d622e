package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateValidationRequest struct {
	Status  string `json:"status"` // "pending", "approved", or "rejected"
	Comment string `json:"comment"`
}

func (req *UpdateValidationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In("pending", "approved", "rejected")),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}

type ConditionItem struct {
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func (c *ConditionItem) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Description, validation.Required, validation.Length(2, 200)),
		validation.Field(&c.DisplayOrder, validation.Min(0)),
	)
}

type CreateConditionsRequest struct {
	Conditions []ConditionItem `json:"conditions"`
}

func (req *CreateConditionsRequest) Validate() error {
	if err := validation.Validate(req.Conditions, validation.Required); err != nil {
		return err
	}

	for _, condition := range req.Conditions {
		if err := condition.Validate(); err != nil {
			return err
		}
	}

	return nil
}

type FulfillConditionRequest struct {
	IsFulfilled bool   `json:"is_fulfilled"`
	Comment     string `json:"comment"`
}

func (req *FulfillConditionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}
