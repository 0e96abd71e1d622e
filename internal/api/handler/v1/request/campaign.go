package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of all date-only fields.
const DateLayout = "2006-01-02"

// validEuroAmount accepts decimal strings like "1.00". Amounts travel as
// strings to keep currency arithmetic out of binary floating point.
func validEuroAmount(value interface{}) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil // Required catches empties.
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("must be a decimal string")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}

	return nil
}

type ActionItem struct {
	Type         string `json:"type"` // "sale", "recruitment", or "social"
	Title        string `json:"title"`
	DisplayOrder int    `json:"display_order"`
}

type ChallengeItem struct {
	Date        string       `json:"date"`
	Title       string       `json:"title"`
	ValueInEuro string       `json:"value_in_euro"`
	Actions     []ActionItem `json:"actions"`
}

type CreateCampaignRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	BonusesEnabled bool            `json:"bonuses_enabled"`
	Challenges     []ChallengeItem `json:"challenges"`
}

func (req *CreateCampaignRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(DateLayout)),
	)
	if err != nil {
		return err
	}

	for _, challenge := range req.Challenges {
		if err := challenge.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (c *ChallengeItem) Validate() error {
	err := validation.ValidateStruct(
		c,
		validation.Field(&c.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&c.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&c.ValueInEuro, validation.Required, validation.By(validEuroAmount)),
	)
	if err != nil {
		return err
	}

	for _, action := range c.Actions {
		if err := action.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (a *ActionItem) Validate() error {
	return validation.ValidateStruct(
		a,
		validation.Field(&a.Type, validation.Required, validation.In("sale", "recruitment", "social")),
		validation.Field(&a.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&a.DisplayOrder, validation.Min(0)),
	)
}

type BonusConfigRequest struct {
	BasketBonusAmount      string `json:"basket_bonus_amount"`
	SponsorshipBonusAmount string `json:"sponsorship_bonus_amount"`
}

func (req *BonusConfigRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BasketBonusAmount, validation.Required, validation.By(validEuroAmount)),
		validation.Field(&req.SponsorshipBonusAmount, validation.Required, validation.By(validEuroAmount)),
	)
}
