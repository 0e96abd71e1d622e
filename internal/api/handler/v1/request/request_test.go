package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "fbo@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Name:            "Jean Dupont",
		Role:            "fbo",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("password needs a letter and a digit", func(t *testing.T) {
		req := valid
		req.Password = "12345678"
		req.ConfirmPassword = "12345678"
		assert.Error(t, req.Validate())

		req.Password = "abcdefgh"
		req.ConfirmPassword = "abcdefgh"
		assert.Error(t, req.Validate())

		req.Password = "abc123"
		req.ConfirmPassword = "abc123"
		assert.Error(t, req.Validate(), "too short")
	})

	t.Run("confirm password must match", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "secret124"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown role", func(t *testing.T) {
		req := valid
		req.Role = "admin"
		assert.Error(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})
}

func TestCreateCampaignRequest_Validate(t *testing.T) {
	valid := CreateCampaignRequest{
		Name:      "March push",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-14",
		Challenges: []ChallengeItem{
			{
				Date:        "2025-03-01",
				Title:       "Day one",
				ValueInEuro: "1.00",
				Actions: []ActionItem{
					{Type: "sale", Title: "Close one sale", DisplayOrder: 1},
				},
			},
		},
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("bad date format", func(t *testing.T) {
		req := valid
		req.StartDate = "01/03/2025"
		assert.Error(t, req.Validate())
	})

	t.Run("challenge value must be a decimal string", func(t *testing.T) {
		req := valid
		req.Challenges = []ChallengeItem{{
			Date:        "2025-03-01",
			Title:       "Day one",
			ValueInEuro: "one euro",
		}}
		assert.Error(t, req.Validate())
	})

	t.Run("negative challenge value", func(t *testing.T) {
		req := valid
		req.Challenges = []ChallengeItem{{
			Date:        "2025-03-01",
			Title:       "Day one",
			ValueInEuro: "-1.00",
		}}
		assert.Error(t, req.Validate())
	})

	t.Run("unknown action type", func(t *testing.T) {
		req := valid
		req.Challenges[0].Actions = []ActionItem{
			{Type: "phone", Title: "Cold call"},
		}
		assert.Error(t, req.Validate())
	})
}

func TestDeclareBonusRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := DeclareBonusRequest{BonusDate: "2025-03-10", BonusType: "basket"}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown bonus type", func(t *testing.T) {
		req := DeclareBonusRequest{BonusDate: "2025-03-10", BonusType: "cash"}
		assert.Error(t, req.Validate())
	})

	t.Run("missing date", func(t *testing.T) {
		req := DeclareBonusRequest{BonusType: "basket"}
		assert.Error(t, req.Validate())
	})
}

func TestReviewBonusRequest_Validate(t *testing.T) {
	t.Run("approved and rejected are accepted", func(t *testing.T) {
		for _, status := range []string{"approved", "rejected"} {
			req := ReviewBonusRequest{Status: status}
			assert.NoError(t, req.Validate())
		}
	})

	t.Run("pending is not a review outcome", func(t *testing.T) {
		req := ReviewBonusRequest{Status: "pending"}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateValidationRequest_Validate(t *testing.T) {
	t.Run("all three statuses are accepted", func(t *testing.T) {
		for _, status := range []string{"pending", "approved", "rejected"} {
			req := UpdateValidationRequest{Status: status}
			assert.NoError(t, req.Validate())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		req := UpdateValidationRequest{Status: "validated"}
		assert.Error(t, req.Validate())
	})
}

func TestCreateConditionsRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := CreateConditionsRequest{Conditions: []ConditionItem{
			{Description: "signed contract"},
			{Description: "completed training", DisplayOrder: 2},
		}}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty list", func(t *testing.T) {
		req := CreateConditionsRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("blank description", func(t *testing.T) {
		req := CreateConditionsRequest{Conditions: []ConditionItem{
			{Description: ""},
		}}
		assert.Error(t, req.Validate())
	})
}

func TestFulfillConditionRequest_Validate(t *testing.T) {
	// is_fulfilled=false is a legitimate revert, not a missing field.
	req := FulfillConditionRequest{IsFulfilled: false}
	assert.NoError(t, req.Validate())
}

func TestBonusConfigRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := BonusConfigRequest{BasketBonusAmount: "1.00", SponsorshipBonusAmount: "3.00"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing amounts", func(t *testing.T) {
		req := BonusConfigRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("non-decimal amount", func(t *testing.T) {
		req := BonusConfigRequest{BasketBonusAmount: "abc", SponsorshipBonusAmount: "3.00"}
		assert.Error(t, req.Validate())
	})
}
