package domain

import "time"

type UserAction struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	ActionID    uint       `json:"action_id"`
	ChallengeID uint       `json:"challenge_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ChallengeProgress is the per-challenge completion snapshot of one user.
// A challenge counts as fully completed only when every action under it has
// a completed UserAction.
type ChallengeProgress struct {
	ChallengeID      uint `json:"challenge_id"`
	TotalActions     int  `json:"total_actions"`
	CompletedActions int  `json:"completed_actions"`
}

func (p ChallengeProgress) FullyCompleted() bool {
	return p.TotalActions > 0 && p.CompletedActions == p.TotalActions
}
