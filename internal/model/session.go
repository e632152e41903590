package model

import "time"

// Session is one persisted intake: the profile as captured, what the engine
// decided, the optional generative analysis and the delivery state.
type Session struct {
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Profile        Profile        `json:"profile"`
	Classification Classification `json:"classification"`
	Analysis       *Analysis      `json:"analysis,omitempty"`
	DeliveredAt    *time.Time     `json:"deliveredAt,omitempty"`
}

// Delivered reports whether the session's analysis reached the webhook.
func (s *Session) Delivered() bool {
	return s.DeliveredAt != nil
}
