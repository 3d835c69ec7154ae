package entities

import "time"

// UserPreferences is the per-user preference record kept in the external
// store, keyed by the voice platform user id.
//
// AllowProfanity is tri-state: nil means the user was never asked.
type UserPreferences struct {
	UserID         string    `json:"user_id" bson:"user_id"`
	AllowProfanity *bool     `json:"allow_profanity" bson:"allow_profanity,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
