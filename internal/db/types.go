package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/maya/wellspring/internal/types"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CheckIn represents one completed assessment session: the mood the user
// selected, the computed profile, and the insight cards shown, plus an
// optional free-form note.
type CheckIn struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Mood      string              `json:"mood"`
	Profile   types.StressProfile `json:"profile"`
	Insights  []types.InsightCard `json:"insights"`
	Note      string              `json:"note,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}
