package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one participant's immutable choice within one poll.
// (UserID, PollID) is unique, enforced by the storage layer.
type Vote struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"poll_id"`
	OptionID  uuid.UUID `json:"option_id"`
	UserID    uuid.UUID `json:"user_id"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OptionResult is one tally row: vote count for a single option.
type OptionResult struct {
	OptionID uuid.UUID `json:"option_id"`
	Name     string    `json:"name"`
	Votes    int64     `json:"votes"`
}
