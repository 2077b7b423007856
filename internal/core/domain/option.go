package domain

import (
	"github.com/google/uuid"
)

// Option is a candidate choice belonging to exactly one poll.
// (PollID, Name) is unique; Position is only a display hint.
type Option struct {
	ID          uuid.UUID `json:"id"`
	PollID      uuid.UUID `json:"poll_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Position    int       `json:"position"`
}
