package domain

import (
	"time"

	"github.com/google/uuid"
)

// PollStatus is the derived lifecycle state of a poll. It is never
// stored; it is computed from the activity window and a reference time.
type PollStatus int

const (
	PollNotStarted PollStatus = iota
	PollActive
	PollClosed
)

func (s PollStatus) String() string {
	switch s {
	case PollNotStarted:
		return "not_started"
	case PollActive:
		return "active"
	case PollClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type Poll struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	OpensAt     time.Time  `json:"opens_at"`
	ClosesAt    *time.Time `json:"closes_at,omitempty"`
}

// StatusAt evaluates the poll lifecycle at the given instant.
// Closed wins over NotStarted when the window is inconsistent.
func (p *Poll) StatusAt(now time.Time) PollStatus {
	if p.ClosesAt != nil && !now.Before(*p.ClosesAt) {
		return PollClosed
	}
	if now.Before(p.OpensAt) {
		return PollNotStarted
	}
	return PollActive
}

// Closed reports whether the poll no longer accepts mutations.
func (p *Poll) Closed(now time.Time) bool {
	return p.StatusAt(now) == PollClosed
}
