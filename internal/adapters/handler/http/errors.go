package http

import (
	"errors"
	"net/http"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
)

// respondError maps domain sentinels to HTTP status codes. Anything
// unrecognized is an infrastructure failure and stays a 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPollNotFound),
		errors.Is(err, domain.ErrOptionNotFound),
		errors.Is(err, domain.ErrVoteNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotPollOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrPollClosed),
		errors.Is(err, domain.ErrDuplicateOptionName),
		errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrOptionHasVotes):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrOptionNotInPoll),
		errors.Is(err, domain.ErrInvalidSchedule),
		errors.Is(err, domain.ErrInvalidPollName),
		errors.Is(err, domain.ErrInvalidOptionName),
		errors.Is(err, domain.ErrDescriptionTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
