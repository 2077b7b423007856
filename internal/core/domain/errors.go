package domain

import "errors"

var (
	ErrPollNotFound   = errors.New("poll does not exist")
	ErrOptionNotFound = errors.New("option does not exist")
	ErrVoteNotFound   = errors.New("user did not vote in this poll")

	ErrNotPollOwner    = errors.New("requester is not the poll owner")
	ErrUnauthenticated = errors.New("not authenticated")

	ErrPollClosed          = errors.New("poll is closed")
	ErrDuplicateOptionName = errors.New("an option with that name already exists in this poll")
	ErrAlreadyVoted        = errors.New("user has already voted in this poll")
	ErrOptionHasVotes      = errors.New("option has votes and cannot be removed")

	ErrOptionNotInPoll    = errors.New("option does not belong to this poll")
	ErrInvalidSchedule    = errors.New("closing time must be after opening time")
	ErrInvalidPollName    = errors.New("poll name must be non-blank and at most 100 characters")
	ErrInvalidOptionName  = errors.New("option name must be non-blank and at most 100 characters")
	ErrDescriptionTooLong = errors.New("description exceeds the maximum length")

	ErrInternal = errors.New("internal server error")
)
