package services

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
)

// memStore is a single in-memory backing store shared by the fake
// repositories, so cross-entity rules (closed-poll guards, the unique
// vote pair, votes blocking option deletion) behave like the real
// schema. All mutations run under one mutex, which mirrors the
// atomicity the database gives each insert.
type memStore struct {
	mu      sync.Mutex
	polls   map[uuid.UUID]*domain.Poll
	options map[uuid.UUID]*domain.Option
	votes   map[uuid.UUID]*domain.Vote
}

func newMemStore() *memStore {
	return &memStore{
		polls:   make(map[uuid.UUID]*domain.Poll),
		options: make(map[uuid.UUID]*domain.Option),
		votes:   make(map[uuid.UUID]*domain.Vote),
	}
}

func (s *memStore) pollClosedLocked(pollID uuid.UUID) bool {
	poll, ok := s.polls[pollID]
	return ok && poll.Closed(time.Now())
}

type memPollRepo struct{ store *memStore }

func (r *memPollRepo) Save(_ context.Context, poll *domain.Poll) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *poll
	r.store.polls[poll.ID] = &cp
	return nil
}

func (r *memPollRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	poll, ok := r.store.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	cp := *poll
	return &cp, nil
}

func (r *memPollRepo) GetAll(_ context.Context) ([]*domain.Poll, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var polls []*domain.Poll
	for _, poll := range r.store.polls {
		cp := *poll
		polls = append(polls, &cp)
	}
	sort.Slice(polls, func(i, j int) bool { return polls[i].CreatedAt.After(polls[j].CreatedAt) })
	return polls, nil
}

func (r *memPollRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Poll, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var polls []*domain.Poll
	for _, poll := range r.store.polls {
		if poll.OwnerID == ownerID {
			cp := *poll
			polls = append(polls, &cp)
		}
	}
	sort.Slice(polls, func(i, j int) bool { return polls[i].CreatedAt.After(polls[j].CreatedAt) })
	return polls, nil
}

func (r *memPollRepo) Close(_ context.Context, id uuid.UUID, at time.Time) (*domain.Poll, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	poll, ok := r.store.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	if poll.ClosesAt == nil || poll.ClosesAt.After(at) {
		closesAt := at
		poll.ClosesAt = &closesAt
	}
	cp := *poll
	return &cp, nil
}

type memOptionRepo struct{ store *memStore }

func (r *memOptionRepo) Save(_ context.Context, option *domain.Option, position *int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.pollClosedLocked(option.PollID) {
		return domain.ErrPollClosed
	}

	maxPosition := 0
	for _, existing := range r.store.options {
		if existing.PollID != option.PollID {
			continue
		}
		if existing.Name == option.Name {
			return domain.ErrDuplicateOptionName
		}
		if existing.Position > maxPosition {
			maxPosition = existing.Position
		}
	}

	if position != nil {
		option.Position = *position
	} else {
		option.Position = maxPosition + 1
	}

	cp := *option
	r.store.options[option.ID] = &cp
	return nil
}

func (r *memOptionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Option, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	option, ok := r.store.options[id]
	if !ok {
		return nil, domain.ErrOptionNotFound
	}
	cp := *option
	return &cp, nil
}

func (r *memOptionRepo) GetByPoll(_ context.Context, pollID uuid.UUID) ([]*domain.Option, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var options []*domain.Option
	for _, option := range r.store.options {
		if option.PollID == pollID {
			cp := *option
			options = append(options, &cp)
		}
	}
	sort.Slice(options, func(i, j int) bool {
		if options[i].Position != options[j].Position {
			return options[i].Position < options[j].Position
		}
		return bytes.Compare(options[i].ID[:], options[j].ID[:]) < 0
	})
	return options, nil
}

func (r *memOptionRepo) ExistsByPollAndName(_ context.Context, pollID uuid.UUID, name string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, option := range r.store.options {
		if option.PollID == pollID && option.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memOptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	option, ok := r.store.options[id]
	if !ok {
		return domain.ErrOptionNotFound
	}
	if r.store.pollClosedLocked(option.PollID) {
		return domain.ErrPollClosed
	}
	for _, vote := range r.store.votes {
		if vote.OptionID == id {
			return domain.ErrOptionHasVotes
		}
	}
	delete(r.store.options, id)
	return nil
}

type memVoteRepo struct{ store *memStore }

func (r *memVoteRepo) Save(_ context.Context, vote *domain.Vote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.pollClosedLocked(vote.PollID) {
		return domain.ErrPollClosed
	}

	// The unique (user_id, poll_id) pair, enforced atomically with the
	// insert as the database constraint would be.
	for _, existing := range r.store.votes {
		if existing.PollID == vote.PollID && existing.UserID == vote.UserID {
			return domain.ErrAlreadyVoted
		}
	}

	cp := *vote
	r.store.votes[vote.ID] = &cp
	return nil
}

func (r *memVoteRepo) HasVoted(_ context.Context, pollID, userID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, vote := range r.store.votes {
		if vote.PollID == pollID && vote.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memVoteRepo) GetByPollAndUser(_ context.Context, pollID, userID uuid.UUID) (*domain.Vote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, vote := range r.store.votes {
		if vote.PollID == pollID && vote.UserID == userID {
			cp := *vote
			return &cp, nil
		}
	}
	return nil, domain.ErrVoteNotFound
}

type memResultRepo struct{ store *memStore }

func (r *memResultRepo) CountByOption(_ context.Context, pollID uuid.UUID) ([]domain.OptionResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	counts := make(map[uuid.UUID]int64)
	for _, vote := range r.store.votes {
		if vote.PollID == pollID {
			counts[vote.OptionID]++
		}
	}

	var results []domain.OptionResult
	for optionID, votes := range counts {
		name := ""
		if option, ok := r.store.options[optionID]; ok {
			name = option.Name
		}
		results = append(results, domain.OptionResult{OptionID: optionID, Name: name, Votes: votes})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Votes != results[j].Votes {
			return results[i].Votes > results[j].Votes
		}
		return bytes.Compare(results[i].OptionID[:], results[j].OptionID[:]) < 0
	})
	return results, nil
}
