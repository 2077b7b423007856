package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastAndGetMyVote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := newUserToken(t)
	poll := createPoll(t, app, ownerToken, map[string]interface{}{"name": "Colors"})
	redID := addOption(t, app, ownerToken, poll.ID, "Red")

	voterID, voterToken := newUserToken(t)

	// Before voting, my-vote is a 404.
	myVoteURL := fmt.Sprintf("%s/api/polls/%s/my-vote", app.Server.URL, poll.ID)
	req, err := http.NewRequest("GET", myVoteURL, nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: voterToken})
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = castVote(t, app, voterToken, poll.ID, redID)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var vote struct {
		ID       uuid.UUID `json:"id"`
		PollID   uuid.UUID `json:"poll_id"`
		OptionID uuid.UUID `json:"option_id"`
		UserID   uuid.UUID `json:"user_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vote))
	assert.Equal(t, poll.ID, vote.PollID)
	assert.Equal(t, redID, vote.OptionID)
	assert.Equal(t, voterID, vote.UserID)

	req, err = http.NewRequest("GET", myVoteURL, nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: voterToken})
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDuplicateVoteRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := newUserToken(t)
	poll := createPoll(t, app, ownerToken, map[string]interface{}{"name": "Colors"})
	redID := addOption(t, app, ownerToken, poll.ID, "Red")
	greenID := addOption(t, app, ownerToken, poll.ID, "Green")

	_, voterToken := newUserToken(t)

	resp := castVote(t, app, voterToken, poll.ID, redID)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A different option makes no difference: one vote per poll.
	resp = castVote(t, app, voterToken, poll.ID, greenID)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestVoteOptionFromAnotherPoll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := newUserToken(t)
	pollA := createPoll(t, app, ownerToken, map[string]interface{}{"name": "Poll A"})
	pollB := createPoll(t, app, ownerToken, map[string]interface{}{"name": "Poll B"})
	strayID := addOption(t, app, ownerToken, pollB.ID, "Stray")

	_, voterToken := newUserToken(t)

	// Both ids resolve, but the option belongs elsewhere.
	resp := castVote(t, app, voterToken, pollA.ID, strayID)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestConcurrentDuplicateVotes drives the race the unique constraint
// exists for: many simultaneous casts by one participant, all passing
// the application pre-check window, with the database deciding the
// single winner.
func TestConcurrentDuplicateVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := newUserToken(t)
	poll := createPoll(t, app, ownerToken, map[string]interface{}{"name": "Race"})
	optionID := addOption(t, app, ownerToken, poll.ID, "Only option")

	_, voterToken := newUserToken(t)

	const attempts = 8
	statuses := make([]int, attempts)
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := castVote(t, app, voterToken, poll.ID, optionID)
			resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	var created, conflicted int
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}
	assert.Equal(t, 1, created, "exactly one concurrent cast must win")
	assert.Equal(t, attempts-1, conflicted)

	var voteRows int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id = $1", poll.ID).Scan(&voteRows))
	assert.Equal(t, 1, voteRows)
}

func TestResultsRankedDescending(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := newUserToken(t)
	poll := createPoll(t, app, ownerToken, map[string]interface{}{"name": "Colors"})
	redID := addOption(t, app, ownerToken, poll.ID, "Red")
	greenID := addOption(t, app, ownerToken, poll.ID, "Green")
	addOption(t, app, ownerToken, poll.ID, "Blue") // never voted on

	for _, optionID := range []uuid.UUID{redID, redID, greenID} {
		_, voterToken := newUserToken(t)
		resp := castVote(t, app, voterToken, poll.ID, optionID)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/polls/%s/results", app.Server.URL, poll.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []struct {
		OptionID uuid.UUID `json:"option_id"`
		Name     string    `json:"name"`
		Votes    int64     `json:"votes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	require.Len(t, results, 2, "voteless options are omitted")

	assert.Equal(t, redID, results[0].OptionID)
	assert.Equal(t, int64(2), results[0].Votes)
	assert.Equal(t, greenID, results[1].OptionID)
	assert.Equal(t, int64(1), results[1].Votes)
}

func TestResultsUnknownPoll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/polls/%s/results", app.Server.URL, uuid.New()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
