package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/bloglist/internal/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) getUsers(ctx context.Context, t *testing.T) ([]users.User, string) {
	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+"/users", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var allUsers []users.User
	require.NoError(t, json.Unmarshal(respBytes, &allUsers))
	return allUsers, string(respBytes)
}

func (s *IntegrationTestSuite) TestUsers() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	newUsername := gofakeit.Username()
	s.createUser(ctx, t, newUsername, gofakeit.Name(), "some-valid-pass")

	allUsers, rawUsersJson := s.getUsers(ctx, t)
	found := false
	for i := range allUsers {
		if allUsers[i].Username == newUsername {
			found = true
		}
	}
	assert.True(t, found)

	// password hashes stay in the db
	assert.NotContains(t, rawUsersJson, "password")

	// username taken
	newUserReqJson, err := json.Marshal(newUserRequest{
		Username: newUsername,
		Name:     "Copycat",
		Password: "some-valid-pass",
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST", serverEndpoint+"/users",
		bytes.NewBuffer(newUserReqJson),
	)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(respBytes), "username must be unique")

	// password too short
	shortPassReqJson, err := json.Marshal(newUserRequest{
		Username: gofakeit.Username(),
		Password: "ab",
	})
	require.NoError(t, err)

	req, err = http.NewRequestWithContext(
		ctx,
		"POST", serverEndpoint+"/users",
		bytes.NewBuffer(shortPassReqJson),
	)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err = s.httpClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
