package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		loginReq           loginRequest
		expectedStatusCode int
		assertFunc         func(resp *http.Response)
	}{
		"good creds": {
			loginReq: loginRequest{
				Username: testUsername,
				Password: testPassword,
			},
			expectedStatusCode: http.StatusOK,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				var loginResp loginResponse
				require.NoError(t, json.Unmarshal(respBytes, &loginResp))
				assert.NotEmpty(t, loginResp.Token)
				assert.Equal(t, testUsername, loginResp.Username)
				assert.Equal(t, testName, loginResp.Name)
			},
		},
		"bad password": {
			loginReq: loginRequest{
				Username: testUsername,
				Password: "bad-password",
			},
			expectedStatusCode: http.StatusUnauthorized,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(respBytes), "invalid username or password")
			},
		},
		"unknown user": {
			loginReq: loginRequest{
				Username: "who-is-this",
				Password: testPassword,
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		"empty password": {
			loginReq: loginRequest{
				Username: testUsername,
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for name, tc := range cases {
		loginReqJson, err := json.Marshal(tc.loginReq)
		require.NoError(t, err, name)

		req, err := http.NewRequestWithContext(
			ctx,
			"POST", serverEndpoint+"/login",
			bytes.NewBuffer(loginReqJson),
		)
		require.NoError(t, err, name)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err, name)
		assert.Equal(t, tc.expectedStatusCode, resp.StatusCode, name)
		if tc.assertFunc != nil {
			tc.assertFunc(resp)
		}
		resp.Body.Close()
	}
}

func (s *IntegrationTestSuite) TestLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authToken := s.doLogin(ctx, t)

	logoutReq, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/logout", nil)
	require.NoError(t, err)
	logoutReq.Header.Set("User-Agent", "test-agent")
	logoutReq.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := s.httpClient.Do(logoutReq)
	require.NoError(t, err)
	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "logged out", strings.TrimSpace(string(respBytes)))

	// the token is gone now
	logoutAgainReq, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/logout", nil)
	require.NoError(t, err)
	logoutAgainReq.Header.Set("User-Agent", "test-agent")
	logoutAgainReq.Header.Set("Authorization", "Bearer "+authToken)

	resp, err = s.httpClient.Do(logoutAgainReq)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
