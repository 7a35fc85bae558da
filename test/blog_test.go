package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/2beens/bloglist/internal/blog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) getBlogPosts(ctx context.Context, t *testing.T) []blog.Blog {
	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+"/blogs", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var blogPosts []blog.Blog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&blogPosts))
	return blogPosts
}

func (s *IntegrationTestSuite) newBlogRequest(
	ctx context.Context,
	t *testing.T,
	authToken string,
	body string,
) *http.Response {
	req, err := http.NewRequestWithContext(
		ctx,
		"POST", serverEndpoint+"/blogs",
		bytes.NewBufferString(body),
	)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (s *IntegrationTestSuite) TestBlogLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authToken := s.doLogin(ctx, t)

	// no token, no new blog
	resp := s.newBlogRequest(ctx, t, "", `{"title":"sneaky","url":"http://sneaky.com"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// missing url
	resp = s.newBlogRequest(ctx, t, authToken, `{"title":"incomplete"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// create, likes omitted and defaulted to zero
	resp = s.newBlogRequest(ctx, t, authToken,
		`{"title":"Go Proverbs","author":"Rob Pike","url":"https://go-proverbs.github.io"}`,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var createdBlog blog.Blog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&createdBlog))
	resp.Body.Close()

	assert.True(t, createdBlog.ID > 0)
	assert.Equal(t, 0, createdBlog.Likes)
	require.NotNil(t, createdBlog.Owner)
	assert.Equal(t, testUsername, createdBlog.Owner.Username)

	blogPosts := s.getBlogPosts(ctx, t)
	found := false
	for i := range blogPosts {
		if blogPosts[i].ID == createdBlog.ID {
			found = true
			assert.Equal(t, "Go Proverbs", blogPosts[i].Title)
		}
	}
	assert.True(t, found)

	// update likes, no token needed with the default policy
	updateReq, err := http.NewRequestWithContext(
		ctx,
		"PUT", fmt.Sprintf("%s/blogs/%d", serverEndpoint, createdBlog.ID),
		bytes.NewBufferString(`{"title":"Go Proverbs","author":"Rob Pike","url":"https://go-proverbs.github.io","likes":7}`),
	)
	require.NoError(t, err)
	updateReq.Header.Set("User-Agent", "test-agent")
	updateReq.Header.Set("Content-Type", "application/json")

	updateResp, err := s.httpClient.Do(updateReq)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, updateResp.StatusCode)
	var updatedBlog blog.Blog
	require.NoError(t, json.NewDecoder(updateResp.Body).Decode(&updatedBlog))
	updateResp.Body.Close()
	assert.Equal(t, 7, updatedBlog.Likes)

	// delete, twice, both fine
	for i := 0; i < 2; i++ {
		deleteReq, err := http.NewRequestWithContext(
			ctx,
			"DELETE", fmt.Sprintf("%s/blogs/%d", serverEndpoint, createdBlog.ID),
			nil,
		)
		require.NoError(t, err)
		deleteReq.Header.Set("User-Agent", "test-agent")

		deleteResp, err := s.httpClient.Do(deleteReq)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, deleteResp.StatusCode)
		deleteResp.Body.Close()
	}

	blogPosts = s.getBlogPosts(ctx, t)
	for i := range blogPosts {
		assert.NotEqual(t, createdBlog.ID, blogPosts[i].ID)
	}
}

func (s *IntegrationTestSuite) TestBlogStats() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authToken := s.doLogin(ctx, t)
	for i := 1; i <= 3; i++ {
		resp := s.newBlogRequest(ctx, t, authToken, fmt.Sprintf(
			`{"title":"stats blog %d","author":"Stats Author","url":"http://stats%d.com","likes":%d}`,
			i, i, i*3,
		))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	blogPosts := s.getBlogPosts(ctx, t)
	expectedTotalLikes := 0
	for i := range blogPosts {
		expectedTotalLikes += blogPosts[i].Likes
	}

	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+"/blogs/stats", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary blog.StatsSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))

	assert.Equal(t, len(blogPosts), summary.TotalBlogs)
	assert.Equal(t, expectedTotalLikes, summary.TotalLikes)
	require.NotNil(t, summary.FavoriteBlog)
	require.NotNil(t, summary.MostBlogs)
	require.NotNil(t, summary.MostLikes)
}
