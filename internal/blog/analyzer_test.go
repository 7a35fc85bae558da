package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyzer_Summary_noBlogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockblogRepo(ctrl)
	analyzer := NewAnalyzer(repoMock)

	repoMock.EXPECT().All(gomock.Any()).Return([]Blog{}, nil)

	summary, err := analyzer.Summary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.TotalBlogs)
	assert.Equal(t, 0, summary.TotalLikes)
	assert.Nil(t, summary.FavoriteBlog)
	assert.Nil(t, summary.MostBlogs)
	assert.Nil(t, summary.MostLikes)
}

func TestAnalyzer_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockblogRepo(ctrl)
	analyzer := NewAnalyzer(repoMock)

	repoMock.EXPECT().All(gomock.Any()).Return([]Blog{
		{ID: 1, Title: "t1", Author: "A", URL: "u1", Likes: 7},
		{ID: 2, Title: "t2", Author: "B", URL: "u2", Likes: 5},
		{ID: 3, Title: "t3", Author: "B", URL: "u3", Likes: 12},
	}, nil)

	summary, err := analyzer.Summary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 3, summary.TotalBlogs)
	assert.Equal(t, 24, summary.TotalLikes)
	require.NotNil(t, summary.FavoriteBlog)
	assert.Equal(t, 3, summary.FavoriteBlog.ID)
	require.NotNil(t, summary.MostBlogs)
	assert.Equal(t, AuthorBlogCount{Author: "B", Blogs: 2}, *summary.MostBlogs)
	require.NotNil(t, summary.MostLikes)
	assert.Equal(t, AuthorLikes{Author: "B", Likes: 17}, *summary.MostLikes)
}

func TestAnalyzer_Summary_repoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockblogRepo(ctrl)
	analyzer := NewAnalyzer(repoMock)

	repoMock.EXPECT().All(gomock.Any()).Return(nil, errors.New("db unreachable"))

	summary, err := analyzer.Summary(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)
}
