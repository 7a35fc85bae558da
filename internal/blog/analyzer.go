package blog

import (
	"context"
)

// StatsSummary aggregates the whole stored collection for the
// reporting endpoint.
type StatsSummary struct {
	TotalBlogs   int              `json:"total_blogs"`
	TotalLikes   int              `json:"total_likes"`
	FavoriteBlog *Blog            `json:"favorite_blog,omitempty"`
	MostBlogs    *AuthorBlogCount `json:"most_blogs,omitempty"`
	MostLikes    *AuthorLikes     `json:"most_likes,omitempty"`
}

type Analyzer struct {
	repo blogRepo
}

func NewAnalyzer(repo blogRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) Summary(ctx context.Context) (*StatsSummary, error) {
	blogs, err := a.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsSummary{
		TotalBlogs:   len(blogs),
		TotalLikes:   TotalLikes(blogs),
		FavoriteBlog: FavoriteBlog(blogs),
		MostBlogs:    MostBlogs(blogs),
		MostLikes:    MostLikes(blogs),
	}, nil
}
