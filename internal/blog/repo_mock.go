package blog

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ blogRepo = (*repoMock)(nil)

type repoMock struct {
	Posts  map[int]*Blog
	nextID int
	mutex  sync.Mutex
}

func newRepoMock() *repoMock {
	return &repoMock{
		Posts:  make(map[int]*Blog),
		nextID: 1,
	}
}

func (r *repoMock) PostsCount() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.Posts)
}

func (r *repoMock) AddBlog(_ context.Context, blog *Blog) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if blog.Title == "" || blog.URL == "" {
		return ErrBlogTitleOrURLEmpty
	}

	if blog.ID == 0 {
		blog.ID = r.nextID
	}
	if blog.ID >= r.nextID {
		r.nextID = blog.ID + 1
	}
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}

	stored := *blog
	r.Posts[blog.ID] = &stored
	return nil
}

func (r *repoMock) UpdateBlog(_ context.Context, id int, fields UpdateFields) (*Blog, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	b, ok := r.Posts[id]
	if !ok {
		return nil, ErrBlogNotFound
	}

	b.Title = fields.Title
	b.Author = fields.Author
	b.URL = fields.URL
	b.Likes = fields.Likes

	updated := *b
	return &updated, nil
}

func (r *repoMock) DeleteBlog(_ context.Context, id int) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.Posts[id]; !ok {
		return false, nil
	}

	delete(r.Posts, id)
	return true, nil
}

func (r *repoMock) All(_ context.Context) ([]Blog, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var blogs []Blog
	for id := range r.Posts {
		blogs = append(blogs, *r.Posts[id])
	}

	// insertion order, same as the psql repo
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].ID < blogs[j].ID
	})

	return blogs, nil
}

func (r *repoMock) GetBlog(_ context.Context, id int) (*Blog, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	b, ok := r.Posts[id]
	if !ok {
		return nil, ErrBlogNotFound
	}

	found := *b
	return &found, nil
}
