package blog

import (
	"errors"
	"time"
)

var (
	ErrBlogNotFound        = errors.New("blog not found")
	ErrBlogTitleOrURLEmpty = errors.New("blog title or url empty")
	ErrNegativeLikes       = errors.New("blog likes must not be negative")
)

// Owner is the user a blog post belongs to, as exposed on reads.
type Owner struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	Owner     *Owner    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateFields is the full set of client-writable fields. An update
// replaces exactly these four on the stored record; id, owner and
// created_at are never touched by a client-supplied value.
type UpdateFields struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

func (f UpdateFields) Validate() error {
	if f.Title == "" || f.URL == "" {
		return ErrBlogTitleOrURLEmpty
	}
	if f.Likes < 0 {
		return ErrNegativeLikes
	}
	return nil
}
