package blog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var _ blogRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddBlog(ctx context.Context, blog *Blog) error {
	if blog.Title == "" || blog.URL == "" {
		return ErrBlogTitleOrURLEmpty
	}
	if blog.Likes < 0 {
		return ErrNegativeLikes
	}
	if blog.Owner == nil {
		return errors.New("blog owner not set")
	}

	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO blog (title, author, url, likes, owner_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		blog.Title, blog.Author, blog.URL, blog.Likes, blog.Owner.ID, blog.CreatedAt,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}

	if rows.Next() {
		var id int
		if err := rows.Scan(&id); err == nil {
			blog.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert blog")
}

// UpdateBlog replaces title, author, url and likes of the blog.
// Owner and created_at stay as they were at creation time.
func (r *Repo) UpdateBlog(ctx context.Context, id int, fields UpdateFields) (*Blog, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE blog SET title = $1, author = $2, url = $3, likes = $4 WHERE id = $5`,
		fields.Title, fields.Author, fields.URL, fields.Likes, id,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrBlogNotFound
	}

	return r.GetBlog(ctx, id)
}

// DeleteBlog removes the blog and reports whether it existed.
// Deleting an unknown id is not an error.
func (r *Repo) DeleteBlog(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		log.Tracef("blog %d not deleted, does not exist", id)
		return false, nil
	}
	return true, nil
}

// All returns every stored blog in insertion order, owner expanded.
func (r *Repo) All(ctx context.Context) ([]Blog, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at,
				u.id, u.username, u.name
			FROM blog b
			JOIN users u ON u.id = b.owner_id
			ORDER BY b.id;
		`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2blogs(rows)
}

func (r *Repo) GetBlog(ctx context.Context, id int) (*Blog, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at,
				u.id, u.username, u.name
			FROM blog b
			JOIN users u ON u.id = b.owner_id
			WHERE b.id = $1;
		`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrBlogNotFound
	}

	return scanBlog(rows)
}

func rows2blogs(rows pgx.Rows) ([]Blog, error) {
	var blogs []Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	return blogs, nil
}

func scanBlog(rows pgx.Rows) (*Blog, error) {
	var b Blog
	var owner Owner
	if err := rows.Scan(
		&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.CreatedAt,
		&owner.ID, &owner.Username, &owner.Name,
	); err != nil {
		return nil, err
	}
	b.Owner = &owner
	return &b, nil
}
