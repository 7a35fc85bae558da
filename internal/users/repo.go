package users

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/bloglist/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, user *User) error {
	if user.Username == "" {
		return fmt.Errorf("add user: username empty")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users (username, name, password_hash, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
		user.Username, user.Name, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("add user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("add user: %w", err)
		}
		return fmt.Errorf("add user: no id returned")
	}

	if err := rows.Scan(&user.ID); err != nil {
		return fmt.Errorf("add user, scan id: %w", err)
	}

	return nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, name, password_hash, created_at FROM users WHERE username = $1`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	defer rows.Close()

	return scanSingleUser(rows)
}

func (r *Repo) GetByID(ctx context.Context, id int) (*User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, name, password_hash, created_at FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	defer rows.Close()

	return scanSingleUser(rows)
}

// All returns all users together with the ids of the blogs they own.
func (r *Repo) All(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT u.id, u.username, u.name, u.password_hash, u.created_at, b.id
			FROM users u
			LEFT JOIN blog b ON b.owner_id = u.id
			ORDER BY u.id, b.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	defer rows.Close()

	var allUsers []User
	byID := make(map[int]int) // user id to index in allUsers
	for rows.Next() {
		var user User
		var blogID *int
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt, &blogID,
		); err != nil {
			return nil, fmt.Errorf("get all users, scan row: %w", err)
		}

		idx, seen := byID[user.ID]
		if !seen {
			user.Blogs = []int{}
			allUsers = append(allUsers, user)
			idx = len(allUsers) - 1
			byID[user.ID] = idx
		}
		if blogID != nil {
			allUsers[idx].Blogs = append(allUsers[idx].Blogs, *blogID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get all users, rows: %w", err)
	}

	return allUsers, nil
}

func scanSingleUser(rows pgx.Rows) (*User, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		return nil, ErrUserNotFound
	}

	var user User
	if err := rows.Scan(
		&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &user, nil
}
