package users

import (
	"errors"
	"time"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 3
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username must be unique")
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	// ids of the blogs owned by this user
	Blogs []int `json:"blogs"`
}
