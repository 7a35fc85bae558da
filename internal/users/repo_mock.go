package users

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ usersRepo = (*repoMock)(nil)

type repoMock struct {
	Users  map[int]*User
	nextID int
	mutex  sync.Mutex
}

func newRepoMock() *repoMock {
	return &repoMock{
		Users:  make(map[int]*User),
		nextID: 1,
	}
}

func (r *repoMock) UsersCount() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.Users)
}

func (r *repoMock) Add(_ context.Context, user *User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, u := range r.Users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}

	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	stored := *user
	r.Users[user.ID] = &stored
	return nil
}

func (r *repoMock) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, u := range r.Users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repoMock) GetByID(_ context.Context, id int) (*User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	u, ok := r.Users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	found := *u
	return &found, nil
}

func (r *repoMock) All(_ context.Context) ([]User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	allUsers := make([]User, 0, len(r.Users))
	for _, u := range r.Users {
		allUsers = append(allUsers, *u)
	}

	sort.Slice(allUsers, func(i, j int) bool {
		return allUsers[i].ID < allUsers[j].ID
	})

	return allUsers, nil
}
