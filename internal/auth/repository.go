package auth

import (
	"context"
	"sync"
)

// Repository is the in-memory user collection shared by all requests.
// Records live for the process lifetime; there is no delete operation.
//
// Email lookups are case-sensitive exact matches.
type Repository struct {
	mu      sync.RWMutex
	users   []*User
	byEmail map[string]*User
	byID    map[string]*User
}

// NewRepository constructs an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

// Insert appends a new user. The uniqueness check and the append share
// one critical section, so concurrent inserts for the same email resolve
// to exactly one success and one ErrEmailTaken.
func (r *Repository) Insert(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return ErrEmailTaken
	}

	stored := user
	r.users = append(r.users, &stored)
	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored

	return nil
}

// FindByEmail fetches a user by exact email.
func (r *Repository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrUserNotFound
	}

	return *user, nil
}

// FindByID fetches a user by id.
func (r *Repository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return User{}, ErrUserNotFound
	}

	return *user, nil
}

// Update overwrites the stored record for user.ID in place. ID, email
// and join date are immutable once registered, so the keyed indexes stay
// valid.
func (r *Repository) Update(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[user.ID]
	if !ok {
		return ErrUserNotFound
	}

	user.Email = stored.Email
	user.JoinDate = stored.JoinDate
	*stored = user

	return nil
}

// Len reports how many users are registered.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
