package service_test

import (
	"context"
	"errors"
	"sync"

	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/google/uuid"
)

type userRepoFake struct {
	mu    sync.Mutex
	users map[string]model.User // keyed by email
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{users: make(map[string]model.User)}
}

func (u *userRepoFake) byEmail(email string) (model.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	m, ok := u.users[email]
	return m, ok
}

func (u *userRepoFake) delete(email string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.users, email)
}

func (u *userRepoFake) CreateUser(_ context.Context, m model.User) (uuid.UUID, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[m.Email]; ok {
		return uuid.Nil, customErrors.ErrAlreadyExists
	}
	u.users[m.Email] = m
	return m.ID, nil
}

func (u *userRepoFake) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	m, ok := u.users[email]
	if !ok {
		return model.User{}, customErrors.ErrNotFound
	}
	return m, nil
}

func (u *userRepoFake) GetUserByID(_ context.Context, id uuid.UUID) (model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, m := range u.users {
		if m.ID == id {
			return m, nil
		}
	}
	return model.User{}, customErrors.ErrNotFound
}

func (u *userRepoFake) UpdateRefreshToken(_ context.Context, email string, token *string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	m, ok := u.users[email]
	if !ok {
		return customErrors.ErrNotFound
	}
	m.RefreshToken = token
	u.users[email] = m
	return nil
}

func (u *userRepoFake) ConfirmEmail(_ context.Context, email string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	m, ok := u.users[email]
	if !ok {
		return customErrors.ErrNotFound
	}
	m.Confirmed = true
	u.users[email] = m
	return nil
}

func (u *userRepoFake) UpdateAvatar(_ context.Context, email string, url string) (model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	m, ok := u.users[email]
	if !ok {
		return model.User{}, customErrors.ErrNotFound
	}
	m.Avatar = url
	u.users[email] = m
	return m, nil
}

type cacheFake struct {
	mu      sync.Mutex
	entries map[string]model.User
	puts    int
	failGet bool
	failPut bool
}

func newCacheFake() *cacheFake {
	return &cacheFake{entries: make(map[string]model.User)}
}

func (c *cacheFake) Get(_ context.Context, email string) (model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return model.User{}, customErrors.WrapInternal(errors.New("connection refused"), "cache get")
	}
	m, ok := c.entries[email]
	if !ok {
		return model.User{}, customErrors.ErrCacheMiss
	}
	return m, nil
}

func (c *cacheFake) Put(_ context.Context, email string, user model.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failPut {
		return customErrors.WrapInternal(errors.New("connection refused"), "cache set")
	}
	c.entries[email] = user
	c.puts++
	return nil
}

type sentMail struct {
	to       string
	username string
	token    string
}

type mailFake struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *mailFake) SendConfirmation(to, username, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, sentMail{to: to, username: username, token: token})
	return nil
}
