package service

import (
	"context"

	"microblogging/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUsers struct {
	CreateFn        func(u models.User) error
	GetByUsernameFn func(username string) (*models.User, error)
	ListFn          func() ([]models.User, error)

	createCalls []models.User
	getCalls    []string
}

func (m *mockUsers) Create(_ context.Context, u models.User) error {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUsers) List(_ context.Context) ([]models.User, error) {
	return m.ListFn()
}

// usersWith returns a mockUsers whose GetByUsername knows exactly the
// given accounts.
func usersWith(existing ...string) *mockUsers {
	known := make(map[string]bool, len(existing))
	for _, u := range existing {
		known[u] = true
	}
	return &mockUsers{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if known[username] {
				return &models.User{Username: username}, nil
			}
			return nil, nil
		},
	}
}

type mockFollows struct {
	AddFn    func(e models.FollowEdge) error
	RemoveFn func(e models.FollowEdge) error

	addCalls    []models.FollowEdge
	removeCalls []models.FollowEdge
}

func (m *mockFollows) Add(_ context.Context, e models.FollowEdge) error {
	m.addCalls = append(m.addCalls, e)
	if m.AddFn == nil {
		return nil
	}
	return m.AddFn(e)
}

func (m *mockFollows) Remove(_ context.Context, e models.FollowEdge) error {
	m.removeCalls = append(m.removeCalls, e)
	if m.RemoveFn == nil {
		return nil
	}
	return m.RemoveFn(e)
}

type mockPosts struct {
	CreateFn           func(p models.Post) error
	ContentsByAuthorFn func(author string, limit int) ([]string, error)
	RecentFn           func(limit int) ([]models.Post, error)
	HomeFn             func(username string, limit int) ([]models.Post, error)

	createCalls []models.Post
	lastLimit   int
}

func (m *mockPosts) Create(_ context.Context, p models.Post) error {
	m.createCalls = append(m.createCalls, p)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(p)
}

func (m *mockPosts) ContentsByAuthor(_ context.Context, author string, limit int) ([]string, error) {
	m.lastLimit = limit
	return m.ContentsByAuthorFn(author, limit)
}

func (m *mockPosts) Recent(_ context.Context, limit int) ([]models.Post, error) {
	m.lastLimit = limit
	return m.RecentFn(limit)
}

func (m *mockPosts) Home(_ context.Context, username string, limit int) ([]models.Post, error) {
	m.lastLimit = limit
	return m.HomeFn(username, limit)
}
