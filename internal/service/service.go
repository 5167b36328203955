package service

import (
	"context"
	"errors"

	"microblogging/internal/models"
	"microblogging/internal/repository"
)

// Domain errors shared across services. Handlers map these to the
// wire-level status code and message for each endpoint.
var (
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrTargetNotFound = errors.New("target user not found")
	ErrSelfFollow     = errors.New("user cannot follow themselves")
	ErrNoPosts        = errors.New("no posts found")
)

// Accounts exposes registration, listing and credential verification.
type Accounts interface {
	Register(ctx context.Context, username, password, email string) error
	List(ctx context.Context) ([]models.User, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

// SocialGraph maintains follow/unfollow edges between existing users.
type SocialGraph interface {
	Follow(ctx context.Context, username, usernameToFollow string) error
	Unfollow(ctx context.Context, username, usernameToRemove string) error
}

// Timeline exposes post creation and the three timeline reads. All
// reads apply the fixed limit of 25, newest first.
type Timeline interface {
	Post(ctx context.Context, username, content string) error
	UserTimeline(ctx context.Context, author string) ([]string, error)
	PublicTimeline(ctx context.Context) ([]models.Post, error)
	HomeTimeline(ctx context.Context, username string) ([]models.Post, error)
}

type Service struct {
	Accounts
	SocialGraph
	Timeline
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Accounts:    NewAccountService(repos.Users),
		SocialGraph: NewSocialGraphService(repos.Users, repos.Follows),
		Timeline:    NewTimelineService(repos.Users, repos.Posts),
	}
}
