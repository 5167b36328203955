package repository

import (
	"context"
	"database/sql"

	"microblogging/internal/models"
)

// Users provides access to registered accounts.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Follows maintains the directed follow-edge set.
type Follows interface {
	Add(ctx context.Context, e models.FollowEdge) error
	Remove(ctx context.Context, e models.FollowEdge) error
}

// Posts provides the append-only post store and its timeline reads.
type Posts interface {
	Create(ctx context.Context, p models.Post) error
	ContentsByAuthor(ctx context.Context, author string, limit int) ([]string, error)
	Recent(ctx context.Context, limit int) ([]models.Post, error)
	Home(ctx context.Context, username string, limit int) ([]models.Post, error)
}

type Repository struct {
	Users   Users
	Follows Follows
	Posts   Posts
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(conn),
		Follows: NewFollowRepository(conn),
		Posts:   NewPostRepository(conn),
	}
}
