package repository

import (
	"context"
	"database/sql"
	"fmt"

	"microblogging/internal/models"
)

type FollowRepository struct {
	db *sql.DB
}

func NewFollowRepository(db *sql.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

var _ Follows = (*FollowRepository)(nil)

const (
	insertFollowerSQL = `INSERT INTO followers (username, followerUsername) VALUES (?, ?)`
	deleteFollowerSQL = `DELETE FROM followers WHERE username = ? AND followerUsername = ?`
)

// Add inserts a follow edge unconditionally; a repeated follow inserts
// a duplicate edge.
func (r *FollowRepository) Add(ctx context.Context, e models.FollowEdge) error {
	if _, err := r.db.ExecContext(ctx, insertFollowerSQL, e.Username, e.FollowerUsername); err != nil {
		return fmt.Errorf("insert follower edge %q->%q: %w", e.Username, e.FollowerUsername, err)
	}
	return nil
}

// Remove deletes all edges matching the exact pair. Deleting zero rows
// is not an error.
func (r *FollowRepository) Remove(ctx context.Context, e models.FollowEdge) error {
	if _, err := r.db.ExecContext(ctx, deleteFollowerSQL, e.Username, e.FollowerUsername); err != nil {
		return fmt.Errorf("delete follower edge %q->%q: %w", e.Username, e.FollowerUsername, err)
	}
	return nil
}
