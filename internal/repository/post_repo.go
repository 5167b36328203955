package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"microblogging/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

// sqliteTimestampLayout matches SQLite's TIMESTAMP column affinity so
// that lexical and chronological order agree.
const sqliteTimestampLayout = "2006-01-02 15:04:05"

const (
	insertPostSQL = `INSERT INTO posts (author, postContent, postTimestamp) VALUES (?, ?, ?)`

	selectContentsByAuthorSQL = `SELECT postContent FROM posts WHERE author = ? ORDER BY postTimestamp DESC LIMIT ?`

	selectRecentPostsSQL = `SELECT author, postContent, postTimestamp FROM posts ORDER BY postTimestamp DESC LIMIT ?`

	selectHomePostsSQL = `SELECT p.author, p.postContent, p.postTimestamp FROM posts p ` +
		`INNER JOIN followers f ON f.followerUsername = p.author ` +
		`WHERE f.username = ? ORDER BY p.postTimestamp DESC LIMIT ?`
)

// Create appends a new post. A zero timestamp is stamped with the
// current server time.
func (r *PostRepository) Create(ctx context.Context, p models.Post) error {
	if p.PostTimestamp.IsZero() {
		p.PostTimestamp = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, insertPostSQL,
		p.Author,
		p.PostContent,
		p.PostTimestamp.UTC().Format(sqliteTimestampLayout),
	)
	if err != nil {
		return fmt.Errorf("insert post by %q: %w", p.Author, err)
	}
	return nil
}

// ContentsByAuthor returns up to limit most recent post contents
// authored by the given username, newest first.
func (r *PostRepository) ContentsByAuthor(ctx context.Context, author string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectContentsByAuthorSQL, author, limit)
	if err != nil {
		return nil, fmt.Errorf("select posts by %q: %w", author, err)
	}
	defer rows.Close()

	out := make([]string, 0, limit)
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan post content: %w", err)
		}
		out = append(out, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts by %q: %w", author, err)
	}
	return out, nil
}

// Recent returns up to limit most recent posts system-wide, newest first.
func (r *PostRepository) Recent(ctx context.Context, limit int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentPostsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows, limit)
}

// Home returns up to limit most recent posts authored by anyone the
// given username follows, newest first.
func (r *PostRepository) Home(ctx context.Context, username string, limit int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectHomePostsSQL, username, limit)
	if err != nil {
		return nil, fmt.Errorf("select home posts for %q: %w", username, err)
	}
	defer rows.Close()
	return scanPosts(rows, limit)
}

func scanPosts(rows *sql.Rows, capHint int) ([]models.Post, error) {
	out := make([]models.Post, 0, capHint)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.Author, &p.PostContent, &p.PostTimestamp); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		p.PostTimestamp = p.PostTimestamp.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return out, nil
}
