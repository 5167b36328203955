package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"microblogging/internal/models"
)

func TestTimelineService_Post(t *testing.T) {
	users := usersWith("alice")
	posts := &mockPosts{}
	svc := NewTimelineService(users, posts)

	before := time.Now().UTC()
	if err := svc.Post(context.Background(), "alice", "hello"); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	if len(posts.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(posts.createCalls))
	}
	created := posts.createCalls[0]
	if created.Author != "alice" || created.PostContent != "hello" {
		t.Fatalf("unexpected post: %+v", created)
	}
	// server-assigned timestamp
	if created.PostTimestamp.Before(before.Add(-time.Second)) || created.PostTimestamp.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("timestamp not server-assigned: %v", created.PostTimestamp)
	}
}

func TestTimelineService_Post_UnknownAuthor(t *testing.T) {
	posts := &mockPosts{}
	svc := NewTimelineService(usersWith(), posts)

	err := svc.Post(context.Background(), "ghost", "boo")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(posts.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(posts.createCalls))
	}
}

func TestTimelineService_UserTimeline(t *testing.T) {
	posts := &mockPosts{
		ContentsByAuthorFn: func(author string, limit int) ([]string, error) {
			if author != "alice" {
				t.Fatalf("unexpected author %q", author)
			}
			return []string{"second", "first"}, nil
		},
	}
	svc := NewTimelineService(usersWith(), posts)

	contents, err := svc.UserTimeline(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 2 || contents[0] != "second" {
		t.Fatalf("unexpected contents: %v", contents)
	}
	if posts.lastLimit != 25 {
		t.Fatalf("expected limit 25, got %d", posts.lastLimit)
	}
}

func TestTimelineService_UserTimeline_EmptyIsError(t *testing.T) {
	// No posts and unknown author are indistinguishable: both surface
	// as ErrNoPosts.
	posts := &mockPosts{
		ContentsByAuthorFn: func(author string, limit int) ([]string, error) {
			return nil, nil
		},
	}
	svc := NewTimelineService(usersWith(), posts)

	_, err := svc.UserTimeline(context.Background(), "nosuchuser")
	if !errors.Is(err, ErrNoPosts) {
		t.Fatalf("expected ErrNoPosts, got %v", err)
	}
}

func TestTimelineService_PublicTimeline(t *testing.T) {
	posts := &mockPosts{
		RecentFn: func(limit int) ([]models.Post, error) {
			return []models.Post{{Author: "bob", PostContent: "hi"}}, nil
		},
	}
	svc := NewTimelineService(usersWith(), posts)

	got, err := svc.PublicTimeline(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Author != "bob" {
		t.Fatalf("unexpected posts: %+v", got)
	}
	if posts.lastLimit != 25 {
		t.Fatalf("expected limit 25, got %d", posts.lastLimit)
	}
}

func TestTimelineService_PublicTimeline_EmptyIsError(t *testing.T) {
	posts := &mockPosts{
		RecentFn: func(limit int) ([]models.Post, error) { return nil, nil },
	}
	svc := NewTimelineService(usersWith(), posts)

	if _, err := svc.PublicTimeline(context.Background()); !errors.Is(err, ErrNoPosts) {
		t.Fatalf("expected ErrNoPosts, got %v", err)
	}
}

func TestTimelineService_HomeTimeline(t *testing.T) {
	posts := &mockPosts{
		HomeFn: func(username string, limit int) ([]models.Post, error) {
			if username != "alice" {
				t.Fatalf("unexpected username %q", username)
			}
			return []models.Post{{Author: "bob", PostContent: "followed"}}, nil
		},
	}
	svc := NewTimelineService(usersWith(), posts)

	got, err := svc.HomeTimeline(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Author != "bob" {
		t.Fatalf("unexpected posts: %+v", got)
	}
	if posts.lastLimit != 25 {
		t.Fatalf("expected limit 25, got %d", posts.lastLimit)
	}
}

func TestTimelineService_HomeTimeline_EmptyIsError(t *testing.T) {
	posts := &mockPosts{
		HomeFn: func(username string, limit int) ([]models.Post, error) { return nil, nil },
	}
	svc := NewTimelineService(usersWith(), posts)

	if _, err := svc.HomeTimeline(context.Background(), "alice"); !errors.Is(err, ErrNoPosts) {
		t.Fatalf("expected ErrNoPosts, got %v", err)
	}
}
