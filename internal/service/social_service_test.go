package service

import (
	"context"
	"errors"
	"testing"

	"microblogging/internal/models"
)

func TestSocialGraphService_Follow(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		username string
		target   string
		wantErr  error
	}{
		{
			name:     "success",
			existing: []string{"alice", "bob"},
			username: "alice",
			target:   "bob",
		},
		{
			name:     "self follow rejected",
			existing: []string{"alice"},
			username: "alice",
			target:   "alice",
			wantErr:  ErrSelfFollow,
		},
		{
			name:     "acting user missing",
			existing: []string{"bob"},
			username: "alice",
			target:   "bob",
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "target missing",
			existing: []string{"alice"},
			username: "alice",
			target:   "bob",
			wantErr:  ErrTargetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := usersWith(tt.existing...)
			follows := &mockFollows{}
			svc := NewSocialGraphService(users, follows)

			err := svc.Follow(context.Background(), tt.username, tt.target)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(follows.addCalls) != 0 {
					t.Fatalf("expected no Add calls, got %d", len(follows.addCalls))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := models.FollowEdge{Username: tt.username, FollowerUsername: tt.target}
			if len(follows.addCalls) != 1 || follows.addCalls[0] != want {
				t.Fatalf("unexpected Add calls: %+v", follows.addCalls)
			}
		})
	}
}

func TestSocialGraphService_Follow_ChecksActorBeforeTarget(t *testing.T) {
	// Neither user exists: the acting user's not-found must win so the
	// two cases stay distinguishable for clients.
	users := usersWith()
	svc := NewSocialGraphService(users, &mockFollows{})

	err := svc.Follow(context.Background(), "alice", "bob")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(users.getCalls) != 1 || users.getCalls[0] != "alice" {
		t.Fatalf("expected single lookup of acting user first, got %v", users.getCalls)
	}
}

func TestSocialGraphService_Follow_NoDuplicateCheck(t *testing.T) {
	users := usersWith("alice", "bob")
	follows := &mockFollows{}
	svc := NewSocialGraphService(users, follows)

	for i := 0; i < 2; i++ {
		if err := svc.Follow(context.Background(), "alice", "bob"); err != nil {
			t.Fatalf("follow %d returned error: %v", i+1, err)
		}
	}
	if len(follows.addCalls) != 2 {
		t.Fatalf("expected 2 Add calls (duplicate edges allowed), got %d", len(follows.addCalls))
	}
}

func TestSocialGraphService_Unfollow(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		username string
		target   string
		wantErr  error
	}{
		{
			name:     "success",
			existing: []string{"alice", "bob"},
			username: "alice",
			target:   "bob",
		},
		{
			name:     "self unfollow rejected",
			existing: []string{"alice"},
			username: "alice",
			target:   "alice",
			wantErr:  ErrSelfFollow,
		},
		{
			name:     "acting user missing",
			existing: []string{"bob"},
			username: "alice",
			target:   "bob",
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "target missing",
			existing: []string{"alice"},
			username: "alice",
			target:   "bob",
			wantErr:  ErrTargetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			follows := &mockFollows{}
			svc := NewSocialGraphService(usersWith(tt.existing...), follows)

			err := svc.Unfollow(context.Background(), tt.username, tt.target)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := models.FollowEdge{Username: tt.username, FollowerUsername: tt.target}
			if len(follows.removeCalls) != 1 || follows.removeCalls[0] != want {
				t.Fatalf("unexpected Remove calls: %+v", follows.removeCalls)
			}
		})
	}
}
