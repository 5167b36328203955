package service

import (
	"context"

	"microblogging/internal/models"
	"microblogging/internal/repository"
)

// SocialGraphService validates and mutates follow edges. Both users
// must exist; the acting user is checked before the target so the two
// not-found cases stay distinguishable at the boundary.
type SocialGraphService struct {
	users   repository.Users
	follows repository.Follows
}

func NewSocialGraphService(users repository.Users, follows repository.Follows) *SocialGraphService {
	return &SocialGraphService{users: users, follows: follows}
}

var _ SocialGraph = (*SocialGraphService)(nil)

// Follow adds an edge meaning username's home timeline includes
// usernameToFollow's posts. No duplicate check is performed; issuing
// the same follow twice inserts a second edge.
func (s *SocialGraphService) Follow(ctx context.Context, username, usernameToFollow string) error {
	if err := s.checkPair(ctx, username, usernameToFollow); err != nil {
		return err
	}
	return s.follows.Add(ctx, models.FollowEdge{Username: username, FollowerUsername: usernameToFollow})
}

// Unfollow removes every edge matching the exact pair. Removing a
// nonexistent edge still succeeds.
func (s *SocialGraphService) Unfollow(ctx context.Context, username, usernameToRemove string) error {
	if err := s.checkPair(ctx, username, usernameToRemove); err != nil {
		return err
	}
	return s.follows.Remove(ctx, models.FollowEdge{Username: username, FollowerUsername: usernameToRemove})
}

func (s *SocialGraphService) checkPair(ctx context.Context, username, target string) error {
	if username == target {
		return ErrSelfFollow
	}
	actor, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if actor == nil {
		return ErrUserNotFound
	}
	followee, err := s.users.GetByUsername(ctx, target)
	if err != nil {
		return err
	}
	if followee == nil {
		return ErrTargetNotFound
	}
	return nil
}
