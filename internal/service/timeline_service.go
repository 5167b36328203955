package service

import (
	"context"
	"time"

	"microblogging/internal/models"
	"microblogging/internal/repository"
)

// timelineLimit caps every timeline read.
const timelineLimit = 25

// TimelineService handles post creation and the three timeline reads.
type TimelineService struct {
	users repository.Users
	posts repository.Posts
}

func NewTimelineService(users repository.Users, posts repository.Posts) *TimelineService {
	return &TimelineService{users: users, posts: posts}
}

var _ Timeline = (*TimelineService)(nil)

// Post stores a new post stamped with the current server time. The
// author must exist at write time; the check and the insert are not
// atomic.
func (s *TimelineService) Post(ctx context.Context, username, content string) error {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}
	return s.posts.Create(ctx, models.Post{
		Author:        username,
		PostContent:   content,
		PostTimestamp: time.Now().UTC(),
	})
}

// UserTimeline returns the contents of the author's most recent posts.
// No existence check is made on the author; an unknown name simply
// yields ErrNoPosts, indistinguishable from a user with no posts.
func (s *TimelineService) UserTimeline(ctx context.Context, author string) ([]string, error) {
	contents, err := s.posts.ContentsByAuthor(ctx, author, timelineLimit)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, ErrNoPosts
	}
	return contents, nil
}

// PublicTimeline returns the most recent posts system-wide.
func (s *TimelineService) PublicTimeline(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.Recent(ctx, timelineLimit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}
	return posts, nil
}

// HomeTimeline returns the most recent posts authored by anyone the
// given username follows.
func (s *TimelineService) HomeTimeline(ctx context.Context, username string) ([]models.Post, error) {
	posts, err := s.posts.Home(ctx, username, timelineLimit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}
	return posts, nil
}
