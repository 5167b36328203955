package handlers

import (
	"context"

	"microblogging/internal/models"
	"microblogging/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAccounts struct {
	registerErr error
	listUsers   []models.User
	listErr     error
	authMatch   bool
	authErr     error

	lastRegisterUsername string
	lastRegisterPassword string
	lastRegisterEmail    string
	lastAuthUsername     string
	lastAuthPassword     string
	registerCalls        int
}

func (m *mockAccounts) Register(ctx context.Context, username, password, email string) error {
	m.registerCalls++
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	m.lastRegisterEmail = email
	return m.registerErr
}

func (m *mockAccounts) List(ctx context.Context) ([]models.User, error) {
	return m.listUsers, m.listErr
}

func (m *mockAccounts) Authenticate(ctx context.Context, username, password string) (bool, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authMatch, m.authErr
}

type mockSocialGraph struct {
	followErr   error
	unfollowErr error

	lastFollowPair   [2]string
	lastUnfollowPair [2]string
	followCalls      int
	unfollowCalls    int
}

func (m *mockSocialGraph) Follow(ctx context.Context, username, usernameToFollow string) error {
	m.followCalls++
	m.lastFollowPair = [2]string{username, usernameToFollow}
	return m.followErr
}

func (m *mockSocialGraph) Unfollow(ctx context.Context, username, usernameToRemove string) error {
	m.unfollowCalls++
	m.lastUnfollowPair = [2]string{username, usernameToRemove}
	return m.unfollowErr
}

type mockTimeline struct {
	postErr     error
	userPosts   []string
	userErr     error
	publicPosts []models.Post
	publicErr   error
	homePosts   []models.Post
	homeErr     error

	lastPostUsername string
	lastPostContent  string
	lastUserAuthor   string
	lastHomeUsername string
	postCalls        int
}

func (m *mockTimeline) Post(ctx context.Context, username, content string) error {
	m.postCalls++
	m.lastPostUsername = username
	m.lastPostContent = content
	return m.postErr
}

func (m *mockTimeline) UserTimeline(ctx context.Context, author string) ([]string, error) {
	m.lastUserAuthor = author
	return m.userPosts, m.userErr
}

func (m *mockTimeline) PublicTimeline(ctx context.Context) ([]models.Post, error) {
	return m.publicPosts, m.publicErr
}

func (m *mockTimeline) HomeTimeline(ctx context.Context, username string) ([]models.Post, error) {
	m.lastHomeUsername = username
	return m.homePosts, m.homeErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, false)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func newStrictTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, true)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
