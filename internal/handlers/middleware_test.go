package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"microblogging/internal/service"
)

func TestContentTypeGate_AppliesToAllJSONBodyRoutes(t *testing.T) {
	r := newTestRouter(&service.Service{
		Accounts:    &mockAccounts{},
		SocialGraph: &mockSocialGraph{},
		Timeline:    &mockTimeline{},
	})

	for _, path := range []string{
		"/v1/createUser",
		"/v1/authenticateUser",
		"/v1/addFollower",
		"/v1/removeFollower",
		"/v1/postTweet",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		// exact match required: a charset parameter is a mismatch
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		r.ServeHTTP(w, req)

		env := decodeEnvelope(t, w)
		if env.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: envelope StatusCode=%d, want 400", path, env.StatusCode)
		}
		if got := messageString(t, env); got != "Bad Request. Content type should be json" {
			t.Errorf("%s: unexpected message %q", path, got)
		}
	}
}

func TestContentTypeGate_SkipsGETRoutes(t *testing.T) {
	timeline := &mockTimeline{publicPosts: nil, publicErr: service.ErrNoPosts}
	r := newTestRouter(&service.Service{Timeline: timeline})

	// no Content-Type header at all; must reach the handler
	w := doGet(r, "/v1/publicTimeline")
	env := decodeEnvelope(t, w)
	if got := messageString(t, env); got != "Posts Not Found" {
		t.Fatalf("GET route blocked by content-type gate: %q", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(&service.Service{Accounts: &mockAccounts{}})

	w := doGet(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestRequestIDHeader_EchoesCallerID(t *testing.T) {
	r := newTestRouter(&service.Service{Accounts: &mockAccounts{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Fatalf("expected caller-supplied request id, got %q", got)
	}
}
