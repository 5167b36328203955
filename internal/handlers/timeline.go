package handlers

import (
	"errors"
	"net/http"

	"microblogging/internal/service"

	"github.com/gin-gonic/gin"
)

type postTweetRequest struct {
	Username *string `json:"username"`
	Post     *string `json:"post"`
}

// PostTweetRequest is an exported model for Swagger docs of the postTweet payload.
type PostTweetRequest struct {
	Username string `json:"username" example:"alice"`
	Post     string `json:"post" example:"hello world"`
}

// @Summary      Post a tweet
// @Description  An unknown author is reported as a 400, not a 404 (legacy contract).
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        body  body  PostTweetRequest  true  "Author and post text"
// @Success      200   {object}  apiResponse  "StatusCode 200, Tweet Posted Successfully"
// @Router       /v1/postTweet [post]
func (h *Handler) postTweet(c *gin.Context) {
	var req postTweetRequest
	if ok := h.bindBody(c, &req); !ok || req.Username == nil || req.Post == nil {
		h.respond(c, http.StatusBadRequest, msgMissingTweetFields)
		return
	}

	err := h.services.Timeline.Post(c.Request.Context(), *req.Username, *req.Post)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		h.respond(c, http.StatusBadRequest, msgTweetUserNotFound)
	case err != nil:
		h.internalError(c, "post_tweet_failed", err, "username", *req.Username)
	default:
		h.respond(c, http.StatusOK, msgTweetPosted)
	}
}

// @Summary      User timeline
// @Description  Up to 25 most recent post contents by the given author, newest first. An empty result is reported as a 400 envelope.
// @Tags         timeline
// @Produce      json
// @Param        author  query  string  false  "Author username"
// @Success      200  {object}  apiResponse  "StatusCode 200, list of post contents"
// @Router       /v1/userTimeline [get]
func (h *Handler) getUserTimeline(c *gin.Context) {
	contents, err := h.services.Timeline.UserTimeline(c.Request.Context(), c.Query("author"))
	switch {
	case errors.Is(err, service.ErrNoPosts):
		h.respond(c, http.StatusBadRequest, msgUserPostsNotFound)
	case err != nil:
		h.internalError(c, "user_timeline_failed", err, "author", c.Query("author"))
	default:
		h.respond(c, http.StatusOK, contents)
	}
}

// @Summary      Public timeline
// @Description  Up to 25 most recent posts system-wide, newest first. An empty result is reported as a 400 envelope.
// @Tags         timeline
// @Produce      json
// @Success      200  {object}  apiResponse  "StatusCode 200, list of post rows"
// @Router       /v1/publicTimeline [get]
func (h *Handler) getPublicTimeline(c *gin.Context) {
	posts, err := h.services.Timeline.PublicTimeline(c.Request.Context())
	switch {
	case errors.Is(err, service.ErrNoPosts):
		h.respond(c, http.StatusBadRequest, msgPostsNotFound)
	case err != nil:
		h.internalError(c, "public_timeline_failed", err)
	default:
		h.respond(c, http.StatusOK, posts)
	}
}

// @Summary      Home timeline
// @Description  Up to 25 most recent posts authored by anyone the given username follows, newest first. An empty result is reported as a 400 envelope.
// @Tags         timeline
// @Produce      json
// @Param        username  query  string  false  "Username whose home timeline to read"
// @Success      200  {object}  apiResponse  "StatusCode 200, list of post rows"
// @Router       /v1/homeTimeline [get]
func (h *Handler) getHomeTimeline(c *gin.Context) {
	posts, err := h.services.Timeline.HomeTimeline(c.Request.Context(), c.Query("username"))
	switch {
	case errors.Is(err, service.ErrNoPosts):
		h.respond(c, http.StatusBadRequest, msgPostsNotFound)
	case err != nil:
		h.internalError(c, "home_timeline_failed", err, "username", c.Query("username"))
	default:
		h.respond(c, http.StatusOK, posts)
	}
}
