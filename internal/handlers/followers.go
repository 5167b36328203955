package handlers

import (
	"errors"
	"net/http"

	"microblogging/internal/service"

	"github.com/gin-gonic/gin"
)

type addFollowerRequest struct {
	Username         *string `json:"username"`
	UsernameToFollow *string `json:"usernameToFollow"`
}

type removeFollowerRequest struct {
	Username         *string `json:"username"`
	UsernameToRemove *string `json:"usernameToRemove"`
}

// AddFollowerRequest is an exported model for Swagger docs of the addFollower payload.
type AddFollowerRequest struct {
	Username         string `json:"username" example:"alice"`
	UsernameToFollow string `json:"usernameToFollow" example:"bob"`
}

// RemoveFollowerRequest is an exported model for Swagger docs of the removeFollower payload.
type RemoveFollowerRequest struct {
	Username         string `json:"username" example:"alice"`
	UsernameToRemove string `json:"usernameToRemove" example:"bob"`
}

// @Summary      Follow a user
// @Description  Adds a follow edge; both users must exist and self-follow is rejected. Repeating the same follow inserts a duplicate edge.
// @Tags         followers
// @Accept       json
// @Produce      json
// @Param        body  body  AddFollowerRequest  true  "Acting user and user to follow"
// @Success      200   {object}  apiResponse  "StatusCode 200, Follower Added Successfully"
// @Router       /v1/addFollower [post]
func (h *Handler) addFollower(c *gin.Context) {
	var req addFollowerRequest
	if ok := h.bindBody(c, &req); !ok || req.Username == nil || req.UsernameToFollow == nil {
		h.respond(c, http.StatusBadRequest, msgMissingFollowFields)
		return
	}

	err := h.services.SocialGraph.Follow(c.Request.Context(), *req.Username, *req.UsernameToFollow)
	switch {
	case errors.Is(err, service.ErrSelfFollow):
		h.respond(c, http.StatusBadRequest, msgSelfFollow)
	case errors.Is(err, service.ErrUserNotFound):
		h.respond(c, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, service.ErrTargetNotFound):
		h.respond(c, http.StatusNotFound, msgFollowTargetNotFound)
	case err != nil:
		h.internalError(c, "add_follower_failed", err, "username", *req.Username)
	default:
		h.respond(c, http.StatusOK, msgFollowerAdded)
	}
}

// @Summary      Unfollow a user
// @Description  Deletes all edges matching the exact pair; a missing edge is still reported as success.
// @Tags         followers
// @Accept       json
// @Produce      json
// @Param        body  body  RemoveFollowerRequest  true  "Acting user and user to unfollow"
// @Success      200   {object}  apiResponse  "StatusCode 200, Follower Removed Successfully"
// @Router       /v1/removeFollower [post]
func (h *Handler) removeFollower(c *gin.Context) {
	var req removeFollowerRequest
	if ok := h.bindBody(c, &req); !ok || req.Username == nil || req.UsernameToRemove == nil {
		h.respond(c, http.StatusBadRequest, msgMissingUnfollowFields)
		return
	}

	err := h.services.SocialGraph.Unfollow(c.Request.Context(), *req.Username, *req.UsernameToRemove)
	switch {
	case errors.Is(err, service.ErrSelfFollow):
		h.respond(c, http.StatusBadRequest, msgSelfFollow)
	case errors.Is(err, service.ErrUserNotFound):
		h.respond(c, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, service.ErrTargetNotFound):
		h.respond(c, http.StatusNotFound, msgRemoveTargetNotFound)
	case err != nil:
		h.internalError(c, "remove_follower_failed", err, "username", *req.Username)
	default:
		h.respond(c, http.StatusOK, msgFollowerRemoved)
	}
}
