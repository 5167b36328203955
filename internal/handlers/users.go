package handlers

import (
	"errors"
	"net/http"

	"microblogging/internal/service"

	"github.com/gin-gonic/gin"
)

// DTO fields are pointers so an absent key is distinguishable from an
// explicit empty string: only the former counts as a missing field.
type createUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

type authenticateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// CreateUserRequest is an exported model for Swagger docs of the createUser payload.
type CreateUserRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cr3t"`
	Email    string `json:"email" example:"alice@example.com"`
}

// AuthenticateRequest is an exported model for Swagger docs of the authenticateUser payload.
type AuthenticateRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cr3t"`
}

// bindBody decodes the request body into dst. A malformed body yields
// false; callers respond with their endpoint's missing-fields message.
func (h *Handler) bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		}
		return false
	}
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  CreateUserRequest  true  "Credentials and email"
// @Success      200   {object}  apiResponse  "StatusCode 200, User Created Successfully"
// @Router       /v1/createUser [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if ok := h.bindBody(c, &req); !ok || req.Username == nil || req.Password == nil || req.Email == nil {
		h.respond(c, http.StatusBadRequest, msgMissingUserFields)
		return
	}

	err := h.services.Accounts.Register(c.Request.Context(), *req.Username, *req.Password, *req.Email)
	switch {
	case errors.Is(err, service.ErrUserExists):
		h.respond(c, http.StatusConflict, msgUserExists)
	case err != nil:
		h.internalError(c, "create_user_failed", err, "username", *req.Username)
	default:
		h.respond(c, http.StatusOK, msgUserCreated)
	}
}

// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  apiResponse  "StatusCode 200, array of user rows"
// @Router       /v1/getUsers [get]
func (h *Handler) getUsers(c *gin.Context) {
	users, err := h.services.Accounts.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list_users_failed", err)
		return
	}
	h.respond(c, http.StatusOK, users)
}

// @Summary      Verify credentials
// @Description  The match result is returned as a boolean payload inside a success envelope, never as a 401.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  AuthenticateRequest  true  "Credentials"
// @Success      200   {object}  apiResponse  "StatusCode 200, boolean match result"
// @Router       /v1/authenticateUser [post]
func (h *Handler) authenticateUser(c *gin.Context) {
	var req authenticateRequest
	if ok := h.bindBody(c, &req); !ok || req.Username == nil || req.Password == nil {
		h.respond(c, http.StatusBadRequest, msgMissingAuthFields)
		return
	}

	match, err := h.services.Accounts.Authenticate(c.Request.Context(), *req.Username, *req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		h.respond(c, http.StatusNotFound, msgUserNotFound)
	case err != nil:
		h.internalError(c, "authenticate_user_failed", err, "username", *req.Username)
	default:
		h.respond(c, http.StatusOK, match)
	}
}
