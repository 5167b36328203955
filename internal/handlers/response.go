package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiResponse is the uniform envelope every /v1 endpoint returns. Its
// StatusCode field carries the outcome; the wire status stays 200
// unless strict-status mode is enabled.
type apiResponse struct {
	ContentLanguage string `json:"ContentLanguage"`
	ContentType     string `json:"ContentType"`
	StatusCode      int    `json:"StatusCode"`
	Message         any    `json:"Message"`
}

// Response message strings, kept byte-for-byte compatible with the
// legacy service so existing clients keep working.
const (
	msgBadContentType        = "Bad Request. Content type should be json"
	msgMissingUserFields     = "Missing Username or Password or email fields"
	msgUserExists            = "User Already Exists"
	msgUserCreated           = "User Created Successfully"
	msgMissingAuthFields     = "Missing Username or Password fields"
	msgUserNotFound          = "User not found"
	msgMissingFollowFields   = "Bad Request. Missing Username or UsernameToFollow"
	msgSelfFollow            = "Bad Request. User cannot follow himserlf/herself"
	msgFollowTargetNotFound  = "User to Follow not found"
	msgFollowerAdded         = "Follower Added Successfully"
	msgMissingUnfollowFields = "Missing Username or usernameToRemove fields"
	msgRemoveTargetNotFound  = "User to remove not found"
	msgFollowerRemoved       = "Follower Removed Successfully"
	msgMissingTweetFields    = "Missing Username or Post"
	msgTweetUserNotFound     = "User Not Found"
	msgTweetPosted           = "Tweet Posted Successfully"
	msgUserPostsNotFound     = "Posts from the user Not Found"
	msgPostsNotFound         = "Posts Not Found"
	msgInternalError         = "Internal Server Error"
)

// respond writes the envelope. In strict-status mode the wire status
// mirrors the envelope code; by default it is always 200.
func (h *Handler) respond(c *gin.Context, code int, message any) {
	wireStatus := http.StatusOK
	if h.strictStatus {
		wireStatus = code
	}
	c.JSON(wireStatus, apiResponse{
		ContentLanguage: "en-US",
		ContentType:     "application/json",
		StatusCode:      code,
		Message:         message,
	})
}

// respondAbort writes the envelope and stops the middleware chain.
func (h *Handler) respondAbort(c *gin.Context, code int, message any) {
	h.respond(c, code, message)
	c.Abort()
}

// internalError logs a storage-layer failure and surfaces it as an
// envelope 500 for this request only; nothing is fatal to the process.
func (h *Handler) internalError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.respond(c, http.StatusInternalServerError, msgInternalError)
}
