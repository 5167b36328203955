package handlers

import (
	"microblogging/internal/logger"
	"microblogging/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "microblogging/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	strictStatus bool
}

// NewHandler constructs a new HTTP handler with dependencies. When
// strictStatus is set, the wire status code mirrors the envelope's
// StatusCode field instead of the legacy always-200 behavior.
func NewHandler(services *service.Service, log *logger.Logger, strictStatus bool) *Handler {
	return &Handler{services: services, log: log, strictStatus: strictStatus}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerV1Routes(router)

	return router
}

func (h *Handler) registerV1Routes(r *gin.Engine) {
	v1 := r.Group("/v1")
	{
		// JSON-body endpoints reject any request whose Content-Type is
		// not application/json before field parsing.
		body := v1.Group("", h.requireJSONContentType)
		{
			body.POST("/createUser", h.createUser)
			body.POST("/authenticateUser", h.authenticateUser)
			body.POST("/addFollower", h.addFollower)
			body.POST("/removeFollower", h.removeFollower)
			body.POST("/postTweet", h.postTweet)
		}

		v1.GET("/getUsers", h.getUsers)
		v1.GET("/userTimeline", h.getUserTimeline)
		v1.GET("/publicTimeline", h.getPublicTimeline)
		v1.GET("/homeTimeline", h.getHomeTimeline)
	}
}
