package rest

import (
	"net/http"

	"github.com/brkuhgk/Nestara/internal/database"
	"github.com/brkuhgk/Nestara/internal/identity"
	"github.com/brkuhgk/Nestara/internal/notifier"
	"github.com/brkuhgk/Nestara/internal/rest/handler"
	"github.com/brkuhgk/Nestara/internal/rest/middleware/auth"
	"github.com/brkuhgk/Nestara/internal/worker/core"
	"github.com/klauspost/compress/gzhttp"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	houseHandler        *handler.HouseHandler
	topicHandler        *handler.TopicHandler
	ratingHandler       *handler.RatingHandler
	timeBlockHandler    *handler.TimeBlockHandler
	notificationHandler *handler.NotificationHandler
	workerHandler       *handler.WorkerHandler
}

// NewServer creates a new REST API server.
func NewServer(
	db database.Client, provider *identity.Provider, monitor *core.Monitor, logger *zap.Logger,
) (http.Handler, error) {
	notify := notifier.New(db.Model().Notification(), logger)

	// Create server instance with handlers
	server := &Server{
		authHandler:         handler.NewAuthHandler(db, provider, logger),
		userHandler:         handler.NewUserHandler(db, logger),
		houseHandler:        handler.NewHouseHandler(db, logger),
		topicHandler:        handler.NewTopicHandler(db, notify, logger),
		ratingHandler:       handler.NewRatingHandler(db, logger),
		timeBlockHandler:    handler.NewTimeBlockHandler(db, logger),
		notificationHandler: handler.NewNotificationHandler(db, logger),
		workerHandler:       handler.NewWorkerHandler(monitor, logger),
	}

	// Create middleware instances
	authMiddleware := auth.New(provider, logger)

	// Create base router
	router := bunrouter.New()

	// Public routes
	router.WithGroup("/v1/auth", func(g *bunrouter.Group) {
		g.POST("/register", server.authHandler.Register)
		g.POST("/login", server.authHandler.Login)
	})

	// Authenticated routes
	router.Use(authMiddleware.AsRESTMiddleware).WithGroup("/v1", func(g *bunrouter.Group) {
		g.GET("/users/me", server.userHandler.GetSelf)
		g.PATCH("/users/me", server.userHandler.UpdateSelf)
		g.GET("/users/:id", server.userHandler.GetUser)
		g.GET("/users/:id/ratings", server.ratingHandler.GetUserRatings)
		g.POST("/users/:id/ratings", server.ratingHandler.UpdateUserRating)
		g.GET("/ratings/history", server.ratingHandler.GetOwnRatingHistory)

		g.POST("/houses", server.houseHandler.CreateHouse)
		g.GET("/houses/:id", server.houseHandler.GetHouse)
		g.POST("/houses/:id/members", server.houseHandler.AddMember)
		g.PATCH("/houses/:id/members/:userId", server.houseHandler.UpdateMemberStatus)

		g.POST("/houses/:id/topics", server.topicHandler.CreateTopic)
		g.GET("/houses/:id/topics", server.topicHandler.GetHouseTopics)
		g.GET("/topics/:id", server.topicHandler.GetTopic)
		g.POST("/topics/:id/votes", server.topicHandler.Vote)
		g.GET("/topics/:id/votes", server.topicHandler.GetVoteStatus)

		g.POST("/houses/:id/timeblocks", server.timeBlockHandler.CreateTimeBlock)
		g.GET("/houses/:id/timeblocks/:location", server.timeBlockHandler.GetLocationTimeBlocks)
		g.GET("/timeblocks", server.timeBlockHandler.GetOwnTimeBlocks)
		g.DELETE("/timeblocks/:id", server.timeBlockHandler.DeleteTimeBlock)

		g.GET("/notifications", server.notificationHandler.GetOwnNotifications)
		g.POST("/notifications/:id/read", server.notificationHandler.MarkNotificationRead)

		g.GET("/workers/status", server.workerHandler.GetWorkerStatuses)
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router), nil
}
