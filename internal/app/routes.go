package app

import (
	"github.com/gin-gonic/gin"
	"github.com/mostafaAnwar9/EmotionDetection/internal/middleware"
	"github.com/mostafaAnwar9/EmotionDetection/internal/modules/activity"
	"github.com/mostafaAnwar9/EmotionDetection/internal/modules/auth"
	"github.com/mostafaAnwar9/EmotionDetection/internal/modules/emotion"
	"github.com/mostafaAnwar9/EmotionDetection/internal/modules/history"
	"github.com/mostafaAnwar9/EmotionDetection/internal/pkg/response"
)

func (a *App) registerRoutes(opts Options) {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")

	authSvc := auth.NewService(a.db.Users())
	authMW := middleware.Auth(authSvc)

	// Authentication
	auth.NewHandler(authSvc, a.logger).RegisterRoutes(api)

	// Inference
	emotionSvc := emotion.NewService(
		opts.Locator,
		opts.Classifier,
		emotion.NewMongoRecorder(a.db.Predictions()),
	)
	emotion.NewHandler(emotionSvc, a.logger).RegisterRoutes(api, authMW)

	// History & analytics
	history.NewHandler(history.NewService(a.db.Predictions()), a.logger).RegisterRoutes(api, authMW)

	// Calming activities (public, like the rest of the activity surface)
	activity.NewHandler().RegisterRoutes(api)
}
