package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mostafaAnwar9/EmotionDetection/internal/config"
	"github.com/mostafaAnwar9/EmotionDetection/internal/database"
	"github.com/mostafaAnwar9/EmotionDetection/internal/middleware"
	"github.com/mostafaAnwar9/EmotionDetection/internal/modules/emotion"
	"github.com/mostafaAnwar9/EmotionDetection/internal/pkg/jwt"
	pkgredis "github.com/mostafaAnwar9/EmotionDetection/internal/pkg/redis"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *database.DB
	logger *zap.Logger
}

// Options override the external collaborators: the face locator and the
// emotion classifier. Nil fields fall back to the defaults (full-frame
// locator, model-server client against cfg.Model.Endpoint).
type Options struct {
	Locator    emotion.Locator
	Classifier emotion.Classifier
}

// New initializes the application: config → Mongo → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig, opts Options) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	jwt.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.RedisURL())
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "device-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RateLimit(rc.Raw()))

	if opts.Locator == nil {
		opts.Locator = emotion.FullFrameLocator{}
	}
	if opts.Classifier == nil {
		opts.Classifier = emotion.NewModelClient(cfg.Model.Endpoint)
	}

	app := &App{cfg: cfg, router: router, db: db, logger: logger}
	app.registerRoutes(opts)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
