package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mostafaAnwar9/EmotionDetection/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")

	a.POST("/register", h.register)
	a.POST("/login", h.login)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}
	if err := h.svc.Register(c.Request.Context(), &dto); err != nil {
		if errors.Is(err, errEmailTaken) {
			response.BadRequest(c, "Email already registered")
			return
		}
		h.logger.Error("registration failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"message": "User registered successfully"})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Missing email or password")
		return
	}
	token, u, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		// Unknown user and wrong password share a status code so the two are
		// indistinguishable on the wire; the log keeps the distinction.
		if errors.Is(err, errUserNotFound) {
			h.logger.Info("login failed: unknown user", zap.String("email", dto.Email))
			response.Unauthorized(c, "User not found")
			return
		}
		if errors.Is(err, errWrongPassword) {
			h.logger.Info("login failed: wrong password", zap.String("email", dto.Email))
			response.Unauthorized(c, "Invalid password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, loginResponse{
		Token: token,
		User:  loginUser{Email: u.Email, Name: u.Name},
	})
}
