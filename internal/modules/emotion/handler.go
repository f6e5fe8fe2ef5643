package emotion

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/mostafaAnwar9/EmotionDetection/internal/middleware"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/predict", authMW, h.predict)
}

func (h *Handler) predict(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No image provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "No image provided")
		return
	}

	user := middleware.CurrentUser(c)
	deviceID := c.GetHeader("device-id")

	result, err := h.svc.Predict(c.Request.Context(), data, user.Email, deviceID)
	if err != nil {
		if IsPipelineError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		h.logger.Error("prediction failed",
			zap.String("user", user.Email),
			zap.Error(err),
		)
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
