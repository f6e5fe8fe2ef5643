package history

import (
	"strconv"
	"strings"

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
	rg.GET("/history", authMW, h.history)
	rg.GET("/analytics", authMW, h.analytics)
}

func (h *Handler) history(c *gin.Context) {
	user := middleware.CurrentUser(c)
	deviceID := c.Query("device_id")

	limit := int64(DefaultLimit)
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = n
	}

	records, err := h.svc.History(c.Request.Context(), user.Email, deviceID, limit)
	if err != nil {
		h.logger.Error("history query failed", zap.String("user", user.Email), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, records)
}

func (h *Handler) analytics(c *gin.Context) {
	user := middleware.CurrentUser(c)

	stats, err := h.svc.Analytics(c.Request.Context(), user.Email, c.Query("device_id"))
	if err != nil {
		h.logger.Error("analytics query failed", zap.String("user", user.Email), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}
