package activity

import (
	"github.com/gin-gonic/gin"
	"github.com/mostafaAnwar9/EmotionDetection/internal/pkg/response"
)

type Handler struct {
	tips    *Rotation
	stories *Rotation
	game    *Game
}

func NewHandler() *Handler {
	return &Handler{
		tips:    NewRotation(tipsPool, tipsSentinel),
		stories: NewRotation(storiesPool, storiesSentinel),
		game:    NewGame(),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/activities")

	a.GET("", h.listActivities)
	a.GET("/tip", h.tip)
	a.GET("/story", h.story)
	a.POST("/tic_tac_toe", h.ticTacToe)
}

func (h *Handler) listActivities(c *gin.Context) {
	emotion := c.Query("emotion")
	if emotion == "" {
		response.BadRequest(c, "Emotion parameter is required")
		return
	}

	activities := []activityInfo{}
	if !positiveEmotions[emotion] {
		activities = calmingActivities
	}
	response.OK(c, gin.H{"activities": activities})
}

func (h *Handler) tip(c *gin.Context) {
	response.OK(c, gin.H{"tip": h.tips.Next()})
}

func (h *Handler) story(c *gin.Context) {
	response.OK(c, gin.H{"story": h.stories.Next()})
}

func (h *Handler) ticTacToe(c *gin.Context) {
	var dto ticTacToeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	result, err := h.game.Play(dto.Board, *dto.Move)
	if err != nil {
		response.BadRequest(c, "Invalid move")
		return
	}
	response.OK(c, result)
}
