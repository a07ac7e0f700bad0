package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gennova/internal/domain"
	"gennova/internal/service"
)

// AssistantHandler expone el chat del asistente genetico. Las fallas del LLM
// nunca son errores HTTP: el texto de fallback viaja como respuesta normal.
type AssistantHandler struct {
	logger    *zap.Logger
	assistant *service.AssistantService
}

func NewAssistantHandler(logger *zap.Logger, assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		logger:    logger,
		assistant: assistant,
	}
}

// Chat maneja POST /assistant/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		ProfileID string `json:"profile_id" binding:"required"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user := domain.User{ID: claims.UserID, Email: claims.Email, DisplayName: claims.DisplayName}
	reply, err := h.assistant.Chat(c.Request.Context(), user, req.ProfileID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		default:
			h.logger.Error("assistant chat failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not chat"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
