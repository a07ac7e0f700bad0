package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gennova/internal/service"
)

// KitHandler expone operaciones de kit: activacion desde el onboarding y
// avance de etapa desde el laboratorio.
type KitHandler struct {
	logger *zap.Logger
	kits   *service.KitService
}

func NewKitHandler(logger *zap.Logger, kits *service.KitService) *KitHandler {
	return &KitHandler{
		logger: logger,
		kits:   kits,
	}
}

// Activate maneja POST /profiles/:id/kits.
func (h *KitHandler) Activate(c *gin.Context) {
	var req struct {
		Barcode string `json:"barcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid kit activate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	kit, err := h.kits.Activate(c.Request.Context(), c.Param("id"), req.Barcode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBarcodeMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": "barcode required"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			h.logger.Error("kit activate failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not activate kit"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"kit": kit})
}

// Advance maneja POST /kits/:id/advance.
func (h *KitHandler) Advance(c *gin.Context) {
	kit, err := h.kits.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "kit not found"})
		case errors.Is(err, service.ErrKitCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "kit already completed"})
		default:
			h.logger.Error("kit advance failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not advance kit"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"kit": kit})
}
