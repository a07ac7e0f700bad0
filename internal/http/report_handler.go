package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gennova/internal/service"
)

// ReportHandler sirve perfiles, kits y reportes de rasgos.
type ReportHandler struct {
	logger   *zap.Logger
	reports  *service.ReportService
	genetics *service.GeneticsService
}

func NewReportHandler(logger *zap.Logger, reports *service.ReportService, genetics *service.GeneticsService) *ReportHandler {
	return &ReportHandler{
		logger:   logger,
		reports:  reports,
		genetics: genetics,
	}
}

// ListProfiles maneja GET /profiles.
func (h *ReportHandler) ListProfiles(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	profiles, err := h.reports.ListProfiles(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetKit maneja GET /profiles/:id/kit. Un perfil sin kit responde 200 con
// kit null; el cliente decide la pantalla de onboarding.
func (h *ReportHandler) GetKit(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	kit, err := h.reports.ActiveKit(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		h.writeProfileError(c, err, "could not load kit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"kit": kit})
}

// GetReport maneja GET /profiles/:id/report.
func (h *ReportHandler) GetReport(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	report, err := h.reports.BuildReport(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		h.writeProfileError(c, err, "could not build report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetTraitGenetics maneja GET /profiles/:id/traits/:name/genetics.
func (h *ReportHandler) GetTraitGenetics(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	detail, err := h.genetics.TraitDetail(c.Request.Context(), claims.UserID, c.Param("id"), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrTraitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "trait not found"})
			return
		}
		h.writeProfileError(c, err, "could not load genetics")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListTraits maneja GET /traits: la taxonomia de rasgos soportados,
// opcionalmente filtrada con ?category=.
func (h *ReportHandler) ListTraits(c *gin.Context) {
	traits, err := h.genetics.Taxonomy(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.logger.Error("list traits failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load traits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"traits": traits})
}

func (h *ReportHandler) writeProfileError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		h.logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
