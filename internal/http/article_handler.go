package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gennova/internal/service"
)

// ArticleHandler sirve el feed de insights.
type ArticleHandler struct {
	logger   *zap.Logger
	articles *service.ArticleService
}

func NewArticleHandler(logger *zap.Logger, articles *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		logger:   logger,
		articles: articles,
	}
}

// List maneja GET /articles.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list articles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Detail maneja GET /articles/:id.
func (h *ArticleHandler) Detail(c *gin.Context) {
	detail, err := h.articles.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.logger.Error("article detail failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load article"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Reindex maneja POST /articles/reindex: recalcula los embeddings del feed
// completo. Pensado para correrse tras cargar contenido nuevo.
func (h *ArticleHandler) Reindex(c *gin.Context) {
	updated, err := h.articles.Reindex(c.Request.Context())
	if err != nil {
		h.logger.Error("article reindex failed", zap.Error(err), zap.Int("updated", updated))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reindex articles", "updated": updated})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Related maneja GET /articles/:id/related.
func (h *ArticleHandler) Related(c *gin.Context) {
	related, err := h.articles.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.logger.Error("related articles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load related articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": related})
}
