package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"gennova/internal/domain"
	"gennova/internal/llm"
	"gennova/internal/repository"
)

// ArticleService sirve el feed de insights y su contenido por articulo.
type ArticleService struct {
	logger   *zap.Logger
	articles repository.ArticleRepository
	embedder llm.Embedder
}

var ErrArticleNotFound = errors.New("article not found")

const relatedArticlesLimit = 3

func NewArticleService(logger *zap.Logger, articles repository.ArticleRepository, embedder llm.Embedder) *ArticleService {
	return &ArticleService{
		logger:   logger,
		articles: articles,
		embedder: embedder,
	}
}

// List devuelve los articulos mas recientes primero.
func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

// ArticleDetail agrupa el articulo con sus secciones ordenadas y actividades.
type ArticleDetail struct {
	Article    domain.Article    `json:"article"`
	Sections   []domain.Section  `json:"sections"`
	Activities []domain.Activity `json:"activities"`
}

func (s *ArticleService) Detail(ctx context.Context, articleID string) (ArticleDetail, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ArticleDetail{}, ErrArticleNotFound
		}
		return ArticleDetail{}, err
	}
	sections, err := s.articles.ListSections(ctx, articleID)
	if err != nil {
		return ArticleDetail{}, err
	}
	activities, err := s.articles.ListActivities(ctx, articleID)
	if err != nil {
		return ArticleDetail{}, err
	}
	return ArticleDetail{
		Article:    article,
		Sections:   sections,
		Activities: activities,
	}, nil
}

// Related devuelve los articulos mas cercanos por similitud de embedding.
// Un articulo sin embedding no tiene relacionados.
func (s *ArticleService) Related(ctx context.Context, articleID string) ([]domain.Article, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	if len(article.Embedding.Slice()) == 0 {
		return nil, nil
	}
	return s.articles.ListRelated(ctx, articleID, article.Embedding, relatedArticlesLimit)
}

// Reindex recalcula el embedding de cada articulo a partir de titulo y
// subtitulo. Los articulos que fallan se saltan y se loguean.
func (s *ArticleService) Reindex(ctx context.Context) (int, error) {
	if s.embedder == nil {
		return 0, errors.New("embedder not configured")
	}
	articles, err := s.articles.List(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, article := range articles {
		input := strings.TrimSpace(article.Title + ". " + article.Subtitle)
		embedding, err := s.embedder.CreateEmbedding(ctx, input)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("embedding failed", zap.String("article_id", article.ID), zap.Error(err))
			}
			continue
		}
		if err := s.articles.UpdateEmbedding(ctx, article.ID, pgvector.NewVector(embedding)); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
