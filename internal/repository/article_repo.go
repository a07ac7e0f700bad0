package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"gennova/internal/domain"
)

// ArticleRepository define la persistencia del feed de insights.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (domain.Article, error)
	ListSections(ctx context.Context, articleID string) ([]domain.Section, error)
	ListActivities(ctx context.Context, articleID string) ([]domain.Activity, error)
	// ListRelated devuelve los k articulos mas cercanos por similitud de
	// embedding, excluyendo el propio articulo.
	ListRelated(ctx context.Context, articleID string, embedding pgvector.Vector, k int) ([]domain.Article, error)
	UpdateEmbedding(ctx context.Context, articleID string, embedding pgvector.Vector) error
}

type PgArticleRepository struct {
	pool *pgxpool.Pool
}

func NewPgArticleRepository(pool *pgxpool.Pool) *PgArticleRepository {
	return &PgArticleRepository{pool: pool}
}

const articleColumns = `id, title, subtitle, tag, read_time, author_name, author_role, author_avatar, hero_image, mascot_insight, embedding, created_at`

func (r *PgArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

func (r *PgArticleRepository) GetByID(ctx context.Context, id string) (domain.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return scanArticle(r.pool.QueryRow(ctx, query, id))
}

func (r *PgArticleRepository) ListSections(ctx context.Context, articleID string) ([]domain.Section, error) {
	const query = `
		SELECT id, article_id, position, kind, text, items
		FROM article_sections
		WHERE article_id = $1
		ORDER BY position ASC
	`
	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var s domain.Section
		if err := rows.Scan(&s.ID, &s.ArticleID, &s.Position, &s.Kind, &s.Text, &s.Items); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *PgArticleRepository) ListActivities(ctx context.Context, articleID string) ([]domain.Activity, error) {
	const query = `
		SELECT id, article_id, text, default_checked
		FROM article_activities
		WHERE article_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.ArticleID, &a.Text, &a.DefaultChecked); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *PgArticleRepository) ListRelated(ctx context.Context, articleID string, embedding pgvector.Vector, k int) ([]domain.Article, error) {
	const query = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id <> $1 AND embedding IS NOT NULL
		ORDER BY embedding <=> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, articleID, embedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

func (r *PgArticleRepository) UpdateEmbedding(ctx context.Context, articleID string, embedding pgvector.Vector) error {
	const query = `UPDATE articles SET embedding = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, articleID, embedding)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var a domain.Article
	var embedding *pgvector.Vector
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Subtitle,
		&a.Tag,
		&a.ReadTime,
		&a.AuthorName,
		&a.AuthorRole,
		&a.AuthorAvatar,
		&a.HeroImage,
		&a.MascotInsight,
		&embedding,
		&a.CreatedAt,
	)
	if embedding != nil {
		a.Embedding = *embedding
	}
	return a, err
}

func collectArticles(rows pgx.Rows) ([]domain.Article, error) {
	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
