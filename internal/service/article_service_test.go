package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"gennova/internal/domain"
	"gennova/internal/llm"
)

type mockArticleRepo struct {
	articles   []domain.Article
	sections   map[string][]domain.Section
	activities map[string][]domain.Activity
	related    []domain.Article
	embeddings map[string]pgvector.Vector
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{
		sections:   make(map[string][]domain.Section),
		activities: make(map[string][]domain.Activity),
		embeddings: make(map[string]pgvector.Vector),
	}
}

func (m *mockArticleRepo) List(_ context.Context) ([]domain.Article, error) {
	return m.articles, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id string) (domain.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Article{}, pgx.ErrNoRows
}

func (m *mockArticleRepo) ListSections(_ context.Context, articleID string) ([]domain.Section, error) {
	return m.sections[articleID], nil
}

func (m *mockArticleRepo) ListActivities(_ context.Context, articleID string) ([]domain.Activity, error) {
	return m.activities[articleID], nil
}

func (m *mockArticleRepo) ListRelated(_ context.Context, articleID string, _ pgvector.Vector, k int) ([]domain.Article, error) {
	if len(m.related) > k {
		return m.related[:k], nil
	}
	return m.related, nil
}

func (m *mockArticleRepo) UpdateEmbedding(_ context.Context, articleID string, embedding pgvector.Vector) error {
	m.embeddings[articleID] = embedding
	return nil
}

func TestArticleServiceDetail(t *testing.T) {
	repo := newMockArticleRepo()
	repo.articles = []domain.Article{{ID: "a1", Title: "Unlocking Musical Genius"}}
	repo.sections["a1"] = []domain.Section{
		{ID: "s1", Position: 0, Kind: domain.SectionHeading, Text: "The science"},
		{ID: "s2", Position: 1, Kind: domain.SectionParagraph, Text: "..."},
	}
	repo.activities["a1"] = []domain.Activity{{ID: "act1", Text: "Practice scales", DefaultChecked: true}}
	svc := NewArticleService(zap.NewNop(), repo, nil)

	detail, err := svc.Detail(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(detail.Sections) != 2 || detail.Sections[0].Kind != domain.SectionHeading {
		t.Fatalf("expected ordered sections, got %+v", detail.Sections)
	}
	if len(detail.Activities) != 1 {
		t.Fatalf("expected activities, got %+v", detail.Activities)
	}

	if _, err := svc.Detail(context.Background(), "missing"); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleServiceRelated(t *testing.T) {
	repo := newMockArticleRepo()
	repo.articles = []domain.Article{
		{ID: "a1", Title: "With embedding", Embedding: pgvector.NewVector([]float32{0.1, 0.2})},
		{ID: "a2", Title: "Without embedding"},
	}
	repo.related = []domain.Article{{ID: "a3"}, {ID: "a4"}}
	svc := NewArticleService(zap.NewNop(), repo, nil)

	related, err := svc.Related(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 related articles, got %d", len(related))
	}

	related, err = svc.Related(context.Background(), "a2")
	if err != nil {
		t.Fatalf("Related without embedding: %v", err)
	}
	if related != nil {
		t.Fatalf("expected no related articles without embedding, got %+v", related)
	}
}

func TestArticleServiceReindex(t *testing.T) {
	repo := newMockArticleRepo()
	repo.articles = []domain.Article{
		{ID: "a1", Title: "One"},
		{ID: "a2", Title: "Two"},
	}
	embedder := &llm.MockClient{Embedding: []float32{0.5, 0.5}}
	svc := NewArticleService(zap.NewNop(), repo, embedder)

	updated, err := svc.Reindex(context.Background())
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected 2 updated articles, got %d", updated)
	}
	if len(repo.embeddings) != 2 {
		t.Fatalf("expected stored embeddings, got %d", len(repo.embeddings))
	}
}

func TestArticleServiceReindexSkipsFailures(t *testing.T) {
	repo := newMockArticleRepo()
	repo.articles = []domain.Article{{ID: "a1", Title: "One"}}
	embedder := &llm.MockClient{Err: errors.New("llm down")}
	svc := NewArticleService(zap.NewNop(), repo, embedder)

	updated, err := svc.Reindex(context.Background())
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if updated != 0 {
		t.Fatalf("expected 0 updated articles, got %d", updated)
	}
}
