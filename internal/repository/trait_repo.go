package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gennova/internal/domain"
)

// TraitRepository expone la taxonomia de rasgos. Solo lectura: la taxonomia
// se carga por seed y nunca se muta desde la API.
type TraitRepository interface {
	ListAll(ctx context.Context) ([]domain.Trait, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Trait, error)
	GetByName(ctx context.Context, name string) (domain.Trait, error)
}

type PgTraitRepository struct {
	pool *pgxpool.Pool
}

func NewPgTraitRepository(pool *pgxpool.Pool) *PgTraitRepository {
	return &PgTraitRepository{pool: pool}
}

const traitColumns = `id, category, name, description, icon_name`

func (r *PgTraitRepository) ListAll(ctx context.Context) ([]domain.Trait, error) {
	const query = `SELECT ` + traitColumns + ` FROM traits ORDER BY category, name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTraits(rows)
}

func (r *PgTraitRepository) ListByCategory(ctx context.Context, category string) ([]domain.Trait, error) {
	const query = `SELECT ` + traitColumns + ` FROM traits WHERE category = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTraits(rows)
}

func (r *PgTraitRepository) GetByName(ctx context.Context, name string) (domain.Trait, error) {
	const query = `SELECT ` + traitColumns + ` FROM traits WHERE name = $1`
	var t domain.Trait
	err := r.pool.QueryRow(ctx, query, name).Scan(&t.ID, &t.Category, &t.Name, &t.Description, &t.IconName)
	return t, err
}

func collectTraits(rows pgx.Rows) ([]domain.Trait, error) {
	var traits []domain.Trait
	for rows.Next() {
		var t domain.Trait
		if err := rows.Scan(&t.ID, &t.Category, &t.Name, &t.Description, &t.IconName); err != nil {
			return nil, err
		}
		traits = append(traits, t)
	}
	return traits, rows.Err()
}
