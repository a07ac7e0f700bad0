package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"gennova/internal/domain"
)

// PhenotypeRepository expone los resultados computados por perfil.
type PhenotypeRepository interface {
	ListByProfileID(ctx context.Context, profileID string) ([]domain.Phenotype, error)
}

type PgPhenotypeRepository struct {
	pool *pgxpool.Pool
}

func NewPgPhenotypeRepository(pool *pgxpool.Pool) *PgPhenotypeRepository {
	return &PgPhenotypeRepository{pool: pool}
}

// ListByProfileID trae cada fenotipo junto con su rasgo de la taxonomia.
func (r *PgPhenotypeRepository) ListByProfileID(ctx context.Context, profileID string) ([]domain.Phenotype, error) {
	const query = `
		SELECT p.id, p.profile_id, p.trait_id, p.result_level, p.score, p.display_text, p.created_at,
		       t.id, t.category, t.name, t.description, t.icon_name
		FROM user_phenotypes p
		JOIN traits t ON t.id = p.trait_id
		WHERE p.profile_id = $1
		ORDER BY t.category, t.name
	`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phenotypes []domain.Phenotype
	for rows.Next() {
		var p domain.Phenotype
		var rawLevel string
		err := rows.Scan(
			&p.ID,
			&p.ProfileID,
			&p.TraitID,
			&rawLevel,
			&p.Score,
			&p.DisplayText,
			&p.CreatedAt,
			&p.Trait.ID,
			&p.Trait.Category,
			&p.Trait.Name,
			&p.Trait.Description,
			&p.Trait.IconName,
		)
		if err != nil {
			return nil, err
		}
		p.ResultLevel = domain.ResultLevel(rawLevel)
		phenotypes = append(phenotypes, p)
	}
	return phenotypes, rows.Err()
}
