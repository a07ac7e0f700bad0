package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"gennova/internal/domain"
)

// GenotypeRepository expone los genotipos crudos y la tabla de reglas que los
// clasifica. Ambos son de solo lectura para la API.
type GenotypeRepository interface {
	ListByProfileAndTrait(ctx context.Context, profileID, traitName string) ([]domain.Genotype, error)
	ListRulesByRsIDs(ctx context.Context, rsIDs []string) ([]domain.GenotypeRule, error)
}

type PgGenotypeRepository struct {
	pool *pgxpool.Pool
}

func NewPgGenotypeRepository(pool *pgxpool.Pool) *PgGenotypeRepository {
	return &PgGenotypeRepository{pool: pool}
}

func (r *PgGenotypeRepository) ListByProfileAndTrait(ctx context.Context, profileID, traitName string) ([]domain.Genotype, error) {
	const query = `
		SELECT id, profile_id, gene, rs_id, genotype, trait_name
		FROM user_genotypes
		WHERE profile_id = $1 AND trait_name = $2
		ORDER BY gene
	`
	rows, err := r.pool.Query(ctx, query, profileID, traitName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genotypes []domain.Genotype
	for rows.Next() {
		var g domain.Genotype
		if err := rows.Scan(&g.ID, &g.ProfileID, &g.Gene, &g.RsID, &g.Genotype, &g.TraitName); err != nil {
			return nil, err
		}
		genotypes = append(genotypes, g)
	}
	return genotypes, rows.Err()
}

func (r *PgGenotypeRepository) ListRulesByRsIDs(ctx context.Context, rsIDs []string) ([]domain.GenotypeRule, error) {
	if len(rsIDs) == 0 {
		return nil, nil
	}
	const query = `
		SELECT id, rs_id, target_genotype, result_level
		FROM genotype_rules
		WHERE rs_id = ANY($1)
	`
	rows, err := r.pool.Query(ctx, query, rsIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.GenotypeRule
	for rows.Next() {
		var rule domain.GenotypeRule
		if err := rows.Scan(&rule.ID, &rule.RsID, &rule.TargetGenotype, &rule.ResultLevel); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
