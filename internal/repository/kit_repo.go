package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gennova/internal/domain"
)

// KitRepository define la persistencia de kits de test de ADN.
type KitRepository interface {
	Create(ctx context.Context, kit domain.Kit) error
	GetByID(ctx context.Context, id string) (domain.Kit, error)
	// LatestByProfileID devuelve el kit activado mas reciente del perfil.
	LatestByProfileID(ctx context.Context, profileID string) (domain.Kit, error)
	UpdateStatus(ctx context.Context, id string, status domain.KitStatus, at time.Time) error
}

type PgKitRepository struct {
	pool *pgxpool.Pool
}

func NewPgKitRepository(pool *pgxpool.Pool) *PgKitRepository {
	return &PgKitRepository{pool: pool}
}

const kitColumns = `id, profile_id, barcode, status, activated_at, laboratory_at, processing_at, completed_at`

func (r *PgKitRepository) Create(ctx context.Context, kit domain.Kit) error {
	const query = `
		INSERT INTO dna_test_kits (id, profile_id, barcode, status, activated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query, kit.ID, kit.ProfileID, kit.Barcode, kit.Status, kit.ActivatedAt)
	return err
}

func (r *PgKitRepository) GetByID(ctx context.Context, id string) (domain.Kit, error) {
	const query = `SELECT ` + kitColumns + ` FROM dna_test_kits WHERE id = $1`
	return scanKit(r.pool.QueryRow(ctx, query, id))
}

func (r *PgKitRepository) LatestByProfileID(ctx context.Context, profileID string) (domain.Kit, error) {
	const query = `
		SELECT ` + kitColumns + `
		FROM dna_test_kits
		WHERE profile_id = $1
		ORDER BY activated_at DESC
		LIMIT 1
	`
	return scanKit(r.pool.QueryRow(ctx, query, profileID))
}

// UpdateStatus registra la nueva etapa y sella el timestamp de la columna
// correspondiente a esa etapa.
func (r *PgKitRepository) UpdateStatus(ctx context.Context, id string, status domain.KitStatus, at time.Time) error {
	var column string
	switch status {
	case domain.KitStatusLaboratory:
		column = "laboratory_at"
	case domain.KitStatusProcessing:
		column = "processing_at"
	case domain.KitStatusCompleted:
		column = "completed_at"
	default:
		column = "activated_at"
	}
	query := `UPDATE dna_test_kits SET status = $2, ` + column + ` = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanKit(row pgx.Row) (domain.Kit, error) {
	var k domain.Kit
	var rawStatus string
	err := row.Scan(
		&k.ID,
		&k.ProfileID,
		&k.Barcode,
		&rawStatus,
		&k.ActivatedAt,
		&k.LaboratoryAt,
		&k.ProcessingAt,
		&k.CompletedAt,
	)
	if err != nil {
		return domain.Kit{}, err
	}
	k.Status = domain.ParseKitStatus(rawStatus)
	return k, nil
}
