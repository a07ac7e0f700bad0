package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gennova/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles de ADN.
type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) error
	GetByID(ctx context.Context, id string) (domain.Profile, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Profile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, name, avatar_url, birth_date, gender, height_cm, weight_kg, created_at`

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	const query = `
		INSERT INTO profiles (id, user_id, name, avatar_url, birth_date, gender, height_cm, weight_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Name,
		profile.AvatarURL,
		profile.BirthDate,
		profile.Gender,
		profile.HeightCm,
		profile.WeightKg,
		profile.CreatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

func (r *PgProfileRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.AvatarURL,
		&p.BirthDate,
		&p.Gender,
		&p.HeightCm,
		&p.WeightKg,
		&p.CreatedAt,
	)
	return p, err
}
