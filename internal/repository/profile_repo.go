package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"numero-bot/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile domain.StoredProfile) error
	GetByID(ctx context.Context, id string) (domain.StoredProfile, error)
	LatestByUserID(ctx context.Context, userID string) (domain.StoredProfile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.StoredProfile) error {
	const query = `
		INSERT INTO profiles (id, user_id, birthdate, fio, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	// El resultado del motor viaja como JSONB opaco.
	data, err := json.Marshal(profile.Data)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Birthdate,
		profile.FullName,
		data,
		profile.CreatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.StoredProfile, error) {
	const query = `
		SELECT id, user_id, birthdate, fio, data, created_at
		FROM profiles
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

func (r *PgProfileRepository) LatestByUserID(ctx context.Context, userID string) (domain.StoredProfile, error) {
	const query = `
		SELECT id, user_id, birthdate, fio, data, created_at
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.scanOne(ctx, query, userID)
}

func (r *PgProfileRepository) scanOne(ctx context.Context, query string, arg any) (domain.StoredProfile, error) {
	var profile domain.StoredProfile
	var data []byte
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Birthdate,
		&profile.FullName,
		&data,
		&profile.CreatedAt,
	)
	if err != nil {
		return domain.StoredProfile{}, err
	}
	if err := json.Unmarshal(data, &profile.Data); err != nil {
		return domain.StoredProfile{}, err
	}
	return profile, nil
}
