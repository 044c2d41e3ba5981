package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"numero-bot/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (domain.User, error)
	UpdateSettings(ctx context.Context, id, language string, pushEnabled bool) error
}

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, telegram_id, fio, birthdate, language, push_enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.TelegramID,
		user.FullName,
		user.Birthdate,
		user.Language,
		user.PushEnabled,
		user.CreatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
		SELECT id, telegram_id, fio, birthdate, language, push_enabled, created_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.TelegramID,
		&user.FullName,
		&user.Birthdate,
		&user.Language,
		&user.PushEnabled,
		&user.CreatedAt,
	)
	return user, err
}

func (r *PgUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (domain.User, error) {
	const query = `
		SELECT id, telegram_id, fio, birthdate, language, push_enabled, created_at
		FROM users
		WHERE telegram_id = $1
	`
	var user domain.User
	err := r.pool.QueryRow(ctx, query, telegramID).Scan(
		&user.ID,
		&user.TelegramID,
		&user.FullName,
		&user.Birthdate,
		&user.Language,
		&user.PushEnabled,
		&user.CreatedAt,
	)
	return user, err
}

func (r *PgUserRepository) UpdateSettings(ctx context.Context, id, language string, pushEnabled bool) error {
	const query = `
		UPDATE users
		SET language = $2, push_enabled = $3
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, language, pushEnabled)
	return err
}
