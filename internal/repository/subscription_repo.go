package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"numero-bot/internal/domain"
)

type SubscriptionRepository interface {
	Upsert(ctx context.Context, sub domain.Subscription) error
	GetByUserID(ctx context.Context, userID string) (domain.Subscription, error)
	Cancel(ctx context.Context, userID string, at time.Time) error
	ListActive(ctx context.Context) ([]domain.Subscription, error)
}

type PgSubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSubscriptionRepository(pool *pgxpool.Pool) *PgSubscriptionRepository {
	return &PgSubscriptionRepository{pool: pool}
}

func (r *PgSubscriptionRepository) Upsert(ctx context.Context, sub domain.Subscription) error {
	const query = `
		INSERT INTO subscriptions (id, user_id, active, started_at, cancelled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET active = EXCLUDED.active,
		    started_at = EXCLUDED.started_at,
		    cancelled_at = EXCLUDED.cancelled_at
	`
	_, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.UserID,
		sub.Active,
		sub.StartedAt,
		sub.CancelledAt,
		sub.CreatedAt,
	)
	return err
}

func (r *PgSubscriptionRepository) GetByUserID(ctx context.Context, userID string) (domain.Subscription, error) {
	const query = `
		SELECT id, user_id, active, started_at, cancelled_at, created_at
		FROM subscriptions
		WHERE user_id = $1
	`
	var sub domain.Subscription
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.Active,
		&sub.StartedAt,
		&sub.CancelledAt,
		&sub.CreatedAt,
	)
	return sub, err
}

func (r *PgSubscriptionRepository) Cancel(ctx context.Context, userID string, at time.Time) error {
	const query = `
		UPDATE subscriptions
		SET active = false, cancelled_at = $2
		WHERE user_id = $1
	`
	_, err := r.pool.Exec(ctx, query, userID, at)
	return err
}

func (r *PgSubscriptionRepository) ListActive(ctx context.Context) ([]domain.Subscription, error) {
	const query = `
		SELECT id, user_id, active, started_at, cancelled_at, created_at
		FROM subscriptions
		WHERE active = true
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		if err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.Active,
			&sub.StartedAt,
			&sub.CancelledAt,
			&sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
