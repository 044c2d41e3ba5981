package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"numero-bot/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report domain.Report) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Report, error)
	MarkPaid(ctx context.Context, id string) error
}

type PgReportRepository struct {
	pool *pgxpool.Pool
}

func NewPgReportRepository(pool *pgxpool.Pool) *PgReportRepository {
	return &PgReportRepository{pool: pool}
}

func (r *PgReportRepository) Create(ctx context.Context, report domain.Report) error {
	const query = `
		INSERT INTO reports (id, user_id, profile_id, type, narrative, file_path, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		report.ID,
		report.UserID,
		report.ProfileID,
		report.Type,
		report.Narrative,
		report.FilePath,
		report.Paid,
		report.CreatedAt,
	)
	return err
}

func (r *PgReportRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Report, error) {
	const query = `
		SELECT id, user_id, profile_id, type, narrative, file_path, paid, created_at
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.ProfileID,
			&report.Type,
			&report.Narrative,
			&report.FilePath,
			&report.Paid,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (r *PgReportRepository) MarkPaid(ctx context.Context, id string) error {
	const query = `
		UPDATE reports
		SET paid = true
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
