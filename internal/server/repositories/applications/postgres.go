package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/dbx"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

// PostgresRepository implements application storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pgSelectColumns = `id, company, position, status, applied_date, url, notes, resume_id,
		created_at, updated_at, deleted_at`

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Application, error) {
	query := `SELECT ` + pgSelectColumns + `
		FROM applications
		WHERE id = $1 AND user_id = $2
		`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return app, nil
}

func (r *PostgresRepository) SelectUpdatedSince(ctx context.Context, userID string, since models.Timestamp) ([]*models.Application, error) {
	query := `SELECT ` + pgSelectColumns + `
		FROM applications
		WHERE user_id = $1 AND updated_at > $2
		ORDER BY updated_at DESC
		`
	return r.selectMany(ctx, query, userID, since)
}

func (r *PostgresRepository) SelectActive(ctx context.Context, userID string) ([]*models.Application, error) {
	query := `SELECT ` + pgSelectColumns + `
		FROM applications
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		`
	return r.selectMany(ctx, query, userID)
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select applications: %w", err)
	}
	defer rows.Close()

	var result []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications
			(id, user_id, company, position, status, applied_date, url, notes, resume_id, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.UserID, app.Company, app.Position, app.Status,
		app.AppliedDate, app.URL, app.Notes, app.ResumeID,
		app.CreatedAt, app.UpdatedAt, app.DeletedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, app *models.Application) error {
	query := `
		UPDATE applications SET
			company = $1, position = $2, status = $3, applied_date = $4,
			url = $5, notes = $6, resume_id = $7, updated_at = $8, deleted_at = $9
		WHERE id = $10 AND user_id = $11
		`
	res, err := r.db.ExecContext(ctx, query,
		app.Company, app.Position, app.Status, app.AppliedDate,
		app.URL, app.Notes, app.ResumeID, app.UpdatedAt, app.DeletedAt,
		app.ID, app.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, userID, id string, at models.Timestamp) error {
	query := `
		UPDATE applications SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL
		`
	res, err := r.db.ExecContext(ctx, query, at, at, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
