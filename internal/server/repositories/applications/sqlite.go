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

// SQLiteRepository implements application storage for the embedded local
// database using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteSelectColumns = `id, company, position, status, applied_date, url, notes, resume_id,
		created_at, updated_at, deleted_at`

func (r *SQLiteRepository) GetByID(ctx context.Context, userID, id string) (*models.Application, error) {
	query := `SELECT ` + sqliteSelectColumns + `
		FROM applications
		WHERE id = ? AND user_id = ?
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

func (r *SQLiteRepository) SelectUpdatedSince(ctx context.Context, userID string, since models.Timestamp) ([]*models.Application, error) {
	query := `SELECT ` + sqliteSelectColumns + `
		FROM applications
		WHERE user_id = ? AND updated_at > ?
		ORDER BY updated_at DESC
		`
	return r.selectMany(ctx, query, userID, since)
}

func (r *SQLiteRepository) SelectActive(ctx context.Context, userID string) ([]*models.Application, error) {
	query := `SELECT ` + sqliteSelectColumns + `
		FROM applications
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY created_at DESC
		`
	return r.selectMany(ctx, query, userID)
}

func (r *SQLiteRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Application, error) {
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

func (r *SQLiteRepository) Insert(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications
			(id, user_id, company, position, status, applied_date, url, notes, resume_id, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
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

func (r *SQLiteRepository) Update(ctx context.Context, app *models.Application) error {
	query := `
		UPDATE applications SET
			company = ?, position = ?, status = ?, applied_date = ?,
			url = ?, notes = ?, resume_id = ?, updated_at = ?, deleted_at = ?
		WHERE id = ? AND user_id = ?
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

func (r *SQLiteRepository) SoftDelete(ctx context.Context, userID, id string, at models.Timestamp) error {
	query := `
		UPDATE applications SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
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
