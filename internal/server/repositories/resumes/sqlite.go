package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/dbx"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, resume *models.Resume) error {
	query := `
		INSERT INTO resumes (id, user_id, name, file_name, file_data, file_type, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT (id)
		DO UPDATE SET
			name = excluded.name,
			file_name = excluded.file_name,
			file_data = excluded.file_data,
			file_type = excluded.file_type,
			updated_at = excluded.updated_at,
			deleted_at = NULL
			WHERE resumes.user_id = excluded.user_id
		`
	res, err := r.db.ExecContext(ctx, query,
		resume.ID, resume.UserID, resume.Name, resume.FileName,
		resume.FileData, resume.FileType, resume.CreatedAt, resume.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *SQLiteRepository) GetActive(ctx context.Context, userID, id string) (*models.Resume, error) {
	query := `
		SELECT id, name, file_name, file_data, file_type, created_at, updated_at
		FROM resumes
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
		`
	resume, err := scanResume(r.db.QueryRowContext(ctx, query, id, userID), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	resume.UserID = userID
	return resume, nil
}

func (r *SQLiteRepository) ListActiveMeta(ctx context.Context, userID string) ([]*models.Resume, error) {
	query := `
		SELECT id, name, file_name, file_type, created_at, updated_at
		FROM resumes
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY created_at DESC
		`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select resumes: %w", err)
	}
	defer rows.Close()

	var result []*models.Resume
	for rows.Next() {
		resume, err := scanResume(rows, false)
		if err != nil {
			return nil, err
		}
		resume.UserID = userID
		result = append(result, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) SoftDelete(ctx context.Context, userID, id string, at models.Timestamp) error {
	query := `
		UPDATE resumes SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
		`
	if _, err := r.db.ExecContext(ctx, query, at, at, id, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
