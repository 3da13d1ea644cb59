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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert replaces the row by id. The ownership guard on the conflict branch
// means a colliding foreign id updates nothing, which surfaces as not-found.
func (r *PostgresRepository) Upsert(ctx context.Context, resume *models.Resume) error {
	query := `
		INSERT INTO resumes (id, user_id, name, file_name, file_data, file_type, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			file_name = EXCLUDED.file_name,
			file_data = EXCLUDED.file_data,
			file_type = EXCLUDED.file_type,
			updated_at = EXCLUDED.updated_at,
			deleted_at = NULL
			WHERE resumes.user_id = EXCLUDED.user_id
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

func (r *PostgresRepository) GetActive(ctx context.Context, userID, id string) (*models.Resume, error) {
	query := `
		SELECT id, name, file_name, file_data, file_type, created_at, updated_at
		FROM resumes
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
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

func (r *PostgresRepository) ListActiveMeta(ctx context.Context, userID string) ([]*models.Resume, error) {
	query := `
		SELECT id, name, file_name, file_type, created_at, updated_at
		FROM resumes
		WHERE user_id = $1 AND deleted_at IS NULL
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

func (r *PostgresRepository) SoftDelete(ctx context.Context, userID, id string, at models.Timestamp) error {
	query := `
		UPDATE resumes SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL
		`
	if _, err := r.db.ExecContext(ctx, query, at, at, id, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
