// Package resumes provides owner-scoped résumé storage for both dialects.
// Uploads are whole-record replacements with no timestamp comparison.
package resumes

import (
	"context"

	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

type Repository interface {
	// Upsert inserts or fully replaces the record with the same id and
	// clears any tombstone. If the id exists under a different owner the
	// write is suppressed and common.ErrNotFound is returned.
	Upsert(ctx context.Context, resume *models.Resume) error

	// GetActive returns the full record including payload. Absent,
	// tombstoned, and foreign rows are all common.ErrNotFound.
	GetActive(ctx context.Context, userID, id string) (*models.Resume, error)

	// ListActiveMeta returns active records without the payload column,
	// newest created first.
	ListActiveMeta(ctx context.Context, userID string) ([]*models.Resume, error)

	// SoftDelete tombstones an owned record; 0 affected rows is not an
	// error (idempotent).
	SoftDelete(ctx context.Context, userID, id string, at models.Timestamp) error
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner, withData bool) (*models.Resume, error) {
	res := &models.Resume{}
	dest := []any{&res.ID, &res.Name, &res.FileName}
	if withData {
		dest = append(dest, &res.FileData)
	}
	dest = append(dest, &res.FileType, &res.CreatedAt, &res.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return res, nil
}
