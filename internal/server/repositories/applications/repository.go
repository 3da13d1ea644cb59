// Package applications provides owner-scoped application storage for both
// dialects: point lookups, update-time range scans for sync, and single-row
// writes.
package applications

import (
	"context"
	"database/sql"

	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

type Repository interface {
	// GetByID returns the record regardless of tombstone state; the merge
	// needs the stored updated_at of deleted rows too.
	GetByID(ctx context.Context, userID, id string) (*models.Application, error)

	// SelectUpdatedSince returns active and tombstoned records with
	// updated_at strictly greater than since, newest first.
	SelectUpdatedSince(ctx context.Context, userID string, since models.Timestamp) ([]*models.Application, error)

	// SelectActive returns non-tombstoned records, newest created first.
	SelectActive(ctx context.Context, userID string) ([]*models.Application, error)

	Insert(ctx context.Context, app *models.Application) error

	// Update overwrites every mutable field of an owned record.
	// Returns common.ErrNotFound when no owned row matched.
	Update(ctx context.Context, app *models.Application) error

	// SoftDelete tombstones an owned active record. Returns
	// common.ErrNotFound when no owned active row matched.
	SoftDelete(ctx context.Context, userID, id string, at models.Timestamp) error
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*models.Application, error) {
	app := &models.Application{}
	var deletedAt sql.NullString
	err := row.Scan(
		&app.ID, &app.Company, &app.Position, &app.Status,
		&app.AppliedDate, &app.URL, &app.Notes, &app.ResumeID,
		&app.CreatedAt, &app.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		ts, err := models.ParseTimestamp(deletedAt.String)
		if err != nil {
			return nil, err
		}
		app.DeletedAt = &ts
	}
	return app, nil
}
