package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/repomanager"
)

// ApplicationService is the direct CRUD surface used by clients that are not
// syncing. Deletion is always a tombstone write so the record can still
// converge to other devices and be restored.
type ApplicationService struct {
	repos repomanager.RepositoryManager
}

func NewApplicationService(repos repomanager.RepositoryManager) *ApplicationService {
	return &ApplicationService{repos: repos}
}

func (s *ApplicationService) List(ctx context.Context, userID string) ([]*models.Application, error) {
	repo := s.repos.Applications(s.repos.Conn())
	return repo.SelectActive(ctx, userID)
}

func (s *ApplicationService) Create(ctx context.Context, userID string, app *models.Application) error {
	if app.ID == "" {
		return fmt.Errorf("%w: id is required", common.ErrValidation)
	}
	if err := app.Validate(); err != nil {
		return err
	}
	if app.Status == "" {
		app.Status = models.StatusWishlist
	}
	now := models.TimestampNow()
	if app.CreatedAt.IsZero() {
		app.CreatedAt = now
	}
	if app.UpdatedAt.IsZero() {
		app.UpdatedAt = now
	}
	app.UserID = userID

	repo := s.repos.Applications(s.repos.Conn())
	return repo.Insert(ctx, app)
}

func (s *ApplicationService) Update(ctx context.Context, userID string, app *models.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}
	if app.UpdatedAt.IsZero() {
		app.UpdatedAt = models.TimestampNow()
	}
	app.UserID = userID

	repo := s.repos.Applications(s.repos.Conn())
	return repo.Update(ctx, app)
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repos.Applications(s.repos.Conn())
	return repo.SoftDelete(ctx, userID, id, models.TimestampNow())
}

// Restore brings back a record after an undo: a tombstoned row is revived
// in place, an absent one is re-inserted with the supplied fields.
func (s *ApplicationService) Restore(ctx context.Context, userID string, app *models.Application) error {
	if app.ID == "" {
		return fmt.Errorf("%w: id is required", common.ErrValidation)
	}
	if err := app.Validate(); err != nil {
		return err
	}
	app.UserID = userID
	app.DeletedAt = nil
	app.UpdatedAt = models.TimestampNow()

	repo := s.repos.Applications(s.repos.Conn())
	err := repo.Update(ctx, app)
	if errors.Is(err, common.ErrNotFound) {
		return repo.Insert(ctx, app)
	}
	return err
}
