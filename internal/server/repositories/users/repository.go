// Package users provides owner-account storage for both dialects.
package users

import (
	"context"

	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
