package models

import (
	"fmt"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
)

// StatusWishlist is the default status for a new application. The status set
// is an open string enumeration; clients may introduce their own values.
const StatusWishlist = "wishlist"

// Application is one tracked job application. The ID is client-generated and
// stable across devices; DeletedAt marks a tombstone, which keeps every other
// field so an undo is cheap and deletes can propagate during sync.
type Application struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Status      string     `json:"status"`
	AppliedDate *string    `json:"appliedDate"`
	URL         *string    `json:"url"`
	Notes       *string    `json:"notes"`
	ResumeID    *string    `json:"resumeId"`
	CreatedAt   Timestamp  `json:"createdAt"`
	UpdatedAt   Timestamp  `json:"updatedAt"`
	DeletedAt   *Timestamp `json:"deletedAt"`
}

// Validate checks the required fields of a proposed record.
func (a *Application) Validate() error {
	if a.Company == "" {
		return fmt.Errorf("%w: company is required", common.ErrValidation)
	}
	if a.Position == "" {
		return fmt.Errorf("%w: position is required", common.ErrValidation)
	}
	return nil
}

// Deleted reports whether the record is a tombstone.
func (a *Application) Deleted() bool {
	return a.DeletedAt != nil
}
