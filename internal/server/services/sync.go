// Package services holds the tracker's business logic: account management,
// the application sync engine, résumé transfer, and direct CRUD.
package services

import (
	"context"
	"errors"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/dbx"
	"github.com/Anish2905/JobApplicantTracker/internal/logging"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/repomanager"
)

// OutcomeResult classifies what the merge did with one proposed record.
type OutcomeResult string

const (
	OutcomeInserted  OutcomeResult = "inserted"
	OutcomeApplied   OutcomeResult = "applied"
	OutcomeDiscarded OutcomeResult = "discarded"
	OutcomeRejected  OutcomeResult = "rejected"
)

// Outcome reports the per-record merge decision so silent discards are
// observable by the caller instead of only inferable from absence.
type Outcome struct {
	ID     string        `json:"id"`
	Result OutcomeResult `json:"result"`
	Reason string        `json:"reason,omitempty"`
}

// SyncService reconciles client-proposed application records with the store
// using last-write-wins over updated_at. Records are resolved independently;
// there is no batch transaction, so a retried or partially applied push
// converges to the same state (re-applying a proposal is a no-op once its
// timestamp is no longer strictly newer).
type SyncService struct {
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewSyncService(repos repomanager.RepositoryManager, logger logging.Logger) *SyncService {
	return &SyncService{repos: repos, logger: logger.With("service", "sync")}
}

// Pull returns the owner's records (tombstones included) updated strictly
// after since, newest first. The zero Timestamp means a full resync.
func (s *SyncService) Pull(ctx context.Context, userID string, since models.Timestamp) ([]*models.Application, error) {
	repo := s.repos.Applications(s.repos.Conn())
	return repo.SelectUpdatedSince(ctx, userID, since)
}

// Push merges the proposed records in caller order, then answers with the
// post-merge Pull result, the per-record outcomes, and a server timestamp
// the caller uses as its next high-water mark.
func (s *SyncService) Push(ctx context.Context, userID string, changes []*models.Application, since models.Timestamp) ([]*models.Application, []Outcome, models.Timestamp, error) {
	repo := s.repos.Applications(s.repos.Conn())

	outcomes := make([]Outcome, 0, len(changes))
	for _, proposed := range changes {
		outcomes = append(outcomes, s.merge(ctx, userID, proposed))
	}

	updated, err := repo.SelectUpdatedSince(ctx, userID, since)
	if err != nil {
		return nil, nil, models.Timestamp{}, err
	}

	return updated, outcomes, models.TimestampNow(), nil
}

// merge applies one proposal inside its own transaction, so the lookup and
// the write are atomic per record. A proposal only ever wins with a strictly
// greater updated_at; ties keep the stored record. Tombstoned proposals are
// not special-cased, which is what lets deletes propagate between devices.
func (s *SyncService) merge(ctx context.Context, userID string, proposed *models.Application) Outcome {
	if proposed.ID == "" {
		return Outcome{Result: OutcomeRejected, Reason: "id is required"}
	}
	if err := proposed.Validate(); err != nil {
		s.logger.Warn(ctx, "rejected proposed record", "id", proposed.ID, "error", err)
		return Outcome{ID: proposed.ID, Result: OutcomeRejected, Reason: err.Error()}
	}

	if proposed.Status == "" {
		proposed.Status = models.StatusWishlist
	}
	proposed.UserID = userID

	var result OutcomeResult
	var reason string

	err := dbx.WithTx(ctx, s.repos.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Applications(tx)

		existing, err := repo.GetByID(ctx, userID, proposed.ID)
		if errors.Is(err, common.ErrNotFound) {
			// New client-originated record: timestamps are trusted verbatim.
			result = OutcomeInserted
			return repo.Insert(ctx, proposed)
		}
		if err != nil {
			return err
		}

		if !proposed.UpdatedAt.After(existing.UpdatedAt) {
			result, reason = OutcomeDiscarded, "stale or equal timestamp"
			return nil
		}

		result = OutcomeApplied
		return repo.Update(ctx, proposed)
	})
	if err != nil {
		s.logger.Error(ctx, "merge failed", "id", proposed.ID, "error", err)
		return Outcome{ID: proposed.ID, Result: OutcomeRejected, Reason: "storage error"}
	}

	return Outcome{ID: proposed.ID, Result: result, Reason: reason}
}
