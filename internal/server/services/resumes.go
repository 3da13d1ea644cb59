package services

import (
	"context"
	"fmt"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/logging"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
	"github.com/Anish2905/JobApplicantTracker/internal/server/blob"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/repomanager"
)

// ResumeService moves résumé records as whole-record replacements. There is
// no timestamp comparison on upload: payload replacement is atomic, so the
// last upload always wins.
type ResumeService struct {
	repos  repomanager.RepositoryManager
	blobs  blob.Store // nil keeps payloads inline in the record row
	logger logging.Logger
}

func NewResumeService(repos repomanager.RepositoryManager, blobs blob.Store, logger logging.Logger) *ResumeService {
	return &ResumeService{repos: repos, blobs: blobs, logger: logger.With("service", "resumes")}
}

// Upload upserts the record for its id, clearing any tombstone. With a blob
// store configured, the payload goes to the bucket and the row keeps an
// empty payload column.
func (s *ResumeService) Upload(ctx context.Context, userID string, resume *models.Resume) error {
	if resume.ID == "" {
		return fmt.Errorf("%w: resume id is required", common.ErrValidation)
	}
	resume.UserID = userID

	repo := s.repos.Resumes(s.repos.Conn())

	if s.blobs != nil && resume.FileData != "" {
		key := blob.ObjectKey(userID, resume.ID)
		if err := s.blobs.Put(ctx, key, []byte(resume.FileData)); err != nil {
			return fmt.Errorf("storing payload: %w", err)
		}
		stored := *resume
		stored.FileData = ""
		return repo.Upsert(ctx, &stored)
	}

	return repo.Upsert(ctx, resume)
}

// FetchOne returns the full record including the payload. Absent, foreign,
// and tombstoned records are indistinguishable: all not-found.
func (s *ResumeService) FetchOne(ctx context.Context, userID, id string) (*models.Resume, error) {
	repo := s.repos.Resumes(s.repos.Conn())
	resume, err := repo.GetActive(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if resume.FileData == "" && s.blobs != nil {
		data, err := s.blobs.Get(ctx, blob.ObjectKey(userID, id))
		if err != nil {
			s.logger.Error(ctx, "payload fetch failed", "id", id, "error", err)
			return nil, fmt.Errorf("fetching payload: %w", err)
		}
		resume.FileData = string(data)
	}

	return resume, nil
}

// FetchList returns the owner's active records, payload omitted, newest
// created first.
func (s *ResumeService) FetchList(ctx context.Context, userID string) ([]*models.Resume, error) {
	repo := s.repos.Resumes(s.repos.Conn())
	return repo.ListActiveMeta(ctx, userID)
}

// Delete tombstones the record and bumps updated_at. Already-tombstoned or
// foreign ids are a no-op.
func (s *ResumeService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repos.Resumes(s.repos.Conn())
	return repo.SoftDelete(ctx, userID, id, models.TimestampNow())
}
