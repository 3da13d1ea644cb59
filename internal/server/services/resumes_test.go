package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

type memBlobStore struct {
	objects map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{objects: map[string][]byte{}}
}

func (m *memBlobStore) Put(_ context.Context, key string, data []byte) error {
	m.objects[key] = data
	return nil
}

func (m *memBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func testResume(id string) *models.Resume {
	now := models.TimestampNow()
	return &models.Resume{
		ID:        id,
		Name:      "My Resume",
		FileName:  "resume.pdf",
		FileData:  "JVBERi0xLjQ=",
		FileType:  "application/pdf",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestResumeUpload_RoundTripInline(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewResumeService(m, nil, testLogger())
	ctx := context.Background()

	r := testResume("r1")
	require.NoError(t, s.Upload(ctx, "u1", r))

	got, err := s.FetchOne(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "JVBERi0xLjQ=", got.FileData)
	assert.Equal(t, "resume.pdf", got.FileName)
}

func TestResumeUpload_RequiresID(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewResumeService(m, nil, testLogger())

	r := testResume("")
	require.ErrorIs(t, s.Upload(context.Background(), "u1", r), common.ErrValidation)
}

func TestResumeUpload_LastUploadWins(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewResumeService(m, nil, testLogger())
	ctx := context.Background()

	first := testResume("r1")
	require.NoError(t, s.Upload(ctx, "u1", first))

	// no timestamp comparison on upload: the replacement always lands
	second := testResume("r1")
	second.Name = "Updated Resume"
	second.FileData = "bmV3ZXI="
	second.UpdatedAt = mustTS(t, "2020-01-01T00:00:00.000Z")
	require.NoError(t, s.Upload(ctx, "u1", second))

	got, err := s.FetchOne(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "Updated Resume", got.Name)
	assert.Equal(t, "bmV3ZXI=", got.FileData)
}

func TestResumeUpload_ClearsTombstone(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewResumeService(m, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, "u1", testResume("r1")))
	require.NoError(t, s.Delete(ctx, "u1", "r1"))

	_, err := s.FetchOne(ctx, "u1", "r1")
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Upload(ctx, "u1", testResume("r1")))
	_, err = s.FetchOne(ctx, "u1", "r1")
	require.NoError(t, err)
}

func TestResumeUpload_ForeignIDRejected(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "alice")
	seedUser(t, m, "bob")
	s := NewResumeService(m, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, "alice", testResume("r1")))

	err := s.Upload(ctx, "bob", testResume("r1"))
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestResumeFetchList_OmitsPayloadAndTombstones(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewResumeService(m, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, "u1", testResume("r1")))
	require.NoError(t, s.Upload(ctx, "u1", testResume("r2")))
	require.NoError(t, s.Delete(ctx, "u1", "r2"))

	list, err := s.FetchList(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0].ID)
	assert.Empty(t, list[0].FileData)
}

func TestResumeDelete_IsIdempotent(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	s := NewResumeService(m, nil, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, "u1", testResume("r1")))
	require.NoError(t, s.Delete(ctx, "u1", "r1"))
	require.NoError(t, s.Delete(ctx, "u1", "r1"))
	require.NoError(t, s.Delete(ctx, "u1", "absent"))
}

func TestResumeUpload_OffloadsPayloadToBlobStore(t *testing.T) {
	m := newTestRepoManager(t)
	seedUser(t, m, "u1")
	blobs := newMemBlobStore()
	s := NewResumeService(m, blobs, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, "u1", testResume("r1")))

	// payload lives in the bucket, not the row
	assert.Equal(t, []byte("JVBERi0xLjQ="), blobs.objects["users/u1/r1"])
	row, err := m.Resumes(m.Conn()).GetActive(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Empty(t, row.FileData)

	// fetch re-inlines it transparently
	got, err := s.FetchOne(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "JVBERi0xLjQ=", got.FileData)
}
