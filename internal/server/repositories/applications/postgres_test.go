package applications

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var appColumns = []string{
	"id", "company", "position", "status", "applied_date", "url", "notes",
	"resume_id", "created_at", "updated_at", "deleted_at",
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+applications\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	rows := sqlmock.NewRows(appColumns).
		AddRow("a-1", "Acme", "Engineer", "applied", nil, nil, nil, nil,
			"2024-01-01T00:00:00.000Z", "2024-01-02T00:00:00.000Z", nil)
	mock.ExpectQuery(q).WithArgs("a-1", "u-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1", "a-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "a-1" || got.Company != "Acme" || got.DeletedAt != nil {
		t.Fatalf("unexpected application: %+v", got)
	}
	if got.UpdatedAt.String() != "2024-01-02T00:00:00.000Z" {
		t.Fatalf("unexpected updated_at: %s", got.UpdatedAt)
	}
}

func TestGetByID_TombstoneScanned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+applications\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	rows := sqlmock.NewRows(appColumns).
		AddRow("a-1", "Acme", "Engineer", "applied", nil, nil, nil, nil,
			"2024-01-01T00:00:00.000Z", "2024-01-03T00:00:00.000Z", "2024-01-03T00:00:00.000Z")
	mock.ExpectQuery(q).WithArgs("a-1", "u-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1", "a-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.DeletedAt == nil || got.DeletedAt.String() != "2024-01-03T00:00:00.000Z" {
		t.Fatalf("expected tombstone, got %+v", got.DeletedAt)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+applications\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`
	mock.ExpectQuery(q).WithArgs("ghost", "u-1").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "u-1", "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestSelectUpdatedSince_OrdersByUpdatedAtDesc(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+applications\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+updated_at\s*>\s*\$2\s+ORDER\s+BY\s+updated_at\s+DESC\s*$`

	since, _ := models.ParseTimestamp("2024-01-01T00:00:00.000Z")
	rows := sqlmock.NewRows(appColumns).
		AddRow("a-2", "Globex", "Engineer", "interview", nil, nil, nil, nil,
			"2024-01-02T00:00:00.000Z", "2024-01-04T00:00:00.000Z", nil).
		AddRow("a-1", "Acme", "Engineer", "applied", nil, nil, nil, nil,
			"2024-01-01T00:00:00.000Z", "2024-01-03T00:00:00.000Z", nil)
	mock.ExpectQuery(q).WithArgs("u-1", since).WillReturnRows(rows)

	got, err := repo.SelectUpdatedSince(context.Background(), "u-1", since)
	if err != nil {
		t.Fatalf("SelectUpdatedSince error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a-2" || got[1].ID != "a-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSelectActive_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+applications\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+deleted_at\s+IS\s+NULL\s+ORDER\s+BY\s+created_at\s+DESC\s*$`
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnError(errors.New("db down"))

	_, err := repo.SelectActive(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`failed to select applications: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+applications\s*\(.*\)\s*VALUES\s*\(\$1,.*\$12\)\s*$`

	ts, _ := models.ParseTimestamp("2024-01-01T00:00:00.000Z")
	app := &models.Application{
		ID: "a-1", UserID: "u-1", Company: "Acme", Position: "Engineer",
		Status: "applied", CreatedAt: ts, UpdatedAt: ts,
	}
	mock.ExpectExec(q).
		WithArgs("a-1", "u-1", "Acme", "Engineer", "applied", nil, nil, nil, nil, ts, ts, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), app); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
}

func TestUpdate_NoRowMatched(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+applications\s+SET\s+.*WHERE\s+id\s*=\s*\$10\s+AND\s+user_id\s*=\s*\$11\s*$`

	ts, _ := models.ParseTimestamp("2024-01-01T00:00:00.000Z")
	app := &models.Application{ID: "a-1", UserID: "u-1", Company: "Acme", Position: "Engineer", Status: "applied", UpdatedAt: ts}
	mock.ExpectExec(q).
		WithArgs("Acme", "Engineer", "applied", nil, nil, nil, nil, ts, nil, "a-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), app); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestSoftDelete_SetsTombstoneAndBumpsUpdatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+applications\s+SET\s+deleted_at\s*=\s*\$1,\s*updated_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s+AND\s+user_id\s*=\s*\$4\s+AND\s+deleted_at\s+IS\s+NULL\s*$`

	at, _ := models.ParseTimestamp("2024-01-05T00:00:00.000Z")
	mock.ExpectExec(q).
		WithArgs(at, at, "a-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDelete(context.Background(), "u-1", "a-1", at); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}
}

func TestSoftDelete_AlreadyTombstoned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+applications\s+SET\s+deleted_at\s*=\s*\$1,\s*updated_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s+AND\s+user_id\s*=\s*\$4\s+AND\s+deleted_at\s+IS\s+NULL\s*$`

	at, _ := models.ParseTimestamp("2024-01-05T00:00:00.000Z")
	mock.ExpectExec(q).
		WithArgs(at, at, "a-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SoftDelete(context.Background(), "u-1", "a-1", at); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
