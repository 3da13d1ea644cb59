package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Anish2905/JobApplicantTracker/internal/dbx"
	"github.com/Anish2905/JobApplicantTracker/internal/server/migrations"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/applications"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/resumes"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/users"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager backs the "local" deployment shape with an
// embedded file database. The DSN is a file path or ":memory:".
type SQLiteRepositoryManager struct {
	db *sql.DB
}

func NewSQLiteRepositoryManager(ctx context.Context, dsn string) (*SQLiteRepositoryManager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// The embedded driver serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := migrations.Run(ctx, db, "sqlite"); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &SQLiteRepositoryManager{db: db}, nil
}

func (m *SQLiteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Applications(db dbx.DBTX) applications.Repository {
	return applications.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Resumes(db dbx.DBTX) resumes.Repository {
	return resumes.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
