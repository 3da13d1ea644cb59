// Package repomanager wires dialect-specific repository implementations to a
// single opened database handle and runs schema migrations on open.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Anish2905/JobApplicantTracker/internal/dbx"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/applications"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/resumes"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// single statements on the shared *sql.DB or scoped statements inside a
// transaction.
type RepositoryManager interface {
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Applications(db dbx.DBTX) applications.Repository
	Resumes(db dbx.DBTX) resumes.Repository
	Close() error
}

// New opens the store for the configured driver and applies migrations.
func New(ctx context.Context, driver, dsn string) (RepositoryManager, error) {
	switch driver {
	case "postgres":
		return NewPostgresRepositoryManager(ctx, dsn)
	case "sqlite":
		return NewSQLiteRepositoryManager(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown database driver: %s", driver)
	}
}
