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
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager backs the "cloud sync" deployment shape.
type PostgresRepositoryManager struct {
	db *sql.DB
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := migrations.Run(ctx, db, "postgres"); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &PostgresRepositoryManager{db: db}, nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Applications(db dbx.DBTX) applications.Repository {
	return applications.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Resumes(db dbx.DBTX) resumes.Repository {
	return resumes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
