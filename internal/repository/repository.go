package repository

import (
	"context"
	"log/slog"

	"github.com/Sepsepi/blakeaddr/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db  Database
	log *slog.Logger
}

// Database is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type Interface interface {
	FetchRecordsForParsing(ctx context.Context, limit int) ([]models.Record, error)
	UpdateParsedAddress(ctx context.Context, recordID int, parsed models.ParsedAddress) error
	SavePhoneNumbers(ctx context.Context, recordID int, primary, secondary string) error
	IncrementFailureCount(ctx context.Context, recordID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
