package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Sepsepi/blakeaddr/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDatabase creates a pgx connection pool for the given Postgres instance
// and verifies it with a ping before returning.
func NewDatabase(host, port, user, password, name string) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	const pingTimeout = 5 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// FetchRecordsForParsing retrieves owner records whose raw address has not
// been parsed yet. It returns records with a NULL parsed city, fewer than 5
// parse attempts, and a non-empty raw address, ordered by creation date and
// limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of records to retrieve.
//
// Returns:
// - A slice of models.Record containing the records that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchRecordsForParsing(ctx context.Context, limit int) ([]models.Record, error) {
	var records []models.Record
	query := `
		SELECT record_id, owner_name, raw_address
		FROM public.owner_records
		WHERE
			parsed_city IS NULL
			AND parse_attempts < 5
			AND raw_address IS NOT NULL AND raw_address <> ''
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query records without parsed address: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record models.Record
		if errScan := rows.Scan(&record.ID, &record.OwnerName, &record.RawAddress); errScan != nil {
			return nil, fmt.Errorf("failed to scan record without parsed address: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new record without a parsed address has been received.",
			"ID", record.ID, "Address", record.RawAddress)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return records, nil
}

// UpdateParsedAddress stores the parsed components of a record's address and
// clears the parse_error field. It returns an error if the update fails.
func (r *Repository) UpdateParsedAddress(ctx context.Context, recordID int, parsed models.ParsedAddress) error {
	query := `
		UPDATE owner_records
		SET
			parsed_street = $1,
			parsed_city = $2,
			parsed_state = $3,
			parsed_zip = $4,
			parse_error = NULL
		WHERE
			record_id = $5;
	`

	_, err := r.db.Exec(ctx, query, parsed.Street, parsed.City, parsed.State, parsed.Zip, recordID)
	if err != nil {
		return fmt.Errorf("failed to update parsed address: %w", err)
	}

	return nil
}

// SavePhoneNumbers stores the normalized phone numbers found for a record.
// Empty strings are stored as-is; the merge step treats them as "not found".
func (r *Repository) SavePhoneNumbers(ctx context.Context, recordID int, primary, secondary string) error {
	query := `
		UPDATE owner_records
		SET
			phone_primary = $1,
			phone_secondary = $2
		WHERE record_id = $3;
	`

	_, err := r.db.Exec(ctx, query, primary, secondary, recordID)
	if err != nil {
		return fmt.Errorf("failed to save phone numbers: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the parse attempt count for a specific
// record identified by recordID and updates the associated error message.
// If the update operation fails, it returns an error with additional context.
func (r *Repository) IncrementFailureCount(ctx context.Context, recordID int, errMsg string) error {
	query := `
		UPDATE owner_records
		SET
			parse_attempts = parse_attempts + 1,
			parse_error = $1
		WHERE record_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, recordID)
	if err != nil {
		return fmt.Errorf("failed to update parse error and number of attempts: %w", err)
	}

	return nil
}
