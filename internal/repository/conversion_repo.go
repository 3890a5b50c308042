package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Conversion is one performed conversion in the audit log.
type Conversion struct {
	ID          string
	FromCode    string
	ToCode      string
	Amount      float64
	Rate        float64
	Result      float64
	ConvertedAt time.Time
}

// ConversionRepository defines DB operations for the conversion audit log.
type ConversionRepository interface {
	Insert(ctx context.Context, conv *Conversion) error
	ListRecent(ctx context.Context, fromCode, toCode string, limit int) ([]Conversion, error)
	GetLatest(ctx context.Context, fromCode, toCode string) (*Conversion, error)
}

// PostgresConversionRepository is a ConversionRepository backed by PostgreSQL.
type PostgresConversionRepository struct {
	db *sql.DB
}

// NewPostgresConversionRepository creates a new PostgresConversionRepository.
func NewPostgresConversionRepository(db *sql.DB) ConversionRepository {
	return &PostgresConversionRepository{db: db}
}

// Insert stores one conversion record. Inserting the same ID twice is a
// no-op, so task retries stay idempotent.
func (r *PostgresConversionRepository) Insert(ctx context.Context, conv *Conversion) error {
	query := `INSERT INTO conversions (id, from_code, to_code, amount, rate, result, converted_at)
              VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
              ON CONFLICT (id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		conv.ID, conv.FromCode, conv.ToCode, conv.Amount, conv.Rate, conv.Result, conv.ConvertedAt)
	if err != nil {
		return fmt.Errorf("failed to insert conversion: %w", err)
	}
	return nil
}

// ListRecent returns the most recent conversions for a pair, newest first.
func (r *PostgresConversionRepository) ListRecent(ctx context.Context, fromCode, toCode string, limit int) ([]Conversion, error) {
	query := `SELECT id::text, from_code, to_code, amount, rate, result, converted_at
              FROM conversions
              WHERE from_code=$1 AND to_code=$2
              ORDER BY converted_at DESC
              LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, fromCode, toCode, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck // best-effort close

	var out []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.FromCode, &c.ToCode, &c.Amount, &c.Rate, &c.Result, &c.ConvertedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetLatest finds the most recent conversion for a pair, returning (nil, nil)
// when the pair has never been converted.
func (r *PostgresConversionRepository) GetLatest(ctx context.Context, fromCode, toCode string) (*Conversion, error) {
	query := `SELECT id::text, from_code, to_code, amount, rate, result, converted_at
              FROM conversions
              WHERE from_code=$1 AND to_code=$2
              ORDER BY converted_at DESC
              LIMIT 1`

	var c Conversion
	err := r.db.QueryRowContext(ctx, query, fromCode, toCode).
		Scan(&c.ID, &c.FromCode, &c.ToCode, &c.Amount, &c.Rate, &c.Result, &c.ConvertedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
