// Package store persists rendered portal records in MySQL.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PortalRecord is one rendered dictionary entry, keyed by the spreadsheet
// line it was built from.
type PortalRecord struct {
	Line      int       `db:"line" yaml:"line"`
	Headword  string    `db:"headword" yaml:"headword"`
	Record    string    `db:"record" yaml:"record"`
	CreatedAt time.Time `db:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `db:"updated_at" yaml:"updated_at"`
}

//go:generate mockgen -source=record_repository.go -destination=../mocks/store/mock_record_repository.go -package=mock_store RecordRepository

// RecordRepository defines operations for managing portal records.
type RecordRepository interface {
	FindAll(ctx context.Context) ([]PortalRecord, error)
	Upsert(ctx context.Context, record *PortalRecord) error
	DeleteByLines(ctx context.Context, lines []int) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// DBRecordRepository implements RecordRepository using MySQL.
type DBRecordRepository struct {
	db *sqlx.DB
}

func NewDBRecordRepository(db *sqlx.DB) *DBRecordRepository {
	return &DBRecordRepository{db: db}
}

// FindAll returns all records in line order.
func (r *DBRecordRepository) FindAll(ctx context.Context) ([]PortalRecord, error) {
	var records []PortalRecord
	if err := r.db.SelectContext(ctx, &records, "SELECT * FROM portal_records ORDER BY line"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(portal_records) > %w", err)
	}
	return records, nil
}

func (r *DBRecordRepository) Upsert(ctx context.Context, record *PortalRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO portal_records (line, headword, record)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE headword = VALUES(headword), record = VALUES(record)`,
		record.Line, record.Headword, record.Record)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert portal_record) > %w", err)
	}
	return nil
}

// DeleteByLines removes the records built from lines and returns how many
// were removed.
func (r *DBRecordRepository) DeleteByLines(ctx context.Context, lines []int) (int64, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM portal_records WHERE line IN (?)", lines)
	if err != nil {
		return 0, fmt.Errorf("sqlx.In() > %w", err)
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(delete portal_records by line) > %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return n, nil
}

// DeleteAll removes every record and returns how many were removed.
func (r *DBRecordRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM portal_records")
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(delete portal_records) > %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return n, nil
}
