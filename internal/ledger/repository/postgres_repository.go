package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq" // Untuk pq.Error
	"github.com/ridloal/tattoo-studio-backend/internal/ledger/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/shopspring/decimal"
)

var ErrInvalidEntryData = errors.New("ledger entry violates constraints")

type LedgerRepository interface {
	AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)
	SummarizeEntries(ctx context.Context) (revenue, expense decimal.Decimal, err error)
}

type postgresLedgerRepository struct {
	db *sql.DB
}

func NewPostgresLedgerRepository(db *sql.DB) LedgerRepository {
	return &postgresLedgerRepository{db: db}
}

func (r *postgresLedgerRepository) AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (entry_date, description, artist, entry_type, amount, category, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`

	entry.CreatedAt = time.Now()

	var artist sql.NullString
	if entry.Artist != nil {
		artist = sql.NullString{String: *entry.Artist, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		entry.Date, entry.Description, artist, entry.Type, entry.Amount, entry.Category, entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" { // check_violation (mis. amount < 0)
			logger.Error("AppendEntry: check violation", err)
			return ErrInvalidEntryData
		}
		logger.Error("AppendEntry: failed to insert ledger entry", err)
		return err
	}
	return nil
}

func (r *postgresLedgerRepository) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `SELECT id, entry_date, description, artist, entry_type, amount, category, created_at
              FROM ledger_entries ORDER BY entry_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListEntries: query failed", err)
		return nil, err
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		var artist sql.NullString
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &artist, &e.Type, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			logger.Error("ListEntries: scan failed", err)
			return nil, err
		}
		if artist.Valid {
			e.Artist = &artist.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresLedgerRepository) SummarizeEntries(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount) FILTER (WHERE entry_type = $1), 0),
               COALESCE(SUM(amount) FILTER (WHERE entry_type = $2), 0)
        FROM ledger_entries`
	var revenue, expense decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, domain.TypeRevenue, domain.TypeExpense).Scan(&revenue, &expense)
	if err != nil {
		logger.Error("SummarizeEntries: query failed", err)
		return decimal.Zero, decimal.Zero, err
	}
	return revenue, expense, nil
}
