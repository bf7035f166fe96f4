// Package repository provides the PostgreSQL-backed ledger store used when
// the engine runs with durable balances.
package repository

import (
	"context"
	"fmt"

	"gamehall/database"
	"gamehall/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type queryable interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerRepository implements ledger.Store on PostgreSQL. Every adjustment
// is a single atomic upsert, so concurrent credits and debits for the same
// player serialize in the database rather than in process.
type LedgerRepository struct {
	q              queryable
	initialBalance int64
}

// NewLedgerRepository creates a ledger repository. New players start at
// initialBalance before their first delta.
func NewLedgerRepository(db *database.DB, initialBalance int64) *LedgerRepository {
	return &LedgerRepository{q: db.Pool, initialBalance: initialBalance}
}

// GetBalance returns the player's balance, or the configured initial
// balance for a player with no row yet. No row is materialized by a read.
func (r *LedgerRepository) GetBalance(ctx context.Context, playerID string) (int64, error) {
	query := `SELECT balance FROM ledger_entries WHERE player_id = $1`

	var balance int64
	err := r.q.QueryRow(ctx, query, playerID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return r.initialBalance, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for player %s: %w", playerID, err)
	}
	return balance, nil
}

// AdjustBalance applies a signed delta atomically, creating the row on
// first use, and returns the new balance.
func (r *LedgerRepository) AdjustBalance(ctx context.Context, player models.Player, delta int64) (int64, error) {
	query := `
		INSERT INTO ledger_entries (player_id, name, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE
		SET balance = ledger_entries.balance + $4,
		    name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE ledger_entries.name END,
		    updated_at = NOW()
		RETURNING balance
	`

	var balance int64
	err := r.q.QueryRow(ctx, query, player.ID, player.Name, r.initialBalance+delta, delta).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for player %s: %w", player.ID, err)
	}
	return balance, nil
}

// Leaderboard returns all entries ordered by balance descending, ties
// broken by first-seen order.
func (r *LedgerRepository) Leaderboard(ctx context.Context) ([]*models.LedgerEntry, error) {
	query := `
		SELECT player_id, name, balance, created_at
		FROM ledger_entries
		ORDER BY balance DESC, created_at ASC, id ASC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		if err := rows.Scan(&entry.PlayerID, &entry.Name, &entry.Balance, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, nil
}
