package ledger

import (
	"context"

	"gamehall/models"
)

// Store is the injectable key-value backing for the balance ledger. Entries
// are created lazily on first adjustment and never deleted.
type Store interface {
	// GetBalance returns the player's balance, or 0 for an unseen player
	// without materializing an entry.
	GetBalance(ctx context.Context, playerID string) (int64, error)

	// AdjustBalance atomically applies a signed delta to the player's
	// balance, creating the entry on first use, and returns the new balance.
	// No floor is enforced; balances may go negative.
	AdjustBalance(ctx context.Context, player models.Player, delta int64) (int64, error)

	// Leaderboard returns a consistent snapshot of all entries sorted by
	// balance descending, ties broken by first-seen order.
	Leaderboard(ctx context.Context) ([]*models.LedgerEntry, error)
}
