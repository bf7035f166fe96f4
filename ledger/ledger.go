// Package ledger owns the authoritative mapping of player to spendable
// balance. All balance mutation flows through Service.Credit and
// Service.Debit; game engines never touch the store directly.
package ledger

import (
	"context"
	"fmt"

	"gamehall/events"
	"gamehall/models"
)

// Service wraps a Store with validation and balance-change events.
type Service struct {
	store     Store
	publisher events.Publisher
}

// New creates a ledger service backed by the given store.
func New(store Store, publisher events.Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

// Balance returns the player's current balance, 0 for unseen players.
func (s *Service) Balance(ctx context.Context, playerID string) (int64, error) {
	balance, err := s.store.GetBalance(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for player %s: %w", playerID, err)
	}
	return balance, nil
}

// Credit adds a non-negative amount to the player's balance and returns the
// new balance.
func (s *Service) Credit(ctx context.Context, player models.Player, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("credit amount must be non-negative, got %d", amount)
	}
	return s.adjust(ctx, player, amount)
}

// Debit subtracts a non-negative amount from the player's balance and
// returns the new balance. There is no floor check; the balance may go
// negative.
func (s *Service) Debit(ctx context.Context, player models.Player, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("debit amount must be non-negative, got %d", amount)
	}
	return s.adjust(ctx, player, -amount)
}

func (s *Service) adjust(ctx context.Context, player models.Player, delta int64) (int64, error) {
	newBalance, err := s.store.AdjustBalance(ctx, player, delta)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for player %s: %w", player.ID, err)
	}

	if s.publisher != nil && delta != 0 {
		s.publisher.Publish(ctx, events.BalanceChangeEvent{
			PlayerID:     player.ID,
			PlayerName:   player.Name,
			OldBalance:   newBalance - delta,
			NewBalance:   newBalance,
			ChangeAmount: delta,
		})
	}
	return newBalance, nil
}

// Leaderboard returns all ledger entries ranked by balance descending.
func (s *Service) Leaderboard(ctx context.Context) ([]*models.LedgerEntry, error) {
	entries, err := s.store.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return entries, nil
}
