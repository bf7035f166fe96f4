// Package games implements the per-variant game engines. Each engine maps
// a player command plus current session and random state to an outcome, a
// ledger delta, and the lines to send back.
package games

import (
	"context"
	"fmt"
	"strconv"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
)

// Engine is the resolution logic for one game variant. Engines are
// registered with the router by Name and must be safe for concurrent Play
// calls from different players.
type Engine interface {
	// Name is the lower-case command token the engine answers to.
	Name() string

	// Usage is the one-line usage string shown on malformed commands.
	Usage() string

	// Play resolves a single command. The returned lines go back to the
	// issuing player. A *PlayerError aborts the command with a message and
	// no state change; any other error is an internal failure.
	Play(ctx context.Context, player models.Player, args []string) ([]string, error)
}

// base carries the collaborators shared by every engine and the common
// outcome bookkeeping.
type base struct {
	ledger    *ledger.Service
	rng       random.Source
	publisher events.Publisher
}

// win credits the payout and reports the resolved round.
func (b *base) win(ctx context.Context, player models.Player, game models.GameKind, payout int64) error {
	if _, err := b.ledger.Credit(ctx, player, payout); err != nil {
		return fmt.Errorf("failed to credit %s win: %w", game, err)
	}
	b.publishOutcome(ctx, player, game, models.Outcome{Kind: models.OutcomeWin, Payout: payout})
	return nil
}

// lose debits the staked amount and reports the resolved round.
func (b *base) lose(ctx context.Context, player models.Player, game models.GameKind, amount int64) error {
	if _, err := b.ledger.Debit(ctx, player, amount); err != nil {
		return fmt.Errorf("failed to debit %s loss: %w", game, err)
	}
	b.publishOutcome(ctx, player, game, models.Outcome{Kind: models.OutcomeLoss, Risked: amount})
	return nil
}

// tie reports a resolved round with no ledger change.
func (b *base) tie(ctx context.Context, player models.Player, game models.GameKind) {
	b.publishOutcome(ctx, player, game, models.Outcome{Kind: models.OutcomeTie})
}

func (b *base) publishOutcome(ctx context.Context, player models.Player, game models.GameKind, outcome models.Outcome) {
	if b.publisher != nil {
		b.publisher.Publish(ctx, events.GameResolvedEvent{
			PlayerID: player.ID,
			Game:     game,
			Outcome:  outcome,
		})
	}
}

// parseAmount parses a wager token. Non-numeric and non-positive amounts
// are rejected before any draw is consumed.
func parseAmount(token string) (int64, error) {
	amount, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q: %w", token, err)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %d", amount)
	}
	return amount, nil
}
