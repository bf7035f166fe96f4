package games

import (
	"context"
	"fmt"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
)

// DiceRoll rolls the player and a house opponent against each other. The
// command historically required two arguments while reading only the second
// as the amount; both quirks are preserved.
type DiceRoll struct {
	base
}

// NewDiceRoll creates the dice roll engine.
func NewDiceRoll(ledgerSvc *ledger.Service, rng random.Source, publisher events.Publisher) *DiceRoll {
	return &DiceRoll{base: base{ledger: ledgerSvc, rng: rng, publisher: publisher}}
}

func (g *DiceRoll) Name() string { return "diceroll" }

func (g *DiceRoll) Usage() string {
	return "Usage: !diceroll <amount>"
}

func (g *DiceRoll) Play(ctx context.Context, player models.Player, args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, malformed("Invalid dice roll command. " + g.Usage())
	}

	amount, err := parseAmount(args[1])
	if err != nil {
		return nil, malformed("Invalid dice roll command. " + g.Usage())
	}

	roll := g.rng.IntN(1, 7)
	lines := []string{fmt.Sprintf("Dice rolling... Result: %d", roll)}

	opponentRoll := g.rng.IntN(1, 7)
	lines = append(lines, fmt.Sprintf("Opponent's roll: %d", opponentRoll))

	switch {
	case roll > opponentRoll:
		payout := amount * 2
		lines = append(lines, fmt.Sprintf("You won! Payout: %d", payout))
		if err := g.win(ctx, player, models.GameDiceRoll, payout); err != nil {
			return nil, err
		}
	case roll < opponentRoll:
		lines = append(lines, "You lost.")
		if err := g.lose(ctx, player, models.GameDiceRoll, amount); err != nil {
			return nil, err
		}
	default:
		lines = append(lines, "It's a tie.")
		g.tie(ctx, player, models.GameDiceRoll)
	}

	return lines, nil
}
