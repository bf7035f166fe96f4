package games

import (
	"context"
	"fmt"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
)

var slotSymbols = []string{"cherry", "lemon", "orange", "bell", "bar", "seven"}

const (
	slotJackpotMultiplier = 10
	slotPairMultiplier    = 2
)

// SlotMachine spins three reels drawn uniformly from six symbols. Three of
// a kind pays the jackpot multiplier, any pair pays double, anything else
// loses the stake.
type SlotMachine struct {
	base
}

// NewSlotMachine creates the slot machine engine.
func NewSlotMachine(ledgerSvc *ledger.Service, rng random.Source, publisher events.Publisher) *SlotMachine {
	return &SlotMachine{base: base{ledger: ledgerSvc, rng: rng, publisher: publisher}}
}

func (g *SlotMachine) Name() string { return "slotmachine" }

func (g *SlotMachine) Usage() string {
	return "Usage: !slotmachine <amount>"
}

func (g *SlotMachine) Play(ctx context.Context, player models.Player, args []string) ([]string, error) {
	if len(args) < 1 {
		return nil, malformed("Invalid slot machine command. " + g.Usage())
	}

	amount, err := parseAmount(args[0])
	if err != nil {
		return nil, malformed("Invalid slot machine command. " + g.Usage())
	}

	first := slotSymbols[g.rng.IntN(0, len(slotSymbols))]
	second := slotSymbols[g.rng.IntN(0, len(slotSymbols))]
	third := slotSymbols[g.rng.IntN(0, len(slotSymbols))]

	lines := []string{fmt.Sprintf("Reels spinning... [%s | %s | %s]", first, second, third)}

	switch {
	case first == second && second == third:
		payout := amount * slotJackpotMultiplier
		lines = append(lines, fmt.Sprintf("Jackpot! You won! Payout: %d", payout))
		if err := g.win(ctx, player, models.GameSlotMachine, payout); err != nil {
			return nil, err
		}
	case first == second || second == third || first == third:
		payout := amount * slotPairMultiplier
		lines = append(lines, fmt.Sprintf("You won! Payout: %d", payout))
		if err := g.win(ctx, player, models.GameSlotMachine, payout); err != nil {
			return nil, err
		}
	default:
		lines = append(lines, "You lost.")
		if err := g.lose(ctx, player, models.GameSlotMachine, amount); err != nil {
			return nil, err
		}
	}

	return lines, nil
}
