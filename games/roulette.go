package games

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
)

// Roulette resolves color, parity, and exact-number bets on a single draw
// in [0,36]. Color assignment is even=red, odd=black, which is not the
// casino wheel layout; the payout table depends on it, so keep them in sync.
type Roulette struct {
	base
}

// NewRoulette creates the roulette engine.
func NewRoulette(ledgerSvc *ledger.Service, rng random.Source, publisher events.Publisher) *Roulette {
	return &Roulette{base: base{ledger: ledgerSvc, rng: rng, publisher: publisher}}
}

func (g *Roulette) Name() string { return "roulette" }

func (g *Roulette) Usage() string {
	return "Usage: !roulette <bet> <amount>"
}

func (g *Roulette) Play(ctx context.Context, player models.Player, args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, malformed("Invalid roulette command. " + g.Usage())
	}

	bet := strings.ToLower(args[0])
	amount, err := parseAmount(args[1])
	if err != nil {
		return nil, malformed("Invalid roulette command. " + g.Usage())
	}

	betNumber := -1
	switch bet {
	case "red", "black", "even", "odd":
	default:
		n, convErr := strconv.Atoi(bet)
		if convErr != nil || n < 0 || n > 36 {
			return nil, invalidChoice("Invalid roulette bet. " + g.Usage())
		}
		betNumber = n
	}

	winningNumber := g.rng.IntN(0, 37)
	winningColor := "black"
	if winningNumber%2 == 0 {
		winningColor = "red"
	}

	lines := []string{fmt.Sprintf("Roulette wheel spinning... Winning number: %d (%s)", winningNumber, winningColor)}

	switch {
	case bet == winningColor:
		payout := amount * 2
		lines = append(lines, fmt.Sprintf("You won! Payout: %d", payout))
		if err := g.win(ctx, player, models.GameRoulette, payout); err != nil {
			return nil, err
		}
	case bet == "even" && winningNumber%2 == 0, bet == "odd" && winningNumber%2 != 0:
		payout := amount * 2
		lines = append(lines, fmt.Sprintf("You won! Payout: %d", payout))
		if err := g.win(ctx, player, models.GameRoulette, payout); err != nil {
			return nil, err
		}
	case betNumber == winningNumber:
		payout := amount * 35
		lines = append(lines, fmt.Sprintf("You won! Payout: %d", payout))
		if err := g.win(ctx, player, models.GameRoulette, payout); err != nil {
			return nil, err
		}
	default:
		lines = append(lines, "You lost.")
		if err := g.lose(ctx, player, models.GameRoulette, amount); err != nil {
			return nil, err
		}
	}

	return lines, nil
}
