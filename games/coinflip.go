package games

import (
	"context"
	"fmt"
	"strings"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
)

// CoinFlip pays double or nothing on a single uniform heads/tails draw.
type CoinFlip struct {
	base
}

// NewCoinFlip creates the coin flip engine.
func NewCoinFlip(ledgerSvc *ledger.Service, rng random.Source, publisher events.Publisher) *CoinFlip {
	return &CoinFlip{base: base{ledger: ledgerSvc, rng: rng, publisher: publisher}}
}

func (g *CoinFlip) Name() string { return "coinflip" }

func (g *CoinFlip) Usage() string {
	return "Usage: !coinflip <heads/tails> <amount>"
}

func (g *CoinFlip) Play(ctx context.Context, player models.Player, args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, malformed("Invalid coin flip command. " + g.Usage())
	}

	bet := strings.ToLower(args[0])
	if bet != "heads" && bet != "tails" {
		return nil, invalidChoice("Invalid coin flip bet. " + g.Usage())
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return nil, malformed("Invalid coin flip command. " + g.Usage())
	}

	winningSide := "tails"
	if g.rng.IntN(0, 2) == 0 {
		winningSide = "heads"
	}

	lines := []string{fmt.Sprintf("Coin flipping... Winning side: %s", winningSide)}

	if bet == winningSide {
		payout := amount * 2
		lines = append(lines, fmt.Sprintf("You won! Payout: %d", payout))
		if err := g.win(ctx, player, models.GameCoinFlip, payout); err != nil {
			return nil, err
		}
	} else {
		lines = append(lines, "You lost.")
		if err := g.lose(ctx, player, models.GameCoinFlip, amount); err != nil {
			return nil, err
		}
	}

	return lines, nil
}
