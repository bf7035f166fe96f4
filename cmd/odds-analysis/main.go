// Standalone odds analysis tool for the gamehall minigames.
// Runs each engine for many rounds against an in-memory ledger and prints
// observed win rates and expected value per unit wagered.
package main

import (
	"context"
	"fmt"

	"gamehall/games"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
	"gamehall/session"
)

const trials = 100000

func main() {
	fmt.Println("=== gamehall odds analysis ===")

	rng := random.New(1)
	sessions := session.NewStore()

	analyze("roulette (color)", trials, func(svc *ledger.Service) games.Engine {
		return games.NewRoulette(svc, rng, nil)
	}, []string{"red", "10"})
	analyze("roulette (number)", trials, func(svc *ledger.Service) games.Engine {
		return games.NewRoulette(svc, rng, nil)
	}, []string{"17", "10"})
	analyze("coinflip", trials, func(svc *ledger.Service) games.Engine {
		return games.NewCoinFlip(svc, rng, nil)
	}, []string{"heads", "10"})
	analyze("diceroll", trials, func(svc *ledger.Service) games.Engine {
		return games.NewDiceRoll(svc, rng, nil)
	}, []string{"x", "10"})
	analyze("rockpaperscissors", trials, func(svc *ledger.Service) games.Engine {
		return games.NewRockPaperScissors(svc, sessions, rng, nil)
	}, []string{"rock", "10"})
	analyze("slotmachine", trials, func(svc *ledger.Service) games.Engine {
		return games.NewSlotMachine(svc, rng, nil)
	}, []string{"10"})
	analyze("blackjack (always stand)", trials, func(svc *ledger.Service) games.Engine {
		return games.NewBlackjack(svc, sessions, rng, nil)
	}, []string{"stand"})
}

// analyze plays one engine repeatedly and reports round outcomes by sign of
// the balance delta.
func analyze(label string, rounds int, build func(*ledger.Service) games.Engine, args []string) {
	ctx := context.Background()
	store := ledger.NewMemoryStore(0)
	svc := ledger.New(store, nil)
	engine := build(svc)
	player := models.Player{ID: "sim", Name: "sim"}

	wins, losses, ties := 0, 0, 0
	var previous int64
	for i := 0; i < rounds; i++ {
		if _, err := engine.Play(ctx, player, args); err != nil {
			fmt.Printf("%-24s simulation error: %v\n", label, err)
			return
		}
		balance, err := svc.Balance(ctx, player.ID)
		if err != nil {
			fmt.Printf("%-24s simulation error: %v\n", label, err)
			return
		}
		switch {
		case balance > previous:
			wins++
		case balance < previous:
			losses++
		default:
			ties++
		}
		previous = balance
	}

	final, _ := svc.Balance(ctx, player.ID)
	fmt.Printf("%-24s rounds=%d win=%.4f loss=%.4f tie=%.4f ev/round=%+.4f\n",
		label, rounds,
		float64(wins)/float64(rounds),
		float64(losses)/float64(rounds),
		float64(ties)/float64(rounds),
		float64(final)/float64(rounds))
}
