package games

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
	"gamehall/session"
)

var rpsChoices = []string{"rock", "paper", "scissors"}

// RockPaperScissors plays either a solo round against the house or records
// a challenge against a named opponent. Solo mode draws a uniform "winning
// choice" and the player wins only on an exact match, which makes it a
// 1-in-3 bet rather than real RPS logic; that behavior is deliberate.
// Challenges are only tracked, never resolved from the opponent's side.
type RockPaperScissors struct {
	base
	sessions *session.Store
}

// NewRockPaperScissors creates the rock-paper-scissors engine.
func NewRockPaperScissors(ledgerSvc *ledger.Service, sessions *session.Store, rng random.Source, publisher events.Publisher) *RockPaperScissors {
	return &RockPaperScissors{
		base:     base{ledger: ledgerSvc, rng: rng, publisher: publisher},
		sessions: sessions,
	}
}

func (g *RockPaperScissors) Name() string { return "rockpaperscissors" }

func (g *RockPaperScissors) Usage() string {
	return "Usage: !rockpaperscissors <rock/paper/scissors> <amount>"
}

func (g *RockPaperScissors) Play(ctx context.Context, player models.Player, args []string) ([]string, error) {
	if len(args) < 2 {
		return nil, malformed("Invalid rock-paper-scissors command. " + g.Usage())
	}

	choice := strings.ToLower(args[0])
	valid := false
	for _, c := range rpsChoices {
		if choice == c {
			valid = true
			break
		}
	}
	if !valid {
		return nil, invalidChoice("Invalid rock-paper-scissors choice. " + g.Usage())
	}

	amount, err := parseAmount(args[1])
	if err != nil {
		return nil, malformed("Invalid rock-paper-scissors command. " + g.Usage())
	}

	if len(args) > 2 {
		return g.challenge(ctx, player, choice, amount, args[2])
	}
	return g.solo(ctx, player, choice, amount)
}

// challenge records a pending challenge against the named opponent. Only
// one may be outstanding per challenger.
func (g *RockPaperScissors) challenge(ctx context.Context, player models.Player, choice string, amount int64, opponent string) ([]string, error) {
	var lines []string
	err := g.sessions.WithSession(player.ID, models.GameRockPaperScissors, func(st *session.State) error {
		if st.Challenge != nil {
			return duplicateChallenge("You already have a challenge pending.")
		}
		st.Challenge = &models.PendingChallenge{
			ChallengerID: player.ID,
			Choice:       choice,
			TargetID:     opponent,
			Amount:       amount,
			CreatedAt:    time.Now(),
		}
		lines = append(lines, fmt.Sprintf("Challenge sent to %s.", opponent))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if g.publisher != nil {
		g.publisher.Publish(ctx, events.ChallengeCreatedEvent{
			ChallengerID: player.ID,
			TargetID:     opponent,
			Amount:       amount,
		})
	}
	return lines, nil
}

// solo resolves a round against the house. Any pending challenge the
// player had is dropped by playing solo.
func (g *RockPaperScissors) solo(ctx context.Context, player models.Player, choice string, amount int64) ([]string, error) {
	var lines []string
	err := g.sessions.WithSession(player.ID, models.GameRockPaperScissors, func(st *session.State) error {
		st.Challenge = nil

		winningChoice := rpsChoices[g.rng.IntN(0, len(rpsChoices))]
		lines = append(lines, fmt.Sprintf("You played %s. Winning choice: %s", choice, winningChoice))

		if choice == winningChoice {
			payout := amount * 2
			lines = append(lines, fmt.Sprintf("You won! Payout: %d", payout))
			return g.win(ctx, player, models.GameRockPaperScissors, payout)
		}
		lines = append(lines, "You lost.")
		return g.lose(ctx, player, models.GameRockPaperScissors, amount)
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
