package games

import (
	"context"
	"fmt"
	"strings"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
	"gamehall/session"

	log "github.com/sirupsen/logrus"
)

// Blackjack payouts use fixed unit constants instead of scaling with a
// wagered amount, unlike every other game. This mirrors the historical
// behavior and is flagged in DESIGN.md rather than silently corrected.
const (
	blackjackBonus = 6 // the "3:2" bonus paid on a fresh two-card 21
	blackjackStake = 1 // unit won or lost on stand resolution and busts
)

// Blackjack runs the per-player hand state machine: no hand, then an active
// hand, then standing/bust/blackjack. Terminal states clear the session so
// the next action deals fresh cards.
type Blackjack struct {
	base
	sessions *session.Store
}

// NewBlackjack creates the blackjack engine.
func NewBlackjack(ledgerSvc *ledger.Service, sessions *session.Store, rng random.Source, publisher events.Publisher) *Blackjack {
	return &Blackjack{
		base:     base{ledger: ledgerSvc, rng: rng, publisher: publisher},
		sessions: sessions,
	}
}

func (g *Blackjack) Name() string { return "blackjack" }

func (g *Blackjack) Usage() string {
	return "Usage: !blackjack <hit/stand/double>"
}

func (g *Blackjack) Play(ctx context.Context, player models.Player, args []string) ([]string, error) {
	if len(args) < 1 {
		return nil, malformed("Invalid blackjack command. " + g.Usage())
	}

	action := strings.ToLower(args[0])
	switch action {
	case "hit", "stand", "double":
	default:
		return nil, invalidChoice("Invalid blackjack action.")
	}

	var lines []string
	err := g.sessions.WithSession(player.ID, models.GameBlackjack, func(st *session.State) error {
		if st.Hand == nil {
			st.Hand = models.NewHand(g.draw(), g.draw())
			log.WithFields(log.Fields{
				"player": player.ID,
				"hand":   st.Hand.String(),
			}).Debug("Dealt fresh blackjack hand")
		}
		hand := st.Hand

		// A fresh two-card 21 resolves immediately; the requested action is
		// not applied.
		if hand.Status == models.HandActive {
			switch action {
			case "hit", "double":
				// double draws like a hit; the wager is not actually doubled
				// (preserved inconsistency, see DESIGN.md)
				hand.Add(g.draw())
			case "stand":
				hand.Stand()
			}
		}

		lines = append(lines, "Your hand: "+hand.String())

		switch hand.Status {
		case models.HandBlackjack:
			lines = append(lines, "You got a blackjack! Payout: 3:2")
			st.Hand = nil
			if err := g.winBlackjack(ctx, player); err != nil {
				return err
			}
		case models.HandBust:
			lines = append(lines, "You busted. You lost.")
			st.Hand = nil
			if err := g.lose(ctx, player, models.GameBlackjack, blackjackStake); err != nil {
				return err
			}
		case models.HandStanding:
			dealerLines, err := g.resolveAgainstDealer(ctx, player, hand)
			lines = append(lines, dealerLines...)
			st.Hand = nil
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// resolveAgainstDealer deals and plays the dealer hand under the fixed
// draw-below-17 policy, then settles the round.
func (g *Blackjack) resolveAgainstDealer(ctx context.Context, player models.Player, hand *models.Hand) ([]string, error) {
	dealer := models.NewHand(g.draw(), g.draw())
	for dealer.Value() < 17 {
		dealer.Add(g.draw())
	}

	lines := []string{fmt.Sprintf("Dealer's hand: %s", dealer.String())}

	switch {
	case dealer.Value() > 21:
		lines = append(lines, "Dealer busted. You won!")
		return lines, g.win(ctx, player, models.GameBlackjack, blackjackStake)
	case dealer.Value() > hand.Value():
		lines = append(lines, "Dealer's hand is higher. You lost.")
		return lines, g.lose(ctx, player, models.GameBlackjack, blackjackStake)
	case dealer.Value() < hand.Value():
		lines = append(lines, "Your hand is higher. You won!")
		return lines, g.win(ctx, player, models.GameBlackjack, blackjackStake)
	default:
		lines = append(lines, "It's a tie.")
		g.tie(ctx, player, models.GameBlackjack)
		return lines, nil
	}
}

func (g *Blackjack) winBlackjack(ctx context.Context, player models.Player) error {
	if _, err := g.ledger.Credit(ctx, player, blackjackBonus); err != nil {
		return fmt.Errorf("failed to credit blackjack bonus: %w", err)
	}
	g.publishOutcome(ctx, player, models.GameBlackjack, models.Outcome{
		Kind:   models.OutcomeBlackjack,
		Payout: blackjackBonus,
	})
	return nil
}

// draw takes one card from the 13-value infinite deck abstraction.
func (g *Blackjack) draw() models.Card {
	return models.Card(g.rng.IntN(1, 14))
}
