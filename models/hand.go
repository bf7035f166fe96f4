package models

import (
	"fmt"
	"strings"
)

// Card is a rank drawn from a 13-value deck abstraction. Suits are
// irrelevant to blackjack value, so only the rank is kept: 1 is an ace,
// 11-13 are J/Q/K.
type Card int

// Value returns the blackjack value of the card with aces high. The
// soft-ace downgrade to 1 is applied at the hand level.
func (c Card) Value() int {
	switch {
	case c == 1:
		return 11
	case c > 10:
		return 10
	default:
		return int(c)
	}
}

func (c Card) String() string {
	switch c {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return fmt.Sprintf("%d", int(c))
	}
}

// HandStatus is the state tag of a blackjack hand
type HandStatus string

const (
	HandActive    HandStatus = "active"
	HandStanding  HandStatus = "standing"
	HandBust      HandStatus = "bust"
	HandBlackjack HandStatus = "blackjack"
)

// Hand is an ordered sequence of cards owned by a single player's
// blackjack session (or by the dealer during stand resolution).
type Hand struct {
	Cards  []Card
	Status HandStatus
}

// NewHand creates a two-card hand. A fresh two-card 21 is classified
// Blackjack before any player action.
func NewHand(first, second Card) *Hand {
	h := &Hand{Cards: []Card{first, second}, Status: HandActive}
	if h.Value() == 21 {
		h.Status = HandBlackjack
	}
	return h
}

// Add appends a drawn card and reclassifies the hand. A value over 21 is
// always a bust.
func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
	if h.Value() > 21 {
		h.Status = HandBust
	}
}

// Stand freezes the hand for resolution against the dealer.
func (h *Hand) Stand() {
	h.Status = HandStanding
}

// Value computes the hand value with the standard soft-ace rule: each ace
// counts 11 unless that would bust the hand, in which case it counts 1.
func (h *Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		total += c.Value()
		if c == 1 {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), h.Value())
}
