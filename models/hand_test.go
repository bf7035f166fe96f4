package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardValue(t *testing.T) {
	assert.Equal(t, 11, Card(1).Value())  // ace counts high at the card level
	assert.Equal(t, 2, Card(2).Value())
	assert.Equal(t, 10, Card(10).Value())
	assert.Equal(t, 10, Card(11).Value()) // jack
	assert.Equal(t, 10, Card(12).Value()) // queen
	assert.Equal(t, 10, Card(13).Value()) // king
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A", Card(1).String())
	assert.Equal(t, "7", Card(7).String())
	assert.Equal(t, "J", Card(11).String())
	assert.Equal(t, "Q", Card(12).String())
	assert.Equal(t, "K", Card(13).String())
}

func TestHandValue_SoftAce(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  int
	}{
		{"ace high", []Card{1, 5}, 16},
		{"ace downgrades instead of busting", []Card{1, 5, 9}, 15},
		{"two aces", []Card{1, 1}, 12},
		{"ace plus ten is twenty one", []Card{1, 13}, 21},
		{"all face cards", []Card{11, 12, 13}, 30},
		{"many aces", []Card{1, 1, 1, 1}, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Hand{Cards: tt.cards}
			assert.Equal(t, tt.want, h.Value())
		})
	}
}

func TestNewHand_NeverBustsOnTwoCards(t *testing.T) {
	// Exhaustive over the 13x13 deal space: no two-card hand exceeds 21.
	for first := Card(1); first <= 13; first++ {
		for second := Card(1); second <= 13; second++ {
			h := NewHand(first, second)
			assert.LessOrEqual(t, h.Value(), 21, "deal %v %v", first, second)
			assert.NotEqual(t, HandBust, h.Status)
		}
	}
}

func TestNewHand_ClassifiesBlackjack(t *testing.T) {
	h := NewHand(1, 13)
	assert.Equal(t, HandBlackjack, h.Status)

	h = NewHand(10, 9)
	assert.Equal(t, HandActive, h.Status)
}

func TestHandAdd_BustOverTwentyOne(t *testing.T) {
	h := NewHand(10, 9)
	h.Add(10)
	assert.Equal(t, HandBust, h.Status)
	assert.Equal(t, 29, h.Value())
}

func TestHandAdd_MonotonicCardCount(t *testing.T) {
	h := NewHand(2, 3)
	for i := 0; i < 4; i++ {
		before := len(h.Cards)
		h.Add(2)
		assert.Equal(t, before+1, len(h.Cards))
	}
}

func TestHandString(t *testing.T) {
	h := NewHand(1, 13)
	assert.Equal(t, "A K (21)", h.String())
}
