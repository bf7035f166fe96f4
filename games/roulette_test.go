package games

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoulette_NumberBetPaysThirtyFiveToOne(t *testing.T) {
	f := newFixture(17)
	g := NewRoulette(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"17", "5"})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Roulette wheel spinning... Winning number: 17 (black)", lines[0])
	assert.Equal(t, "You won! Payout: 175", lines[1])
	assert.Equal(t, int64(175), f.balance(t, testPlayer.ID))
}

func TestRoulette_ColorBetPaysDouble(t *testing.T) {
	f := newFixture(4)
	g := NewRoulette(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"red", "10"})
	require.NoError(t, err)
	assert.Equal(t, "Roulette wheel spinning... Winning number: 4 (red)", lines[0])
	assert.Equal(t, "You won! Payout: 20", lines[1])
	assert.Equal(t, int64(20), f.balance(t, testPlayer.ID))
}

func TestRoulette_ParityBetPaysDouble(t *testing.T) {
	f := newFixture(17)
	g := NewRoulette(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"odd", "10"})
	require.NoError(t, err)
	assert.Equal(t, "You won! Payout: 20", lines[1])
	assert.Equal(t, int64(20), f.balance(t, testPlayer.ID))
}

func TestRoulette_ColorsFollowParityNotWheelLayout(t *testing.T) {
	// Odd numbers are always black under the parity coloring, so a black
	// bet on 17 wins even though 17 is red on a real wheel.
	f := newFixture(17)
	g := NewRoulette(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"black", "10"})
	require.NoError(t, err)
	assert.Equal(t, "You won! Payout: 20", lines[1])
}

func TestRoulette_LossDebitsStake(t *testing.T) {
	f := newFixture(17)
	g := NewRoulette(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"red", "5"})
	require.NoError(t, err)
	assert.Equal(t, "You lost.", lines[1])
	assert.Equal(t, int64(-5), f.balance(t, testPlayer.ID))
}

func TestRoulette_ZeroIsRedAndEven(t *testing.T) {
	f := newFixture(0)
	g := NewRoulette(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"even", "10"})
	require.NoError(t, err)
	assert.Equal(t, "Roulette wheel spinning... Winning number: 0 (red)", lines[0])
	assert.Equal(t, "You won! Payout: 20", lines[1])
}

func TestRoulette_InvalidBetRejectedBeforeDraw(t *testing.T) {
	f := newFixture(17)
	g := NewRoulette(f.ledger, f.rng, nil)

	for _, bet := range []string{"37", "-1", "green", "reds"} {
		_, err := g.Play(context.Background(), testPlayer, []string{bet, "10"})
		requirePlayerError(t, f, err, KindInvalidChoice)
	}
	assert.Equal(t, 1, f.rng.Remaining(), "no draw may be consumed on a rejected bet")
	assert.Equal(t, int64(0), f.balance(t, testPlayer.ID))
}

func TestRoulette_MalformedCommand(t *testing.T) {
	f := newFixture(17)
	g := NewRoulette(f.ledger, f.rng, nil)

	_, err := g.Play(context.Background(), testPlayer, nil)
	requirePlayerError(t, f, err, KindMalformedCommand)

	_, err = g.Play(context.Background(), testPlayer, []string{"red"})
	requirePlayerError(t, f, err, KindMalformedCommand)

	_, err = g.Play(context.Background(), testPlayer, []string{"red", "0"})
	requirePlayerError(t, f, err, KindMalformedCommand)

	_, err = g.Play(context.Background(), testPlayer, []string{"red", "ten"})
	requirePlayerError(t, f, err, KindMalformedCommand)

	assert.Equal(t, 1, f.rng.Remaining())
	assert.Equal(t, int64(0), f.balance(t, testPlayer.ID))
}
