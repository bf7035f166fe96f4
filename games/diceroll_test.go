package games

import (
	"context"
	"strings"
	"testing"

	"gamehall/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceRoll_HigherRollWins(t *testing.T) {
	f := newFixture(6, 3)
	g := NewDiceRoll(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"10", "10"})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "Dice rolling... Result: 6", lines[0])
	assert.Equal(t, "Opponent's roll: 3", lines[1])
	assert.Equal(t, "You won! Payout: 20", lines[2])
	assert.Equal(t, int64(20), f.balance(t, testPlayer.ID))
}

func TestDiceRoll_LowerRollLoses(t *testing.T) {
	f := newFixture(2, 5)
	g := NewDiceRoll(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"10", "10"})
	require.NoError(t, err)
	assert.Equal(t, "You lost.", lines[2])
	assert.Equal(t, int64(-10), f.balance(t, testPlayer.ID))
}

func TestDiceRoll_EqualRollsTie(t *testing.T) {
	f := newFixture(4, 4)
	g := NewDiceRoll(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"10", "10"})
	require.NoError(t, err)
	assert.Equal(t, "It's a tie.", lines[2])
	assert.Equal(t, int64(0), f.balance(t, testPlayer.ID))
}

func TestDiceRoll_AmountReadFromSecondArgument(t *testing.T) {
	// The first argument is ignored; only the second token is the wager.
	f := newFixture(6, 3)
	g := NewDiceRoll(f.ledger, f.rng, nil)

	lines, err := g.Play(context.Background(), testPlayer, []string{"999", "25"})
	require.NoError(t, err)
	assert.Equal(t, "You won! Payout: 50", lines[2])
	assert.Equal(t, int64(50), f.balance(t, testPlayer.ID))
}

func TestDiceRoll_SingleArgumentIsMalformed(t *testing.T) {
	f := newFixture(6, 3)
	g := NewDiceRoll(f.ledger, f.rng, nil)

	_, err := g.Play(context.Background(), testPlayer, []string{"10"})
	requirePlayerError(t, f, err, KindMalformedCommand)

	_, err = g.Play(context.Background(), testPlayer, []string{"10", "0"})
	requirePlayerError(t, f, err, KindMalformedCommand)

	assert.Equal(t, 2, f.rng.Remaining())
	assert.Equal(t, int64(0), f.balance(t, testPlayer.ID))
}

func TestDiceRoll_TieRateNearOneSixth(t *testing.T) {
	f := newFixture()
	g := NewDiceRoll(f.ledger, random.New(54321), nil)

	const trials = 10000
	ties := 0
	for i := 0; i < trials; i++ {
		lines, err := g.Play(context.Background(), testPlayer, []string{"1", "1"})
		require.NoError(t, err)
		if strings.Contains(lines[2], "tie") {
			ties++
		}
	}
	assert.InDelta(t, trials/6, ties, float64(trials)/25)
}
