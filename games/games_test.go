package games

import (
	"context"
	"testing"

	"gamehall/ledger"
	"gamehall/models"
	"gamehall/random"
	"gamehall/session"

	"github.com/stretchr/testify/require"
)

var testPlayer = models.Player{ID: "p1", Name: "tester"}

// fixture wires an engine's collaborators over in-memory state with a
// scripted random source, so tests can force exact draws and assert the
// resulting ledger deltas.
type fixture struct {
	ledger   *ledger.Service
	sessions *session.Store
	rng      *random.Script
}

func newFixture(draws ...int) *fixture {
	return &fixture{
		ledger:   ledger.New(ledger.NewMemoryStore(0), nil),
		sessions: session.NewStore(),
		rng:      random.NewScript(draws...),
	}
}

func (f *fixture) balance(t *testing.T, playerID string) int64 {
	t.Helper()
	balance, err := f.ledger.Balance(context.Background(), playerID)
	require.NoError(t, err)
	return balance
}

// requirePlayerError asserts the engine rejected the command locally with
// no draw consumed and no ledger movement.
func requirePlayerError(t *testing.T, f *fixture, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	playerErr, ok := err.(*PlayerError)
	require.True(t, ok, "expected *PlayerError, got %T", err)
	require.Equal(t, kind, playerErr.Kind)
}
