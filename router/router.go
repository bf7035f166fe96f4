// Package router dispatches trigger-prefixed chat commands to registered
// game engines and the built-in ledger queries.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamehall/games"
	"gamehall/ledger"
	"gamehall/models"

	log "github.com/sirupsen/logrus"
)

const invalidCommandMessage = "Invalid command."

// Router maps a leading command token to a registered engine or a built-in
// (balance, leaderboard, help). Lookup is by name; new games plug in via
// Register without touching dispatch.
type Router struct {
	trigger string
	ledger  *ledger.Service
	engines map[string]games.Engine
	order   []string // registration order, for help output
}

// New creates a router. trigger is the command prefix, usually "!".
func New(trigger string, ledgerSvc *ledger.Service) *Router {
	return &Router{
		trigger: trigger,
		ledger:  ledgerSvc,
		engines: make(map[string]games.Engine),
	}
}

// Register adds a game engine under its command name. Registering the same
// name twice replaces the earlier engine.
func (r *Router) Register(engine games.Engine) {
	name := strings.ToLower(engine.Name())
	if _, exists := r.engines[name]; !exists {
		r.order = append(r.order, name)
	}
	r.engines[name] = engine
}

// Handle processes one raw chat line from a player and returns the lines to
// send back. Non-command lines return nil. A failure in one command never
// propagates beyond its reply.
func (r *Router) Handle(ctx context.Context, player models.Player, message string) []string {
	fields := strings.Fields(message)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], r.trigger) {
		return nil
	}

	name := strings.ToLower(strings.TrimPrefix(fields[0], r.trigger))
	args := fields[1:]

	switch name {
	case "balance":
		return r.handleBalance(ctx, player)
	case "leaderboard":
		return r.handleLeaderboard(ctx)
	case "help":
		return r.handleHelp()
	}

	engine, ok := r.engines[name]
	if !ok {
		return []string{invalidCommandMessage}
	}

	lines, err := engine.Play(ctx, player, args)
	if err != nil {
		var playerErr *games.PlayerError
		if errors.As(err, &playerErr) {
			return []string{playerErr.Message}
		}
		log.WithFields(log.Fields{
			"player":  player.ID,
			"command": name,
			"error":   err,
		}).Error("Game engine failed")
		return []string{invalidCommandMessage}
	}
	return lines
}

func (r *Router) handleBalance(ctx context.Context, player models.Player) []string {
	balance, err := r.ledger.Balance(ctx, player.ID)
	if err != nil {
		log.WithFields(log.Fields{"player": player.ID, "error": err}).Error("Failed to read balance")
		return []string{invalidCommandMessage}
	}
	return []string{fmt.Sprintf("Your balance: %d", balance)}
}

func (r *Router) handleLeaderboard(ctx context.Context) []string {
	entries, err := r.ledger.Leaderboard(ctx)
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Error("Failed to load leaderboard")
		return []string{invalidCommandMessage}
	}

	lines := []string{"Leaderboard:"}
	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = entry.PlayerID
		}
		lines = append(lines, fmt.Sprintf("%s: %d", name, entry.Balance))
	}
	return lines
}

func (r *Router) handleHelp() []string {
	lines := []string{"Available commands:"}
	for _, name := range r.order {
		lines = append(lines, r.trigger+name)
	}
	lines = append(lines,
		r.trigger+"balance",
		r.trigger+"leaderboard",
		r.trigger+"help",
	)
	return lines
}
