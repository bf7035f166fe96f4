// Package gateway binds the game engine to its chat host. The engine core
// only sees players, command strings, and outgoing text lines; this adapter
// supplies them from Discord.
package gateway

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"gamehall/events"
	"gamehall/ledger"
	"gamehall/models"
	"gamehall/router"

	"github.com/bwmarrin/discordgo"
)

// Config holds gateway configuration
type Config struct {
	Token             string
	AnnounceChannelID string
	HighRollerEnabled bool
}

// Gateway feeds incoming chat messages to the command router and sends the
// replies back to the originating channel. Each Discord event is delivered
// on its own goroutine, so command handling runs concurrently across
// players.
type Gateway struct {
	config  Config
	session *discordgo.Session
	router  *router.Router
	ledger  *ledger.Service

	mu         sync.Mutex
	highRoller string // player ID currently leading the board
}

// New connects to Discord and starts dispatching messages to the router.
func New(config Config, commandRouter *router.Router, ledgerSvc *ledger.Service, bus *events.Bus) (*Gateway, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	gw := &Gateway{
		config:  config,
		session: dg,
		router:  commandRouter,
		ledger:  ledgerSvc,
	}

	dg.AddHandler(gw.handleMessage)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if config.HighRollerEnabled {
		bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
			if _, ok := event.(events.BalanceChangeEvent); ok {
				if err := gw.announceHighRoller(ctx); err != nil {
					log.Errorf("Failed to announce high roller: %v", err)
				}
			}
		})
		log.Info("High roller announcements enabled")
	}

	return gw, nil
}

// Close shuts down the Discord session.
func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	player := models.Player{ID: m.Author.ID, Name: m.Author.Username}
	lines := g.router.Handle(context.Background(), player, m.Content)
	if len(lines) == 0 {
		return
	}

	log.WithFields(log.Fields{
		"player":  player.ID,
		"command": m.Content,
		"replies": len(lines),
	}).Debug("Handled chat command")

	for _, line := range lines {
		if _, err := s.ChannelMessageSend(m.ChannelID, line); err != nil {
			log.WithFields(log.Fields{
				"channel": m.ChannelID,
				"error":   err,
			}).Error("Failed to send reply")
			return
		}
	}
}

// announceHighRoller posts a message when the leaderboard leader changes.
func (g *Gateway) announceHighRoller(ctx context.Context) error {
	if g.config.AnnounceChannelID == "" {
		return nil
	}

	entries, err := g.ledger.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}
	leader := entries[0]

	g.mu.Lock()
	changed := g.highRoller != leader.PlayerID
	if changed {
		g.highRoller = leader.PlayerID
	}
	g.mu.Unlock()

	if !changed {
		return nil
	}

	name := leader.Name
	if name == "" {
		name = leader.PlayerID
	}
	message := fmt.Sprintf("%s is the new high roller with %d credits!", name, leader.Balance)
	if _, err := g.session.ChannelMessageSend(g.config.AnnounceChannelID, message); err != nil {
		return fmt.Errorf("failed to send high roller announcement: %w", err)
	}
	return nil
}
