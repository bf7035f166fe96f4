package cmd

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"gamehall/config"
	"gamehall/database"
	"gamehall/events"
	"gamehall/games"
	"gamehall/gateway"
	"gamehall/ledger"
	"gamehall/random"
	"gamehall/repository"
	"gamehall/router"
	"gamehall/session"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting gamehall engine...")

	cfg := config.Get()

	// Pick the ledger store: PostgreSQL when configured, in-memory otherwise
	var store ledger.Store
	var db *database.DB
	if cfg.DatabaseURL != "" {
		log.Println("Connecting to database...")
		var err error
		db, err = database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		store = repository.NewLedgerRepository(db, cfg.StartingBalance)
		log.Println("Database connection established successfully")
	} else {
		log.Println("No DATABASE_URL set, balances are in-memory and lost on restart")
		store = ledger.NewMemoryStore(cfg.StartingBalance)
	}

	eventBus := events.NewBus()
	ledgerService := ledger.New(store, eventBus)
	sessions := session.NewStore()

	var rng random.Source
	if cfg.RandomSeed != 0 {
		log.Printf("Using fixed random seed %d", cfg.RandomSeed)
		rng = random.New(cfg.RandomSeed)
	} else {
		rng = random.NewFromTime()
	}

	commandRouter := router.New(cfg.CommandTrigger, ledgerService)
	commandRouter.Register(games.NewRoulette(ledgerService, rng, eventBus))
	commandRouter.Register(games.NewBlackjack(ledgerService, sessions, rng, eventBus))
	commandRouter.Register(games.NewCoinFlip(ledgerService, rng, eventBus))
	commandRouter.Register(games.NewRockPaperScissors(ledgerService, sessions, rng, eventBus))
	commandRouter.Register(games.NewDiceRoll(ledgerService, rng, eventBus))
	commandRouter.Register(games.NewSlotMachine(ledgerService, rng, eventBus))
	log.Println("Game engines registered")

	log.Println("Connecting to chat gateway...")
	gw, err := gateway.New(gateway.Config{
		Token:             cfg.DiscordToken,
		AnnounceChannelID: cfg.DiscordChannelID,
		HighRollerEnabled: cfg.HighRollerEnabled,
	}, commandRouter, ledgerService, eventBus)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return err
	}
	log.Printf("Engine is running in %s mode...", cfg.Environment)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		<-groupCtx.Done()

		log.Println("Shutting down engine...")
		if err := gw.Close(); err != nil {
			log.Printf("Error closing chat gateway: %v", err)
		}
		if db != nil {
			log.Println("Closing database connection...")
			db.Close()
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}
	log.Println("Shutdown completed")
	return nil
}
