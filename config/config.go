package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken     string
	DiscordChannelID string // channel for high roller announcements

	// Database configuration; empty means run with the in-memory ledger
	DatabaseURL string

	// Engine configuration
	CommandTrigger  string // chat prefix that marks a command
	StartingBalance int64  // balance a player starts with on first play
	RandomSeed      int64  // 0 seeds from the current time

	// High roller announcements
	HighRollerEnabled bool

	// Environment: "development", "production", or "test"
	Environment string
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),

		CommandTrigger:  "!",
		StartingBalance: 0,

		HighRollerEnabled: os.Getenv("HIGH_ROLLER_ENABLED") == "true",

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if trigger := os.Getenv("COMMAND_TRIGGER"); trigger != "" {
		config.CommandTrigger = trigger
	}
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}
	if seed := os.Getenv("RANDOM_SEED"); seed != "" {
		if parsedSeed, err := strconv.ParseInt(seed, 10, 64); err == nil {
			config.RandomSeed = parsedSeed
		}
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	return config, nil
}
