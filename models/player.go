package models

import "time"

// Player identifies a connected player issuing commands. The ID is the
// host's stable identifier; Name is only used for display.
type Player struct {
	ID   string
	Name string
}

// LedgerEntry represents one player's row in the balance ledger
type LedgerEntry struct {
	PlayerID  string    `db:"player_id"`
	Name      string    `db:"name"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}
