package models

import "time"

// PendingChallenge is a rock-paper-scissors invitation awaiting a response
// from a named opponent. Only one may be outstanding per challenger. The
// opponent-side resolution path does not exist yet; a challenge lives until
// the challenger plays a solo throw.
type PendingChallenge struct {
	ChallengerID string
	Choice       string
	TargetID     string
	Amount       int64
	CreatedAt    time.Time
}
