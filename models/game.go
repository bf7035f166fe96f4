package models

// GameKind identifies a game variant for session keying and events
type GameKind string

const (
	GameRoulette          GameKind = "roulette"
	GameBlackjack         GameKind = "blackjack"
	GameCoinFlip          GameKind = "coinflip"
	GameRockPaperScissors GameKind = "rockpaperscissors"
	GameDiceRoll          GameKind = "diceroll"
	GameSlotMachine       GameKind = "slotmachine"
)

// OutcomeKind tags how a round resolved
type OutcomeKind string

const (
	OutcomeWin       OutcomeKind = "win"
	OutcomeLoss      OutcomeKind = "loss"
	OutcomeTie       OutcomeKind = "tie"
	OutcomeBlackjack OutcomeKind = "blackjack"
)

// Outcome is the resolved result of a single round, carrying the signed
// ledger delta that was applied (0 for ties).
type Outcome struct {
	Kind   OutcomeKind
	Payout int64 // credited amount on win, 0 otherwise
	Risked int64 // debited amount on loss, 0 otherwise
}

// Delta returns the signed balance change this outcome produced.
func (o Outcome) Delta() int64 {
	return o.Payout - o.Risked
}
