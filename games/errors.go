package games

// ErrorKind classifies command failures that are recovered locally by
// replying to the player. None of these mutate state or consume a draw.
type ErrorKind int

const (
	// KindMalformedCommand covers wrong arity and unparseable tokens
	KindMalformedCommand ErrorKind = iota
	// KindInvalidChoice covers arguments outside the game's valid set
	KindInvalidChoice
	// KindDuplicateChallenge covers a second outstanding RPS challenge
	KindDuplicateChallenge
)

// PlayerError is a user-recoverable command error. The router sends the
// message back to the issuing player and aborts only that command.
type PlayerError struct {
	Kind    ErrorKind
	Message string
}

func (e *PlayerError) Error() string {
	return e.Message
}

func malformed(message string) *PlayerError {
	return &PlayerError{Kind: KindMalformedCommand, Message: message}
}

func invalidChoice(message string) *PlayerError {
	return &PlayerError{Kind: KindInvalidChoice, Message: message}
}

func duplicateChallenge(message string) *PlayerError {
	return &PlayerError{Kind: KindDuplicateChallenge, Message: message}
}
