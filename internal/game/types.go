// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Round: state for a single round (root word, used words, score).
//   - Reason: why a submission was rejected.
//   - Result: outcome of a single submission.
//   - Dictionary / Source: capabilities injected into the engine.

package game

import "errors"

// ErrEmptyWordList is returned by StartRound when no usable root word exists.
// It is a configuration error: there is no round to fall back to.
var ErrEmptyWordList = errors.New("game: word list is empty")

const (
	// MinWordLength is the shortest submission that is considered at all.
	MinWordLength = 3
	// Penalty is subtracted from the score on every rejected submission.
	Penalty = 5
)

// Reason identifies the first validation rule a submission failed.
type Reason string

const (
	ReasonTooShort     Reason = "too_short"
	ReasonAlreadyUsed  Reason = "already_used"
	ReasonNotDerivable Reason = "not_derivable"
	ReasonNotAWord     Reason = "not_a_word"
)

// Round holds the state of a single game round.
type Round struct {
	ID        string   // Unique round identifier (random hex string).
	RootWord  string   // Word the player derives submissions from (lowercase).
	UsedWords []string // Accepted words, most recent first.
	Score     int      // Running score; may go negative.
}

// Result is the outcome of Submit. Exactly one of Accepted or Reason is set.
type Result struct {
	Accepted bool
	Word     string // normalized submission
	Points   int    // points awarded on acceptance
	Reason   Reason // set on rejection
}

// Accepted builds an accepted Result.
func Accepted(word string, points int) Result {
	return Result{Accepted: true, Word: word, Points: points}
}

// Rejected builds a rejected Result.
func Rejected(word string, reason Reason) Result {
	return Result{Word: word, Reason: reason}
}

// Dictionary decides whether a normalized word is a real word.
type Dictionary interface {
	IsValidWord(word string) bool
}

// Source picks an index in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}
