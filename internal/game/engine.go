// internal/game/engine.go
//
// Core game engine for a single word scramble round.
// Responsibilities:
//   - Start rounds from a word list with a pluggable random source.
//   - Validate submissions in a fixed order (length, originality,
//     derivability, dictionary) and apply scoring.
//
// Notes:
//   - The word list and dictionary come from the words package; the engine
//     only sees them through []string and the Dictionary interface.
//   - Submit never returns an error: every rejection is a Result value.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
	"unicode/utf8"
)

// CryptoSource draws indexes from crypto/rand.
type CryptoSource struct{}

// IntN returns a uniformly random index in [0, n).
func (CryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// Candidates returns the usable root words of wordList: trimmed, lowercased,
// blanks dropped. StartRound fails exactly when this is empty.
func Candidates(wordList []string) []string {
	out := make([]string, 0, len(wordList))
	for _, w := range wordList {
		if w = normalize(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// StartRound constructs a fresh round with a root word chosen by src.
// Blank entries in wordList are ignored; if nothing is left the call fails
// with ErrEmptyWordList. A nil src means CryptoSource.
func StartRound(wordList []string, src Source) (*Round, error) {
	candidates := Candidates(wordList)
	if len(candidates) == 0 {
		return nil, ErrEmptyWordList
	}
	if src == nil {
		src = CryptoSource{}
	}
	return &Round{
		ID:        randomID(),
		RootWord:  candidates[src.IntN(len(candidates))],
		UsedWords: []string{},
	}, nil
}

// Submit validates raw against the round and applies the score change.
//
// Validation order (first failure wins):
//  1. at least MinWordLength letters
//  2. not already used this round
//  3. spellable from the root word's letters
//  4. accepted by dict
//
// Any rejection costs Penalty points. An accepted word is prepended to
// UsedWords and scores its length.
func (r *Round) Submit(raw string, dict Dictionary) Result {
	word := normalize(raw)
	n := utf8.RuneCountInString(word)

	var reason Reason
	switch {
	case n < MinWordLength:
		reason = ReasonTooShort
	case !r.isOriginal(word):
		reason = ReasonAlreadyUsed
	case !IsDerivable(word, r.RootWord):
		reason = ReasonNotDerivable
	case dict == nil || !dict.IsValidWord(word):
		reason = ReasonNotAWord
	}
	if reason != "" {
		r.Score -= Penalty
		return Rejected(word, reason)
	}

	r.UsedWords = append([]string{word}, r.UsedWords...)
	r.Score += n
	return Accepted(word, n)
}

// isOriginal reports whether word has not been accepted yet this round.
func (r *Round) isOriginal(word string) bool {
	for _, w := range r.UsedWords {
		if w == word {
			return false
		}
	}
	return true
}

// IsDerivable reports whether word can be spelled from root's letters,
// using each letter of root at most as often as it appears there.
// The comparison is case-insensitive. A word equal to root is derivable.
func IsDerivable(word, root string) bool {
	pool := []rune(strings.ToLower(root))
	for _, c := range strings.ToLower(word) {
		i := indexRune(pool, c)
		if i < 0 {
			return false
		}
		pool = append(pool[:i], pool[i+1:]...)
	}
	return true
}

func indexRune(rs []rune, c rune) int {
	for i, r := range rs {
		if r == c {
			return i
		}
	}
	return -1
}

// normalize trims surrounding whitespace and lowercases.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
