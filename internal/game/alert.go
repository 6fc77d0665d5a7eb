// internal/game/alert.go
//
// Player-facing text for rejected submissions.

package game

import "fmt"

// Alert returns the title and message shown to the player for a rejection.
// rootWord is only used by ReasonNotDerivable.
func Alert(reason Reason, rootWord string) (title, message string) {
	switch reason {
	case ReasonTooShort:
		return "Word is too short", "Be more original. Lost 5 points."
	case ReasonAlreadyUsed:
		return "Word used already", "Be more original. Lost 5 points."
	case ReasonNotDerivable:
		return "Word not possible", fmt.Sprintf("You can't spell that word from '%s'! Lost 5 points.", rootWord)
	case ReasonNotAWord:
		return "Word not recognized", "You can't just make them up, you know! Lost 5 points."
	}
	return "", ""
}
