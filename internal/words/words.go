// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the root word list from a configured file or the embedded default.
//   - Load the English dictionary used to decide whether a word is real.
//
// Word Lists:
//   - "start":      candidate root words, one per line.
//   - "dictionary": every word the game recognizes.
//
// Both files are normalized the same way: lines are trimmed and lowercased,
// blank lines and "#" comments are skipped.
//
// A configured file that does not exist is fatal for the caller: there is no
// built-in fallback root word.

package words

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/robalobadob/wordscramble/assets"
)

// ResourceNotFoundError reports a word list file that could not be found.
type ResourceNotFoundError struct {
	Path string
	Err  error
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("words: resource %q not found", e.Path)
}

func (e *ResourceNotFoundError) Unwrap() error { return e.Err }

// LoadStartWords returns the candidate root words.
// An empty path reads the embedded start.txt.
func LoadStartWords(path string) ([]string, error) {
	if path == "" {
		return assets.StartWords()
	}
	return readWordFile(path)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResourceNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	out, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}
