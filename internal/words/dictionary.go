// internal/words/dictionary.go
//
// In-memory dictionary backend. A nil *Dictionary rejects every word.

package words

import (
	"strings"

	"github.com/robalobadob/wordscramble/assets"
)

// Dictionary is an in-memory set of recognized words.
type Dictionary struct {
	set map[string]struct{}
}

// NewDictionary builds a Dictionary from a word list.
func NewDictionary(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			d.set[w] = struct{}{}
		}
	}
	return d
}

// LoadDictionary reads a dictionary file.
// An empty path reads the embedded dictionary.txt.
func LoadDictionary(path string) (*Dictionary, error) {
	list, err := LoadDictionaryWords(path)
	if err != nil {
		return nil, err
	}
	return NewDictionary(list), nil
}

// LoadDictionaryWords returns the raw dictionary list, used to seed the
// SQLite backend.
func LoadDictionaryWords(path string) ([]string, error) {
	if path == "" {
		return assets.DictionaryWords()
	}
	return readWordFile(path)
}

// IsValidWord reports whether w is in the dictionary (case-insensitive).
func (d *Dictionary) IsValidWord(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.set)
}
