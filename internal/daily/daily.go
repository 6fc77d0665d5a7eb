// internal/daily/daily.go
//
// Daily root word selection. Everyone playing on the same UTC day with the
// same salt gets the same root word; the salt keeps tomorrow's word from
// being computed by clients.

// Package daily picks the same root word for everyone on a given UTC day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker selects the day's word; it satisfies game.Source.
type Picker struct {
	Date time.Time
	Salt string
}

// IntN maps HMAC-SHA256(Salt, DateKey(Date)) into [0, n).
// Non-positive n yields 0.
func (p Picker) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(p.Salt))
	mac.Write([]byte(DateKey(p.Date)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}
