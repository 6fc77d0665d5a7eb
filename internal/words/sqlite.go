// internal/words/sqlite.go
//
// SQLite dictionary backend. The schema comes from assets/sql migrations and
// the table is seeded from the word list only when empty. Lookup failures
// are logged and count as unknown words.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/db"
)

// SQLDictionary is a dictionary backed by a SQLite file.
// It suits word lists too large to keep resident in every process.
type SQLDictionary struct {
	db *sql.DB
}

// OpenSQLDictionary opens dsn, applies the embedded migrations and, if the
// dictionary table is empty, fills it with seed in a single transaction.
func OpenSQLDictionary(ctx context.Context, dsn string, seed []string) (*SQLDictionary, error) {
	conn, err := db.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("words: open dictionary db: %w", err)
	}
	if err := db.Migrate(conn, assets.Migrations()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("words: migrate dictionary db: %w", err)
	}
	d := &SQLDictionary{db: conn}

	n, err := d.count(ctx)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if n == 0 && len(seed) > 0 {
		if err := d.seed(ctx, seed); err != nil {
			_ = conn.Close()
			return nil, err
		}
		log.Info().Int("words", len(seed)).Str("dsn", dsn).Msg("seeded dictionary db")
	}
	return d, nil
}

func (d *SQLDictionary) seed(ctx context.Context, list []string) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary (word) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("words: prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("words: seed %q: %w", w, err)
		}
	}
	return tx.Commit()
}

func (d *SQLDictionary) count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM dictionary`).Scan(&n); err != nil {
		return 0, fmt.Errorf("words: count dictionary: %w", err)
	}
	return n, nil
}

// IsValidWord reports whether w is in the dictionary table.
// Lookup failures are logged and treated as "not a word".
func (d *SQLDictionary) IsValidWord(w string) bool {
	var one int
	err := d.db.QueryRow(`SELECT 1 FROM dictionary WHERE word=?`, strings.ToLower(w)).Scan(&one)
	switch {
	case err == nil:
		return true
	case err == sql.ErrNoRows:
		return false
	default:
		log.Warn().Err(err).Str("word", w).Msg("dictionary lookup")
		return false
	}
}

// Len returns the number of rows in the dictionary table, or 0 on error.
func (d *SQLDictionary) Len() int {
	n, err := d.count(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("dictionary count")
		return 0
	}
	return n
}

// Close releases the database handle.
func (d *SQLDictionary) Close() error { return d.db.Close() }
