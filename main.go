// main.go
//
// Entry point for the word scramble server.
// Startup order: .env → config → logging → word lists → dictionary → HTTP.
// A missing or empty root word list aborts startup; there is no default round.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	setupLogging(cfg.Logging)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("wordscramble server exited")
	}
}

// run owns every resource so deferred cleanup happens before main exits.
func run(cfg *config.Config) error {
	startWords, err := words.LoadStartWords(cfg.Words.StartFile)
	if err != nil {
		return fmt.Errorf("load start words: %w", err)
	}
	if len(game.Candidates(startWords)) == 0 {
		return fmt.Errorf("start words %q: %w", cfg.Words.StartFile, game.ErrEmptyWordList)
	}

	dict, closeDict, err := openDictionary(cfg.Words)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	defer closeDict()

	srv := httpserver.New(cfg, store.NewMemoryStore(cfg.Token.TTL), startWords, dict)
	log.Info().
		Str("addr", cfg.Addr()).
		Int("start_words", len(startWords)).
		Int("dictionary", dict.Len()).
		Str("backend", cfg.Words.Backend).
		Msg("starting wordscramble server")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-quit:
	}

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	return nil
}

// setupLogging configures the global zerolog logger.
func setupLogging(c config.LoggingConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if strings.EqualFold(c.Format, "console") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// openDictionary builds the configured dictionary backend.
func openDictionary(c config.WordsConfig) (httpserver.Dictionary, func(), error) {
	list, err := words.LoadDictionaryWords(c.DictionaryFile)
	if err != nil {
		return nil, nil, err
	}
	switch c.Backend {
	case "sqlite":
		d, err := words.OpenSQLDictionary(context.Background(), c.DatabasePath, list)
		if err != nil {
			return nil, nil, err
		}
		return d, func() { _ = d.Close() }, nil
	case "memory", "":
		return words.NewDictionary(list), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown DICTIONARY_BACKEND %q", c.Backend)
	}
}
