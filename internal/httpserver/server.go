// internal/httpserver/server.go
//
// HTTP server wiring for the word scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints: POST /round/new, GET /round, POST /round/submit.
//   - Daily round: POST /daily/new (mounted from routes_daily.go).
//
// Notes:
//   - Each client owns exactly one round, identified by a signed round token
//     (cookie or bearer). Starting a new round replaces the previous one.
//   - Rejected submissions are ordinary 200 responses; only malformed
//     requests and missing rounds produce error statuses.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// Dictionary is the lookup the server validates against.
type Dictionary interface {
	game.Dictionary
	Len() int
}

// Server bundles router, round store, word list and dictionary.
type Server struct {
	r          *chi.Mux
	http       *http.Server
	cfg        *config.Config
	store      store.Store
	startWords []string
	dict       Dictionary
	now        func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, st store.Store, startWords []string, dict Dictionary) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		cfg:        cfg,
		store:      st,
		startWords: startWords,
		dict:       dict,
		now:        time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one log line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.Server.ClientOrigin))   // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordscramble-go","endpoints":["/health","POST /round/new","GET /round","POST /round/submit","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{
			"start":      len(s.startWords),
			"dictionary": s.dict.Len(),
			"rounds":     s.store.Len(),
		})
	})

	// --- rounds ---
	s.r.Post("/round/new", s.handleNewRound)
	s.r.With(s.requireRound()).Get("/round", s.handleGetRound)
	s.r.With(s.requireRound()).Post("/round/submit", s.handleSubmit)
	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins serving HTTP on the configured address.
func (s *Server) Start() error { return s.http.ListenAndServe() }

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error { return s.http.Shutdown(ctx) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ ROUNDS -------------------------------------

// roundView is the client-facing shape of a round.
type roundView struct {
	RoundID   string   `json:"roundId"`
	RootWord  string   `json:"rootWord"`
	UsedWords []string `json:"usedWords"`
	Score     int      `json:"score"`
}

func viewOf(r *game.Round) roundView {
	used := append([]string{}, r.UsedWords...)
	return roundView{RoundID: r.ID, RootWord: r.RootWord, UsedWords: used, Score: r.Score}
}

// newRoundRes is returned by /round/new and /daily/new.
type newRoundRes struct {
	roundView
	Token string `json:"token"`
	Date  string `json:"date,omitempty"`
}

// handleNewRound starts a round with a random root word.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	rd, ok := s.startRound(w, r, game.CryptoSource{})
	if !ok {
		return
	}
	s.respondNewRound(w, rd, "")
}

// startRound creates and stores a round chosen by src, replacing the
// caller's previous round. It writes the error response itself on failure.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, src game.Source) (*game.Round, bool) {
	rd, err := game.StartRound(s.startWords, src)
	if err != nil {
		log.Error().Err(err).Msg("start round")
		writeError(w, http.StatusInternalServerError, "no_root_words")
		return nil, false
	}
	if prev, ok := s.previousRoundID(r); ok {
		_ = s.store.Delete(r.Context(), prev)
	}
	if err := s.store.Save(r.Context(), rd); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return nil, false
	}
	log.Debug().Str("round", rd.ID).Str("root", rd.RootWord).Msg("round started")
	return rd, true
}

func (s *Server) respondNewRound(w http.ResponseWriter, rd *game.Round, date string) {
	tok, exp, err := s.signRoundToken(rd.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setRoundCookie(w, tok, exp)
	writeJSON(w, http.StatusOK, newRoundRes{roundView: viewOf(rd), Token: tok, Date: date})
}

// handleGetRound returns the caller's current round.
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	rd, err := s.store.Get(r.Context(), roundIDFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusNotFound, "round_not_found")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(rd))
}

// maxSubmitBytes bounds the /round/submit request body.
const maxSubmitBytes = 1 << 12

// submitReq/Res payloads for POST /round/submit.
type submitReq struct {
	Word string `json:"word"`
}
type submitRes struct {
	Accepted bool        `json:"accepted"`
	Word     string      `json:"word"`
	Points   int         `json:"points,omitempty"`
	Reason   game.Reason `json:"reason,omitempty"`
	Title    string      `json:"title,omitempty"`
	Message  string      `json:"message,omitempty"`
	Round    roundView   `json:"round"`
}

// handleSubmit applies one word to the caller's round.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	id := roundIDFrom(r.Context())
	var res submitRes
	err := s.store.Update(r.Context(), id, func(rd *game.Round) error {
		out := rd.Submit(req.Word, s.dict)
		res = submitRes{
			Accepted: out.Accepted,
			Word:     out.Word,
			Points:   out.Points,
			Reason:   out.Reason,
			Round:    viewOf(rd),
		}
		if !out.Accepted {
			res.Title, res.Message = game.Alert(out.Reason, rd.RootWord)
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "round_not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("round", id).Msg("submit")
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	log.Debug().
		Str("round", id).
		Str("word", res.Word).
		Bool("accepted", res.Accepted).
		Str("reason", string(res.Reason)).
		Int("score", res.Round.Score).
		Msg("submission")
	writeJSON(w, http.StatusOK, res)
}
