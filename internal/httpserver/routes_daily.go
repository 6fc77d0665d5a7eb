// internal/httpserver/routes_daily.go
//
// HTTP route for the daily round.
//   - POST /daily/new → start a round whose root word is shared by every
//     player on the current UTC day.
//
// The round itself behaves exactly like a normal round; only the root word
// selection differs. Word selection is HMAC(salt, date) over the start list.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordscramble/internal/daily"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleNewDaily)
	})
}

// handleNewDaily starts today's round.
func (s *Server) handleNewDaily(w http.ResponseWriter, r *http.Request) {
	p := daily.Picker{Date: s.now().UTC(), Salt: s.cfg.Words.DailySalt}
	rd, ok := s.startRound(w, r, p)
	if !ok {
		return
	}
	s.respondNewRound(w, rd, daily.DateKey(p.Date))
}
