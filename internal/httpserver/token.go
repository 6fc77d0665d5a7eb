// internal/httpserver/token.go
//
// Round tokens: HS256 JWTs carrying the caller's round id ("rid").
// Read from "Authorization: Bearer <token>" or the scramble_round cookie.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const roundCookieName = "scramble_round"

var errNoRoundClaim = errors.New("token has no round id")

// ctxRoundKey is the context key type for the caller's round ID.
type ctxRoundKey struct{}

// signRoundToken creates an HS256 JWT binding the holder to round id.
func (s *Server) signRoundToken(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.Token.TTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"rid": id,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.Token.Secret))
	return ss, exp, err
}

// parseRoundToken verifies tok and returns its round id.
// Extra parser options (e.g. jwt.WithoutClaimsValidation) are appended.
func (s *Server) parseRoundToken(tok string, opts ...jwt.ParserOption) (string, error) {
	claims := jwt.MapClaims{}
	opts = append([]jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}, opts...)
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token.Secret), nil
	}, opts...)
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	id, _ := claims["rid"].(string)
	if id == "" {
		return "", errNoRoundClaim
	}
	return id, nil
}

// setRoundCookie writes the round token cookie.
func (s *Server) setRoundCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := s.cfg.IsProduction()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     roundCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts the round token from the Authorization header or cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(roundCookieName); err == nil {
		return c.Value
	}
	return ""
}

// previousRoundID returns the round id of a correctly signed token, even an
// expired one, so a restart can still drop the round it replaces.
func (s *Server) previousRoundID(r *http.Request) (string, bool) {
	tok := bearerOrCookie(r)
	if tok == "" {
		return "", false
	}
	id, err := s.parseRoundToken(tok, jwt.WithoutClaimsValidation())
	return id, err == nil
}

// requireRound enforces a valid round token and puts the round id in the context.
func (s *Server) requireRound() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerOrCookie(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "no_round")
				return
			}
			id, err := s.parseRoundToken(tok)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxRoundKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roundIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxRoundKey{}).(string)
	return id
}
