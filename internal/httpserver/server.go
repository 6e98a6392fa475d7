// internal/httpserver/server.go
//
// HTTP API for playing games over JSON.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, timeouts, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//
// Notes:
//   - Every game is bound to the token returned by /game/new; guesses and
//     reads require it as a bearer token.
//   - Games live in the session store, which serializes all mutation.
//   - The answer is only included in responses once the game is over.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/correctness"
	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

// Server bundles router, session store and word list.
type Server struct {
	r      *chi.Mux
	store  store.Store
	words  *words.List
	tokens *tokens
	salt   string
	now    func() time.Time

	fixedAnswers bool // honor newGameReq.Answer
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, wl *words.List, cfg config.Config) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		words: wl,
		salt:  cfg.DailySalt,
		now:   time.Now,

		fixedAnswers: cfg.AllowFixedAnswer,
	}
	s.tokens = &tokens{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL, now: func() time.Time { return s.now() }}

	// credentials-friendly CORS for the browser client
	corsMW := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.ClientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(requestIDLogger)                 // tag it with the request ID
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsMW.Handler)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-go",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}", s.handleGetGame)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Router exposes the internal router.
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Daily  bool   `json:"daily"`  // play the word of the day
	Answer string `json:"answer"` // fixed answer, test hook gated by AllowFixedAnswer
}
type newGameRes struct {
	GameID      string    `json:"gameId"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
	MaxAttempts int       `json:"maxAttempts"`
	WordLength  int       `json:"wordLength"`
	Date        string    `json:"date,omitempty"`
}

// handleNewGame creates a game and returns the token that owns it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	var date string
	secret := strings.ToLower(strings.TrimSpace(req.Answer))
	if secret != "" && !s.fixedAnswers {
		writeError(w, http.StatusForbidden, "fixed_answer_disabled", "choosing the answer is disabled")
		return
	}
	isDaily := req.Daily && secret == ""
	switch {
	case secret != "":
	case isDaily:
		now := s.now()
		date = daily.DateKey(now)
		secret = daily.Answer(s.words, now, s.salt)
	default:
		secret = s.words.Random()
	}

	g, err := game.New(secret)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer", game.Describe(err))
		return
	}
	sess, err := s.store.Create(r.Context(), g, isDaily, date)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create game")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	tok, exp, err := s.tokens.issue(sess.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed", "")
		return
	}

	hlog.FromRequest(r).Debug().Str("gameId", sess.ID).Bool("daily", isDaily).Msg("game created")
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:      sess.ID,
		Token:       tok,
		ExpiresAt:   exp,
		MaxAttempts: game.MaxAttempts,
		WordLength:  words.Length,
		Date:        date,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks     correctness.Result `json:"marks"`
	State     game.State         `json:"state"`
	Remaining int                `json:"remaining"`
	Answer    string             `json:"answer,omitempty"`
}

// handleGuess applies a guess under the store's exclusive lock.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if err := s.tokens.verify(bearer(r), req.GameID); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	word := strings.ToLower(strings.TrimSpace(req.Guess))
	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(sess *store.Session) error {
		g := sess.Game
		if !g.State().Terminal() && words.Validate(word) == nil && !s.words.IsAllowed(word) {
			return words.ErrNotInWordList
		}
		guess, err := g.Play(word)
		if err != nil {
			return err
		}
		res = guessRes{Marks: guess.Result, State: g.State(), Remaining: g.Remaining()}
		if g.State().Terminal() {
			res.Answer = g.Secret()
		}
		return nil
	})
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, game.Describe(err))
		return
	}

	hlog.FromRequest(r).Debug().
		Str("gameId", req.GameID).
		Stringer("state", res.State).
		Int("remaining", res.Remaining).
		Msg("guess applied")
	writeJSON(w, http.StatusOK, res)
}

// gameRes is the payload for GET /game/{id}.
type gameRes struct {
	GameID    string       `json:"gameId"`
	State     game.State   `json:"state"`
	Remaining int          `json:"remaining"`
	Guesses   []game.Guess `json:"guesses"`
	Daily     bool         `json:"daily"`
	Date      string       `json:"date,omitempty"`
	Answer    string       `json:"answer,omitempty"`
}

// handleGetGame returns the board so a client can resume.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.tokens.verify(bearer(r), id); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}

	var res gameRes
	err := s.store.View(r.Context(), id, func(sess *store.Session) error {
		g := sess.Game
		res = gameRes{
			GameID:    sess.ID,
			State:     g.State(),
			Remaining: g.Remaining(),
			Guesses:   g.History(),
			Daily:     sess.Daily,
			Date:      sess.Date,
		}
		if g.State().Terminal() {
			res.Answer = g.Secret()
		}
		return nil
	})
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, game.Describe(err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------ helpers ------------------------------------

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorRes{Error: code, Message: msg})
}

// statusFor maps engine and store errors to an HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrGameWon):
		return http.StatusConflict, "game_won"
	case errors.Is(err, game.ErrGameLost):
		return http.StatusConflict, "game_lost"
	case errors.Is(err, game.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_guess"
	case errors.Is(err, words.ErrNotInWordList):
		return http.StatusUnprocessableEntity, "not_in_word_list"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	}
	return http.StatusInternalServerError, "internal"
}
