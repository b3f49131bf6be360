package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/sylk/internal/common/clock"
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/services/card"
	"github.com/KirkDiggler/sylk/internal/services/ladder"
	"github.com/KirkDiggler/sylk/internal/services/messaging"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/KirkDiggler/sylk/internal/services/seat"
	"github.com/charmbracelet/log"
	"github.com/julienschmidt/httprouter"
)

const timeout = 10 * time.Second

// Config holds configuration for the web server
type Config struct {
	Bind    string
	Port    int
	Version string

	// RosterID is the roster the table plays with, models.DefaultRosterID when empty
	RosterID string

	// Service dependencies
	RosterService    roster.Service
	MessagingService messaging.Service
	Random           random.Source
	Clock            clock.Clock

	// Roulette timing, roulette.DefaultTiming when zero
	Timing roulette.Timing

	Logger *log.Logger
}

// Server serves the JSON API and the roulette event stream
type Server struct {
	cfg      *Config
	rosterID string
	router   *httprouter.Router
	session  *session
	hub      *hub
	logger   *log.Logger
}

// NewServer creates a server with an empty table. Call Load to seat the roster.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RosterService == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("web")

	rosterID := cfg.RosterID
	if rosterID == "" {
		rosterID = models.DefaultRosterID
	}

	h := newHub(logger)

	ladderSession, err := ladder.NewSession(&ladder.Config{Random: cfg.Random, Logger: logger})
	if err != nil {
		return nil, err
	}

	deck, err := card.NewDeck(&card.Config{Random: cfg.Random, Logger: logger})
	if err != nil {
		return nil, err
	}

	planner, err := seat.NewPlanner(&seat.Config{Random: cfg.Random, Logger: logger})
	if err != nil {
		return nil, err
	}

	wheel, err := roulette.NewGame(&roulette.Config{
		Random:         cfg.Random,
		Clock:          cfg.Clock,
		Logger:         logger,
		Timing:         cfg.Timing,
		AutoDirectPick: true,
		Listener:       h.broadcast,
	})
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		rosterID: rosterID,
		session: &session{
			ladder:  ladderSession,
			deck:    deck,
			planner: planner,
			wheel:   wheel,
		},
		hub:    h,
		logger: logger,
	}
	s.router = s.routes()

	return s, nil
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Load reads the roster and deals it to every game
func (s *Server) Load(ctx context.Context) error {
	out, err := s.cfg.RosterService.ListMembers(ctx, &roster.ListMembersInput{RosterID: s.rosterID})
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	s.session.reload(out.Members)
	return nil
}

// Serve listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(s.cfg.Bind, strconv.Itoa(s.cfg.Port)),
		Handler:           s.router,
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", "http://"+srv.Addr+"/")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func securityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
	w.Header().Set("Cross-Origin-Resource-Policy", "same-site")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'self'")
}

func (s *Server) routes() *httprouter.Router {
	mux := httprouter.New()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		s.logger.Error("Handler panic", "path", r.URL.Path, "panic", i)
		writeJSON(w, http.StatusInternalServerError, errorBody{Title: "Error", Message: "An error has occurred. Please try again."})
	}

	mux.GET("/healthz", s.serveHealthCheck)
	mux.GET("/version", s.serveVersion)

	mux.GET("/api/members", s.listMembers)
	mux.POST("/api/members", s.addMember)
	mux.DELETE("/api/members", s.resetMembers)
	mux.DELETE("/api/members/:id", s.removeMember)

	mux.GET("/api/ladder", s.ladderStatus)
	mux.PUT("/api/ladder/rewards/:column", s.setLadderReward)
	mux.POST("/api/ladder/start", s.startLadder)
	mux.GET("/api/ladder/trace/:column", s.traceLadder)
	mux.GET("/api/ladder/results", s.ladderResults)
	mux.POST("/api/ladder/reset", s.resetLadder)

	mux.GET("/api/cards", s.cardStatus)
	mux.POST("/api/cards/reveal/:id", s.revealCard)
	mux.POST("/api/cards/reveal-all", s.revealAllCards)
	mux.POST("/api/cards/reshuffle", s.reshuffleCards)
	mux.PUT("/api/cards/teams", s.setCardTeams)
	mux.GET("/api/cards/results", s.cardResults)

	mux.GET("/api/seats", s.seatStatus)
	mux.PUT("/api/seats/settings", s.configureSeats)
	mux.POST("/api/seats/assign", s.assignSeats)
	mux.POST("/api/seats/reset", s.resetSeats)

	mux.GET("/api/roulette", s.rouletteStatus)
	mux.POST("/api/roulette/spin", s.spinRoulette)
	mux.POST("/api/roulette/direct-pick", s.directPickRoulette)
	mux.POST("/api/roulette/reset", s.resetRoulette)
	mux.PUT("/api/roulette/teams", s.setRouletteTeams)
	mux.GET("/api/roulette/events", s.rouletteEvents)

	return mux
}

func (s *Server) serveHealthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	securityHeaders(w)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) serveVersion(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	securityHeaders(w)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "sylk v"+s.cfg.Version+"\n")
}
