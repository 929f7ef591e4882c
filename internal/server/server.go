package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tartampluch/go-ageclock/internal/config"
	"github.com/tartampluch/go-ageclock/internal/engine"
)

// AgeServer exposes the calculation engine over HTTP. Every request is
// computed fresh from its query parameters; the engine is stateless, so no
// shared state or locking is needed.
type AgeServer struct {
	Port  string
	Clock engine.Clock
}

// New creates a new instance of the server.
func New(port string, clock engine.Clock) *AgeServer {
	if clock == nil {
		clock = engine.RealClock{}
	}
	return &AgeServer{
		Port:  port,
		Clock: clock,
	}
}

// Router builds the chi router. Exposed separately so tests can drive the
// handlers without binding a socket.
func (s *AgeServer) Router() chi.Router {
	r := chi.NewRouter()
	r.Get(config.RouteAge, s.handleAge)
	r.Get(config.RouteCalendar, s.handleCalendar)
	r.Get(config.RouteHealth, s.handleHealth)
	return r
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *AgeServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Router(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// snapshotFromQuery parses the birth/ref query parameters and runs the
// engine. The reference date falls back to the server clock's today.
func (s *AgeServer) snapshotFromQuery(r *http.Request) (*engine.AgeSnapshot, time.Time, error) {
	birthParam := r.URL.Query().Get(config.QueryParamBirth)
	if birthParam == "" {
		return nil, time.Time{}, fmt.Errorf("%s: %w", config.QueryParamBirth, engine.ErrInvalidDate)
	}

	birth, err := engine.ParseDate(birthParam)
	if err != nil {
		return nil, time.Time{}, err
	}

	ref := s.Clock.Now()
	if refParam := r.URL.Query().Get(config.QueryParamRef); refParam != "" {
		ref, err = engine.ParseDate(refParam)
		if err != nil {
			return nil, time.Time{}, err
		}
	}

	snap, err := engine.Calculate(birth, ref)
	if err != nil {
		return nil, time.Time{}, err
	}
	return snap, ref, nil
}

// handleAge serves the JSON snapshot.
func (s *AgeServer) handleAge(w http.ResponseWriter, r *http.Request) {
	snap, _, err := s.snapshotFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)

	if err := json.NewEncoder(w).Encode(toSnapshotResponse(snap)); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

// handleCalendar serves the iCalendar feed for the same query parameters.
// An optional name parameter labels the event summaries.
func (s *AgeServer) handleCalendar(w http.ResponseWriter, r *http.Request) {
	snap, ref, err := s.snapshotFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	name := r.URL.Query().Get(config.QueryParamName)
	if name == "" {
		name = config.FallbackName
	}

	data, err := engine.BuildCalendar(name, snap, ref)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)

	if _, err := w.Write(data); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

// handleHealth reports liveness.
func (s *AgeServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// writeError maps engine validation failures to a 400 with a typed JSON body.
func (s *AgeServer) writeError(w http.ResponseWriter, err error) {
	kind := config.KindBadRequest
	switch {
	case errors.Is(err, engine.ErrInvalidDate):
		kind = config.KindInvalidDate
	case errors.Is(err, engine.ErrInvalidRange):
		kind = config.KindInvalidRange
	}

	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), Kind: kind})
}
