package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/status"
)

// Spectator routes
const (
	URIWebSocket = "/ws"
	URIState     = "/state"
	URIStatus    = "/status"
)

// Server exposes the hub and telemetry over HTTP
type Server struct {
	router   *way.Router
	hub      *Hub
	registry *status.Registry
	log      logrus.FieldLogger

	http     *http.Server
	listener net.Listener
}

// NewServer wires routes for hub and registry
func NewServer(hub *Hub, reg *status.Registry, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{
		hub:      hub,
		registry: reg,
		log:      log.WithField("component", "spectator"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIWebSocket, s.hub.ServeWS)
	s.router.HandleFunc("GET", URIState, s.handleState)
	s.router.HandleFunc("GET", URIStatus, s.handleStatus)
}

// Handler returns the route table
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr and serves until ctx ends
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectator listen %s: %w", addr, err)
	}
	s.listener = ln
	s.http = &http.Server{Handler: s.router}

	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("spectator server stopped")
		}
	})
	core.Go(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constant.SpectatorShutdownTimeout)
		defer cancel()
		s.http.Shutdown(shutdownCtx)
	})

	s.log.WithField("addr", ln.Addr().String()).Info("spectator feed listening")
	return nil
}

// Addr returns the bound address; empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	f, ok := s.hub.Latest()
	if !ok {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, f)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.registry.Snapshot())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
