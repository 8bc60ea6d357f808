// Package api serves read-only simulation snapshots over HTTP and pushes
// turn digests to websocket observers. The server never mutates simulation
// state: it caches the latest turn snapshot delivered through the observer
// contract and serves that, so HTTP traffic never races the turn pipeline.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/talgya/realm-sim/internal/engine"
)

// Server exposes the observer API.
type Server struct {
	Hub  *Hub
	Port int

	mu     sync.RWMutex
	latest *engine.TurnSnapshot
}

// TurnCompleted implements engine.Observer: cache the snapshot and push the
// turn digest to websocket clients.
func (s *Server) TurnCompleted(snap *engine.TurnSnapshot) {
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()

	if s.Hub != nil {
		s.Hub.BroadcastJSON("turn_completed", snap)
	}
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/regions", s.handleRegions)
	mux.HandleFunc("/api/v1/region/", s.handleRegionDetail)
	mux.HandleFunc("/api/v1/nations", s.handleNations)
	mux.HandleFunc("/api/v1/trades", s.handleTrades)
	if s.Hub != nil {
		mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			s.Hub.ServeWS(w, r)
		})
	}

	addr := fmt.Sprintf(":%d", s.Port)
	go func() {
		slog.Info("observer API listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("observer API failed", "error", err)
		}
	}()
}

// snapshot returns the latest cached snapshot, or nil before the first turn.
func (s *Server) snapshot() *engine.TurnSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		writeJSON(w, http.StatusOK, map[string]any{"turn": 0, "ready": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"turn":  snap.Turn,
		"ready": true,
		"stats": snap.Stats,
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no turn processed yet")
		return
	}
	writeJSON(w, http.StatusOK, snap.Regions)
}

func (s *Server) handleRegionDetail(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no turn processed yet")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/v1/region/")
	for i := range snap.Regions {
		if snap.Regions[i].Name == name {
			writeJSON(w, http.StatusOK, snap.Regions[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("region %q not found", name))
}

func (s *Server) handleNations(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no turn processed yet")
		return
	}
	writeJSON(w, http.StatusOK, snap.Nations)
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no turn processed yet")
		return
	}
	trades := snap.Trades
	if trades == nil {
		trades = []*engine.TradeTransaction{}
	}
	writeJSON(w, http.StatusOK, trades)
}
