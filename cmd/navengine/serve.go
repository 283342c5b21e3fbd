package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/aeronav/wpnav/internal/session"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sample mission behind an HTTP status endpoint and websocket feed",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8980", "address to listen on")
}

type statusServer struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	last    session.Transition
}

func newStatusServer() *statusServer {
	return &statusServer{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

func (s *statusServer) broadcast(tr session.Transition) {
	s.mu.Lock()
	s.last = tr
	clients := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.WriteJSON(tr); err != nil {
			s.mu.Lock()
			delete(s.clients, c)
			s.mu.Unlock()
			c.Close()
		}
	}
}

func (s *statusServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	tr := s.last
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tr)
}

func (s *statusServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		globalLogger.Warnf("websocket upgrade failed: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// The feed is push-only; block here until the client disconnects so
	// the connection's read deadline enforcement (default none) doesn't
	// matter for this demonstration server.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	eng, dyn, _ := newSession(sampleMission())

	srv := newStatusServer()

	r := mux.NewRouter()
	r.HandleFunc("/status", srv.handleStatus).Methods("GET")
	r.HandleFunc("/ws", srv.handleWS)

	go func() {
		ticker := time.NewTicker(tickPeriodMillis())
		defer ticker.Stop()
		for range ticker.C {
			if eng.Done() {
				return
			}
			tr, err := eng.Tick(ctx)
			if err != nil {
				globalLogger.Errorf("tick failed: %v", err)
				return
			}
			syncDynamicsTarget(dyn, tr)
			dyn.Step()
			srv.broadcast(tr)
		}
	}()

	fmt.Printf("navengine serve listening on %s (GET /status, ws /ws)\n", serveAddr)
	return http.ListenAndServe(serveAddr, r)
}

func tickPeriodMillis() time.Duration {
	return durationFromSeconds(tickPeriodSeconds)
}
