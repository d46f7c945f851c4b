// Package server exposes a play session over websockets. Every connected
// client receives a full state snapshot after each successful mutation and
// may submit moves of its own; the session's lock keeps them serialized.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rollcube/rollcube"
	"github.com/rollcube/rollcube/internal/game"
)

// Command is a client request frame.
type Command struct {
	Op  string `json:"op"` // "move", "roll" or "restart"
	Row int    `json:"row,omitempty"`
	Col int    `json:"col,omitempty"`
	Dir string `json:"dir,omitempty"`
}

// Snapshot is the full puzzle state sent to clients. It carries everything
// a renderer needs; clients never mutate it.
type Snapshot struct {
	Type    string                  `json:"type"` // always "state"
	State   string                  `json:"state"`
	Level   string                  `json:"level"`
	Side    int                     `json:"side"`
	Row     int                     `json:"row"`
	Col     int                     `json:"col"`
	Moves   int                     `json:"moves"`
	Painted [][]bool                `json:"painted"`
	Faces   [rollcube.NumFaces]bool `json:"faces"`
	Won     bool                    `json:"won"`
}

// ErrorFrame reports a rejected command to the client that sent it. The
// session state is unchanged when one arrives.
type ErrorFrame struct {
	Type  string `json:"type"` // always "error"
	Error string `json:"error"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes
}

func (c *client) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Server broadcasts a session's state to websocket clients and applies the
// commands they send.
type Server struct {
	session  *game.Session
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// New creates a server around session and takes over its change callback
// for broadcasting.
func New(session *game.Session) *Server {
	s := &Server{
		session: session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
	session.SetChangeCallback(s.broadcast)
	return s
}

// Handler returns the HTTP handler: GET /state for a one-shot snapshot,
// /ws for the live connection.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleState(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(s.snapshot())
}

func (s *Server) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		conn.Close()
	}()

	// New clients get the current state immediately.
	if err := c.send(s.snapshot()); err != nil {
		return
	}

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		if err := s.dispatch(cmd); err != nil {
			if sendErr := c.send(ErrorFrame{Type: "error", Error: err.Error()}); sendErr != nil {
				return
			}
		}
	}
}

func (s *Server) dispatch(cmd Command) error {
	switch cmd.Op {
	case "move":
		return s.session.MoveTo(cmd.Row, cmd.Col)
	case "roll":
		d, err := rollcube.ParseDirection(cmd.Dir)
		if err != nil {
			return err
		}
		return s.session.Roll(d)
	case "restart":
		return s.session.Restart()
	default:
		return errors.New("server: unknown op " + cmd.Op)
	}
}

func (s *Server) snapshot() Snapshot {
	snap := Snapshot{
		Type:  "state",
		State: s.session.State().String(),
		Level: s.session.LevelName(),
	}

	p := s.session.Snapshot()
	if p == nil {
		return snap
	}

	snap.Side = p.Side()
	snap.Row = p.CubeRow()
	snap.Col = p.CubeCol()
	snap.Moves = p.Moves()
	snap.Won = p.AllFacesPainted()
	snap.Painted = make([][]bool, p.Side())
	for r := range snap.Painted {
		snap.Painted[r] = make([]bool, p.Side())
		for c := range snap.Painted[r] {
			snap.Painted[r][c] = p.IsPaintedSquare(r, c)
		}
	}
	for f := rollcube.Face(0); f < rollcube.NumFaces; f++ {
		snap.Faces[f] = p.IsPaintedFace(f)
	}
	return snap
}

func (s *Server) broadcast() {
	snap := s.snapshot()

	s.mu.Lock()
	targets := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	for _, c := range targets {
		if err := c.send(snap); err != nil {
			s.mu.Lock()
			delete(s.clients, c)
			s.mu.Unlock()
			c.conn.Close()
		}
	}
}
