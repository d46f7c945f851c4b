package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollcube/rollcube/internal/game"
	"github.com/rollcube/rollcube/internal/level"
)

func startServer(t *testing.T) (*game.Session, *httptest.Server) {
	t.Helper()

	lvl, err := level.Parse([]byte(".*..\nc...\n....\n....\n"))
	require.NoError(t, err)
	lvl.Name = "ws-test"

	session := game.NewSession(nil)
	srv := New(session)
	session.Start(lvl)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return session, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) Snapshot {
	t.Helper()
	var snap Snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	require.Equal(t, "state", snap.Type)
	return snap
}

func TestStateEndpoint(t *testing.T) {
	_, ts := startServer(t)

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "state", snap.Type)
	assert.Equal(t, "playing", snap.State)
	assert.Equal(t, "ws-test", snap.Level)
	assert.Equal(t, 4, snap.Side)
	assert.Equal(t, 1, snap.Row)
	assert.Equal(t, 0, snap.Col)
	assert.True(t, snap.Painted[0][1])
}

func TestClientReceivesInitialSnapshot(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	snap := readSnapshot(t, conn)
	assert.Equal(t, 0, snap.Moves)
	assert.False(t, snap.Won)
}

func TestRollCommandBroadcastsNewState(t *testing.T) {
	session, ts := startServer(t)
	conn := dial(t, ts)
	readSnapshot(t, conn) // initial

	require.NoError(t, conn.WriteJSON(Command{Op: "roll", Dir: "east"}))

	snap := readSnapshot(t, conn)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, 1, snap.Row)
	assert.Equal(t, 1, snap.Col)
	assert.Equal(t, 1, session.Moves())
}

func TestMoveCommand(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)
	readSnapshot(t, conn)

	require.NoError(t, conn.WriteJSON(Command{Op: "move", Row: 0, Col: 0}))

	snap := readSnapshot(t, conn)
	assert.Equal(t, 0, snap.Row)
	assert.Equal(t, 0, snap.Col)
}

func TestInvalidCommandsGetErrorFrames(t *testing.T) {
	session, ts := startServer(t)
	conn := dial(t, ts)
	readSnapshot(t, conn)

	tests := []Command{
		{Op: "move", Row: 3, Col: 3},     // not adjacent
		{Op: "roll", Dir: "sideways"},    // unparseable direction
		{Op: "teleport", Row: 0, Col: 0}, // unknown op
	}
	for _, cmd := range tests {
		require.NoError(t, conn.WriteJSON(cmd))

		var frame ErrorFrame
		require.NoError(t, conn.ReadJSON(&frame))
		assert.Equal(t, "error", frame.Type)
		assert.NotEmpty(t, frame.Error)
	}
	assert.Equal(t, 0, session.Moves())
}

func TestRestartCommand(t *testing.T) {
	session, ts := startServer(t)
	conn := dial(t, ts)
	readSnapshot(t, conn)

	require.NoError(t, conn.WriteJSON(Command{Op: "roll", Dir: "east"}))
	readSnapshot(t, conn)
	require.Equal(t, 1, session.Moves())

	require.NoError(t, conn.WriteJSON(Command{Op: "restart"}))
	snap := readSnapshot(t, conn)
	assert.Equal(t, 0, snap.Moves)
	assert.Equal(t, 1, snap.Row)
	assert.Equal(t, 0, snap.Col)
}

func TestObserverSeesOtherClientsMoves(t *testing.T) {
	_, ts := startServer(t)

	player := dial(t, ts)
	watcher := dial(t, ts)
	readSnapshot(t, player)
	readSnapshot(t, watcher)

	require.NoError(t, player.WriteJSON(Command{Op: "roll", Dir: "south"}))

	snap := readSnapshot(t, watcher)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, 2, snap.Row)
}
