package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rollcube/rollcube/internal/game"
	"github.com/rollcube/rollcube/internal/server"
	"github.com/rollcube/rollcube/internal/storage"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a game over websockets",
	Long: `Run a shared game over HTTP.

GET /state returns the current state as JSON; /ws upgrades to a websocket
that streams a snapshot after every move and accepts move commands:

  {"op":"roll","dir":"east"}
  {"op":"move","row":1,"col":2}
  {"op":"restart"}

All connected clients see every change. Wins are recorded in the results
database.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8473", "Listen address")
	addLevelFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	lvl, err := pickLevel(db)
	if err != nil {
		return err
	}

	session := game.NewSession(storage.NewResultRepository(db))
	srv := server.New(session)
	session.Start(lvl)

	fmt.Printf("Serving level %q on http://%s (ws at /ws)\n", lvl.Name, serveAddr)
	return http.ListenAndServe(serveAddr, srv.Handler())
}
