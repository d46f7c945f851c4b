package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rollcube/rollcube/internal/level"
	"github.com/rollcube/rollcube/internal/storage"
)

// Level-selection flags shared by play and serve.
var (
	levelName   string
	levelFile   string
	randomSide  int
	randomPaint int
)

func addLevelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&levelName, "level", "", "Play a stored level by name")
	cmd.Flags().StringVar(&levelFile, "file", "", "Play a level from a file")
	cmd.Flags().IntVar(&randomSide, "side", 0, "Board side for a random level (default: configured side)")
	cmd.Flags().IntVar(&randomPaint, "paint", 6, "Painted cells for a random level")
}

// pickLevel resolves the level to play: --file, then --level from the
// database, then a random board.
func pickLevel(db *storage.DB) (*level.Level, error) {
	switch {
	case levelFile != "":
		data, err := os.ReadFile(levelFile)
		if err != nil {
			return nil, fmt.Errorf("read level file: %w", err)
		}
		lvl, err := level.Parse(data)
		if err != nil {
			return nil, err
		}
		lvl.Name = levelFile
		return lvl, nil

	case levelName != "":
		return storage.NewLevelRepository(db).Get(levelName)

	default:
		side := randomSide
		if side == 0 {
			side = configuredSide()
		}
		if side <= 2 {
			return nil, fmt.Errorf("board side %d is too small, need at least 3", side)
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return level.Random("random", side, randomPaint, rng), nil
	}
}
