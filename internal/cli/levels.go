package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rollcube/rollcube/internal/level"
	"github.com/rollcube/rollcube/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage stored levels",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored levels",
	RunE:  runLevelsList,
}

var levelsAddFile string

var levelsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Store a level from a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsAdd,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

var levelsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsDelete,
}

func init() {
	levelsAddCmd.Flags().StringVar(&levelsAddFile, "file", "", "Level file to store (required)")
	levelsAddCmd.MarkFlagRequired("file")

	levelsCmd.AddCommand(levelsListCmd, levelsAddCmd, levelsShowCmd, levelsDeleteCmd)
	rootCmd.AddCommand(levelsCmd)
}

func runLevelsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	levels, err := storage.NewLevelRepository(db).List()
	if err != nil {
		return err
	}

	if len(levels) == 0 {
		fmt.Println("No stored levels. Add one with 'rollcube levels add'.")
		return nil
	}

	fmt.Printf("%-20s %-6s %s\n", "NAME", "SIDE", "CREATED")
	for _, l := range levels {
		fmt.Printf("%-20s %-6d %s\n", l.Name, l.Side, l.CreatedAt.Local().Format(time.DateTime))
	}
	return nil
}

func runLevelsAdd(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(levelsAddFile)
	if err != nil {
		return fmt.Errorf("read level file: %w", err)
	}

	lvl, err := level.Parse(data)
	if err != nil {
		return err
	}
	lvl.Name = args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := storage.NewLevelRepository(db).Create(lvl); err != nil {
		return err
	}

	fmt.Printf("Stored level %q (%dx%d, %d painted cells)\n",
		lvl.Name, lvl.Side, lvl.Side, lvl.PaintedCells())
	return nil
}

func runLevelsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	lvl, err := storage.NewLevelRepository(db).Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%dx%d, cube at (%d,%d), %d painted cells)\n\n",
		lvl.Name, lvl.Side, lvl.Side, lvl.StartRow, lvl.StartCol, lvl.PaintedCells())
	fmt.Print(lvl.Render())
	return nil
}

func runLevelsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewLevelRepository(db).Delete(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted level %q\n", args[0])
	return nil
}
