package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rollcube/rollcube"
	"github.com/rollcube/rollcube/internal/game"
	"github.com/rollcube/rollcube/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level interactively",
	Long: `Start an interactive TUI for playing rollcube.

Keyboard shortcuts:
  arrows/hjkl - Roll the cube
  r           - Restart the level
  q/Esc       - Quit

Without --level or --file, a random board is generated. Wins are recorded
in the results database.`,
	RunE: runPlay,
}

func init() {
	addLevelFlags(playCmd)
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	paintedCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	blankCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cubeCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	paintedFace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	blankFace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

type playModel struct {
	session *game.Session

	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(session *game.Session) *playModel {
	return &playModel{session: session}
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.roll(rollcube.North)
		case "down", "j":
			m.roll(rollcube.South)
		case "left", "h":
			m.roll(rollcube.West)
		case "right", "l":
			m.roll(rollcube.East)

		case "r":
			m.err = m.session.Restart()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Keeps the elapsed clock moving between keypresses.
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) roll(d rollcube.Direction) {
	err := m.session.Roll(d)
	switch {
	case err == nil:
		m.err = nil
	case errors.Is(err, rollcube.ErrInvalidMove):
		// Bumping the board edge is routine; not worth an error banner.
		m.err = nil
	default:
		m.err = err
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Rollcube"))
	b.WriteString("\n\n")

	p := m.session.Snapshot()
	if p == nil {
		b.WriteString(errorStyle.Render("No game in progress"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("Level: %s", m.session.LevelName())))
	b.WriteString("\n\n")

	// Board
	for r := 0; r < p.Side(); r++ {
		for c := 0; c < p.Side(); c++ {
			switch {
			case r == p.CubeRow() && c == p.CubeCol():
				b.WriteString(cubeCell.Render("[]"))
			case p.IsPaintedSquare(r, c):
				b.WriteString(paintedCell.Render("▓▓"))
			default:
				b.WriteString(blankCell.Render("··"))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Face strip: front back left right bottom top
	b.WriteString("Faces: ")
	labels := [rollcube.NumFaces]string{"F", "B", "L", "R", "D", "U"}
	for f := rollcube.Face(0); f < rollcube.NumFaces; f++ {
		if p.IsPaintedFace(f) {
			b.WriteString(paintedFace.Render(labels[f]))
		} else {
			b.WriteString(blankFace.Render(labels[f]))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Moves: %d   Time: %s\n", p.Moves(), formatElapsed(m.session.Elapsed())))

	if m.session.Won() {
		b.WriteString("\n")
		b.WriteString(wonStyle.Render("ALL FACES PAINTED - YOU WIN!"))
		b.WriteString("\n")
		if m.session.LastResultID() != "" {
			b.WriteString(statusStyle.Render(fmt.Sprintf("Result saved: %s", m.session.LastResultID()[:8])))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "Keys: arrows/hjkl=roll  r=restart  q=quit"
	if m.session.Won() {
		help = "Keys: r=play again  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%04.1f", mins, secs)
}

func runPlay(cmd *cobra.Command, args []string) error {
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
	session.Start(lvl)

	model := newPlayModel(session)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
