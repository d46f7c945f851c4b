package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rollcube/rollcube"
)

// ErrBadLevel reports a malformed level definition.
var ErrBadLevel = errors.New("level: malformed level")

const facesPrefix = "faces:"

// Parse reads a level from its text form. The grid must be square with a
// side greater than 2 and contain exactly one cube marker. Blank lines are
// ignored.
func Parse(data []byte) (*Level, error) {
	l := &Level{StartRow: -1}
	var rows []string
	facesSeen := false

	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, facesPrefix) {
			if facesSeen {
				return nil, fmt.Errorf("%w: duplicate faces header on line %d", ErrBadLevel, i+1)
			}
			if len(rows) > 0 {
				return nil, fmt.Errorf("%w: faces header on line %d must precede the grid", ErrBadLevel, i+1)
			}
			facesSeen = true
			if err := parseFaces(strings.TrimSpace(line[len(facesPrefix):]), l); err != nil {
				return nil, fmt.Errorf("%w on line %d", err, i+1)
			}
			continue
		}
		rows = append(rows, line)
	}

	side := len(rows)
	if side <= 2 {
		return nil, fmt.Errorf("%w: board side %d, need at least 3", ErrBadLevel, side)
	}
	l.Side = side
	l.Painted = make([][]bool, side)

	for r, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells on a %d-wide board", ErrBadLevel, r, len(row), side)
		}
		l.Painted[r] = make([]bool, side)
		for c := 0; c < side; c++ {
			switch row[c] {
			case '.':
			case '*':
				l.Painted[r][c] = true
			case 'c', 'C':
				if l.StartRow >= 0 {
					return nil, fmt.Errorf("%w: second cube marker at (%d,%d)", ErrBadLevel, r, c)
				}
				l.StartRow = r
				l.StartCol = c
				l.Painted[r][c] = row[c] == 'C'
			default:
				return nil, fmt.Errorf("%w: unknown rune %q at (%d,%d)", ErrBadLevel, row[c], r, c)
			}
		}
	}

	if l.StartRow < 0 {
		return nil, fmt.Errorf("%w: no cube marker", ErrBadLevel)
	}
	return l, nil
}

func parseFaces(s string, l *Level) error {
	if len(s) != rollcube.NumFaces {
		return fmt.Errorf("%w: faces header has %d entries, want %d", ErrBadLevel, len(s), rollcube.NumFaces)
	}
	for i := 0; i < rollcube.NumFaces; i++ {
		switch s[i] {
		case '.':
		case '*':
			l.FacePainted[i] = true
		default:
			return fmt.Errorf("%w: unknown face rune %q", ErrBadLevel, s[i])
		}
	}
	return nil
}

// Render writes the level back out in the format Parse reads, including a
// faces header when any face starts painted.
func (l *Level) Render() string {
	var b strings.Builder
	if l.FacePainted != ([rollcube.NumFaces]bool{}) {
		b.WriteString(facesPrefix + " ")
		for _, p := range l.FacePainted {
			if p {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	for r := 0; r < l.Side; r++ {
		for c := 0; c < l.Side; c++ {
			switch {
			case r == l.StartRow && c == l.StartCol && l.Painted[r][c]:
				b.WriteByte('C')
			case r == l.StartRow && c == l.StartCol:
				b.WriteByte('c')
			case l.Painted[r][c]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
