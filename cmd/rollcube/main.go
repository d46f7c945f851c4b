// Rollcube - rolling-cube paint puzzle for the terminal.
package main

import (
	"github.com/rollcube/rollcube/internal/cli"
)

func main() {
	cli.Execute()
}
