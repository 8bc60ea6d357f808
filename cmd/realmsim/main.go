// Command realmsim runs the turn-based region/nation economic simulation.
package main

import (
	"fmt"
	"os"

	"github.com/talgya/realm-sim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
