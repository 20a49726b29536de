// Command lvmetric evaluates distances and nearest-neighbour queries from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvmetric/cmd/lvmetric/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
