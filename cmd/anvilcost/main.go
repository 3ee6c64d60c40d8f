// Command anvilcost inspects and manages anvil cost settings.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	os.Exit(run(os.Stderr))
}

func run(stderr io.Writer) int {
	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)

		return 1
	}

	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
