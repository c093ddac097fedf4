package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		os.Exit(1)
	}
}
