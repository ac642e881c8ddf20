// Package main provides the scalar CLI, a thin diagnostic front end for
// the conversion engine in pkg/convert. It parses and canonicalizes
// scalar values from the command line, reporting structured conversion
// diagnostics on failure.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/scalar/pkg/convert"
)

// Exit codes: 1 for conversion failures, 2 for everything else.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		var ce *convert.Error
		if errors.As(err, &ce) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
