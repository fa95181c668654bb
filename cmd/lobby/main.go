// Package main is the entry point for the lobby CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
