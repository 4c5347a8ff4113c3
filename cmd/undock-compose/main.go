package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arifer/undock-compose/internal/commands"
	"github.com/arifer/undock-compose/internal/template"
	"github.com/arifer/undock-compose/internal/version"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes. Malformed templates and filesystem problems are
// distinguished so scripts can tell them apart.
const (
	exitFailure        = 1
	exitMalformedInput = 2
	exitPathError      = 3
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime
	version.GitCommit = GitCommit

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var parseErr *template.ParseError
	if errors.As(err, &parseErr) {
		return exitMalformedInput
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return exitPathError
	}

	return exitFailure
}
