// Package main provides the entry point for the docquery CLI.
package main

import (
	"fmt"
	"os"

	"github.com/docuflow/docquery/cmd/docquery/cmd"
	dqerrors "github.com/docuflow/docquery/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, dqerrors.FormatForCLI(err))
		os.Exit(1)
	}
}
