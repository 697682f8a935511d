// SPDX-License-Identifier: GPL-3.0-or-later

// Command argcheck runs the registered validators over command line values.
//
// Usage:
//
//	argcheck list
//	argcheck check NAME VALUE...
//
// A single VALUE is validated as a scalar, several as a list. Validators
// that replace values print the new values, one per line. The exit code is
// 0 on success, 1 when validation fails, and 2 on usage or configuration
// errors.
//
// Settings are read, in increasing order of precedence, from defaults, the
// YAML, TOML, or JSON file named by --config, ARGCHECK_ environment
// variables (e.g., ARGCHECK_DNS_PROTOCOL), and command line flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bassosimone/argcheck"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line in args and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(ctx, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "argcheck: %s\n", err.Error())
	var verr *argcheck.ValidationError
	if errors.As(err, &verr) {
		return 1
	}
	return 2
}
