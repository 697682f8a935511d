// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/bassosimone/argcheck"
	"github.com/bassosimone/argcheck/netcheck"
	"github.com/bassosimone/argcheck/pathcheck"
	"github.com/bassosimone/argcheck/typecheck"
	"github.com/bassosimone/runtimex"
	"github.com/spf13/cobra"
)

// newRegistry returns a registry containing every validator.
func newRegistry() (*argcheck.Registry, error) {
	reg := argcheck.NewRegistry()
	for _, register := range []func(*argcheck.Registry) error{
		pathcheck.Register,
		typecheck.Register,
		netcheck.Register,
	} {
		if err := register(reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// newEnumAction returns an allow-list check accepting only the given values.
func newEnumAction(name string, allowed ...string) argcheck.Action {
	desc := argcheck.Descriptor[string]{
		Name:     name,
		Func:     argcheck.PureFunc(func(s string) string { return s }),
		Singular: fmt.Sprintf("%s must be one of %v", name, allowed),
		Plural:   fmt.Sprintf("every %s must be one of %v", name, allowed),
	}
	return runtimex.PanicOnError1(argcheck.NewAllowListCheck(argcheck.NewConfig(), desc, allowed, argcheck.DefaultSLogger()))
}

// newConfigFileAction accepts readable files and resolves them to absolute paths.
func newConfigFileAction() argcheck.Action {
	cfg, logger := argcheck.NewConfig(), argcheck.DefaultSLogger()
	return argcheck.Chain(
		runtimex.PanicOnError1(argcheck.NewCheck(cfg, pathcheck.FileIsReadable(), logger)),
		runtimex.PanicOnError1(argcheck.NewTransformAndReplace(cfg, pathcheck.PathIsResolved(), logger)),
	)
}

// app holds the state shared by the subcommands.
type app struct {
	configFile      *argcheck.Value
	resolveSettings func() (*settings, error)
	stderr          io.Writer
	stdout          io.Writer
}

func newRootCommand(ctx context.Context, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		configFile: argcheck.NewValue(ctx, newConfigFileAction(), "path"),
		stderr:     stderr,
		stdout:     stdout,
	}

	root := &cobra.Command{
		Use:           "argcheck",
		Short:         "Validate and transform command line values",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.Var(a.configFile, "config", "read settings from this YAML, TOML, or JSON file")
	flags.Var(argcheck.NewValue(ctx, newEnumAction("dns-protocol", "system", "udp", "tcp", "dot", "doh"), "string"),
		"dns-protocol", "DNS protocol: system, udp, tcp, dot, or doh (default system)")
	flags.String("dns-server", "", "DNS server for udp, tcp, dot (IP:port) or doh (https URL) (default 8.8.8.8:53)")
	flags.Var(argcheck.NewValue(ctx, newEnumAction("log-format", "text", "json"), "string"),
		"log-format", "log format: text or json (default text)")
	flags.Var(argcheck.NewValue(ctx, newEnumAction("log-level", "debug", "info", "warn", "error"), "string"),
		"log-level", "log level: debug, info, warn, or error (default warn)")
	flags.Duration("timeout", 0, "timeout for each validation (default 30s)")

	a.resolveSettings = func() (*settings, error) {
		v, err := newViper(flags)
		if err != nil {
			return nil, err
		}
		return loadSettings(v, a.configFile.String())
	}

	root.AddCommand(a.newListCommand(), a.newCheckCommand())
	return root
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available validators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.resolveSettings(); err != nil {
				return err
			}
			reg, err := newRegistry()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 8, 2, ' ', 0)
			for _, name := range reg.Names() {
				entry, _ := reg.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Help)
			}
			return tw.Flush()
		},
	}
}

func (a *app) newCheckCommand() *cobra.Command {
	var allowed []string
	cmd := &cobra.Command{
		Use:   "check NAME VALUE...",
		Short: "Run the NAME validator over the given values",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd.Context(), args[0], args[1:], allowed)
		},
	}
	cmd.Flags().StringSliceVar(&allowed, "allow", nil, "comma separated allow-list for allow-list validators")
	return cmd
}

func (a *app) check(ctx context.Context, name string, args []string, allowed []string) error {
	st, err := a.resolveSettings()
	if err != nil {
		return err
	}
	logger, err := st.newLogger(a.stderr)
	if err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	entry, found := reg.Lookup(name)
	if !found {
		return fmt.Errorf("unknown validator %q (see 'argcheck list')", name)
	}
	action, err := entry.New(st.newConfig(), logger, allowed)
	if err != nil {
		return err
	}

	values := argcheck.NewList(args...)
	if len(args) == 1 {
		values = argcheck.NewScalar(args[0])
	}

	ctx, cancel := context.WithTimeout(ctx, st.timeout())
	defer cancel()
	out, err := action.Call(ctx, values)
	if err != nil {
		return err
	}
	for _, value := range out.Items() {
		fmt.Fprintln(a.stdout, value)
	}
	return nil
}

// timeout returns the configured timeout or the default one.
func (s *settings) timeout() time.Duration {
	if s.Timeout <= 0 {
		return 30 * time.Second
	}
	return s.Timeout
}
