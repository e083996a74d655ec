// Package cmd implements the fencedit command line.
package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	config string
	lang   []string
	file   string
	status statusFunc
}

func (opts *options) createStatus(w io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

// Execute runs the command line and exits the process on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	if code := run(args, os.Stdin, stdout, stderr); code != 0 {
		os.Exit(code)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := rootCmd()

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var notified *notifiedError
	if !errors.As(err, &notified) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return 1
}

func rootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{ //nolint:exhaustruct
		Use:           "fencedit",
		Short:         "Edit Markdown code blocks in an external editor",
		Long:          rootHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.createStatus(cmd.ErrOrStderr())
		},

		DisableAutoGenTag: true,
	}

	root.PersistentFlags().StringVar(&opts.config, "config", "", "settings file (default $FENCEDIT_CONFIG or the user config dir)")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")

	root.AddCommand(editCmd(opts), listCmd(opts), configCmd(opts))

	return root
}

// notifiedError marks a failure the user has already been told about.
type notifiedError struct {
	err error
}

func (e *notifiedError) Error() string {
	return e.err.Error()
}

func (e *notifiedError) Unwrap() error {
	return e.err
}
