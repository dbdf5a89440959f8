// Command fcat merges line-oriented files into a single output stream, with
// per-source head/tail line skipping, boundary padding, and final-newline
// enforcement. Input paths come from the command line or, failing that, from
// a whitespace-separated list on standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"

	"fcat/internal/logging"
)

var version = "0.3.0"

func main() {
	os.Exit(Main())
}

// Main runs the command and returns its exit status. It is split from main
// so the testscript harness can invoke the CLI in-process.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fcat: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "fcat [flags] [PATH...]",
		Short: "merge line-oriented files into one stream",
		Long: `fcat reads file paths from its arguments (or, failing that, from standard
input) and merges those files into standard output, skipping per-source head
and tail lines, inserting padding at source boundaries, and optionally
enforcing a final newline.

Paths supplied on standard input may be separated by spaces or newlines;
quote a path to include whitespace in it.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.inputs = append(opts.inputs, args...)
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	fl := cmd.Flags()
	fl.StringArrayVarP(&opts.inputs, "input", "i", nil, "input files, read from standard input if not present")
	fl.StringVarP(&opts.output, "output", "o", "", "write output to `FILE` instead of standard output")
	fl.IntVarP(&opts.skipHead, "skip-head", "s", 0, "drop `N` lines from the head of each source")
	fl.IntVarP(&opts.skipTail, "skip-tail", "e", 0, "drop `N` lines from the tail of each source")
	fl.IntVarP(&opts.skipHeadOnce, "skip-head-once", "S", 0, "leave the first source untouched, drop `N` head lines from the rest")
	fl.IntVarP(&opts.skipTailOnce, "skip-tail-once", "E", 0, "leave the last source untouched, drop `N` tail lines from the rest")
	fl.BoolVarP(&opts.headOnce, "headonce", "H", false, "equivalent to --skip-head-once=1")
	fl.BoolVarP(&opts.tailOnce, "tailonce", "T", false, "equivalent to --skip-tail-once=1")
	fl.StringVarP(&opts.padding, "padding", "p", "", "insert `STRING` at source boundaries")
	fl.StringVarP(&opts.padMode, "pad-mode", "P", "between", "where to pad: beforestart, afterend, between, all")
	fl.BoolVarP(&opts.newline, "newline", "n", false, "append a newline if the output does not end with one")
	fl.StringVarP(&opts.newlineStyle, "newline-style", "N", "lf", "newline style: lf or crlf")
	fl.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	cmd.MarkFlagsMutuallyExclusive("skip-head", "skip-head-once", "headonce")
	cmd.MarkFlagsMutuallyExclusive("skip-tail", "skip-tail-once", "tailonce")
	return cmd
}

func run(stdin io.Reader, stdout io.Writer, opts *options) error {
	m, err := opts.merger()
	if err != nil {
		return err
	}
	paths := opts.inputs
	if len(paths) == 0 {
		paths, err = readPathList(stdin)
		if err != nil {
			return err
		}
	}
	log.Debug().Int("sources", len(paths)).Msg("resolved input paths")
	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return m.MergeFiles(out, paths...)
}

// readPathList splits a standard-input path list into individual paths. The
// list is shell-word split, so quoted paths may contain whitespace; unquoted
// spaces and newlines both separate paths.
func readPathList(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return shell.Fields(string(b), nil)
}
