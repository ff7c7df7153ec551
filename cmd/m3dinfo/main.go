// Command m3dinfo reports which kernel set a build of algo-math3d uses and
// checks the built-in kernel sets against the scalar reference.
//
// Usage:
//
//	m3dinfo backend [--format text|yaml]
//	m3dinfo verify [--samples N] [--seed S] [--format text|yaml]
//
// Examples:
//
//	m3dinfo backend
//	GOEXPERIMENT=simd go run -tags math3d_avx ./cmd/m3dinfo verify --samples 10000
//	m3dinfo verify --format yaml --verbose
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type options struct {
	format  string
	verbose bool
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "m3dinfo",
		Short: "Inspect and verify the algo-math3d kernel sets",
		Long: `m3dinfo prints the kernel set compiled into this build, the CPU
features of the host, and every kernel set registered in the binary.

The verify command runs each kernel set the host can execute against the
scalar reference on deterministic random inputs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format != formatText && opts.format != formatYAML {
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatYAML)
			}
			opts.logger = newLogger(stderr, opts.verbose)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.format, "format", formatText, "output format: text or yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(newBackendCmd(opts))
	root.AddCommand(newVerifyCmd(opts))
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
