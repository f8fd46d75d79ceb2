package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/daystram/bubble/console"
	"github.com/daystram/bubble/vector"
)

const (
	exitOK  = 0
	exitErr = 1
)

var logger = zap.NewNop()

type flags struct {
	verbose bool
	seed    uint32
	min     int32
	max     int32
	limit   int
	sizes   []int
}

func main() {
	err := realMain(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string, in io.Reader, out io.Writer) error {
	cmd := newRootCmd(in, out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:           "bubble",
		Short:         "Generate a random vector, bubble sort it and verify the result",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(f.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []console.Option{console.WithColor(isTerminal(out))}
			return run(console.NewInterface(in, out, opts...), f)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.Uint32Var(&f.seed, "seed", 0, "generator seed, 0 seeds from the wall clock")
	pf.Int32Var(&f.min, "min", vector.DefaultMin, "inclusive lower bound of generated values")
	pf.Int32Var(&f.max, "max", vector.DefaultMax, "exclusive upper bound of generated values")
	rootCmd.Flags().IntVar(&f.limit, "limit", console.DefaultPreviewLimit, "number of elements shown in previews")

	rootCmd.AddCommand(newBenchCmd(out, f))
	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
