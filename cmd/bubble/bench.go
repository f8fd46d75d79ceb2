package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daystram/bubble/bench"
)

func newBenchCmd(out io.Writer, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time bubble sort over generated vectors of the given sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("starting bench", zap.Ints("sizes", f.sizes), zap.Uint32("seed", f.seed))
			results, err := bench.Run(&bench.Config{
				Sizes: f.sizes,
				Min:   f.min,
				Max:   f.max,
				Seed:  f.seed,
			}, func(a ...any) {
				fmt.Fprintln(out, a...)
			})
			if err != nil {
				return err
			}
			for _, res := range results {
				if !res.Sorted {
					return fmt.Errorf("bench n=%d: vector not sorted", res.Size)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&f.sizes, "size", bench.DefaultSizes, "vector sizes to benchmark")
	return cmd
}
