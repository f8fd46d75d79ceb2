package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bubble/console"
	"github.com/daystram/bubble/prng"
	"github.com/daystram/bubble/sorter"
	"github.com/daystram/bubble/vector"
)

func run(c *console.Interface, f *flags) error {
	count, err := c.PromptInt(console.DefaultPrompt)
	if err != nil {
		return err
	}

	r := prng.NewPseudoRand()
	if f.seed != 0 {
		r.Seed(f.seed)
	}
	logger.Debug("building vector",
		zap.Int32("count", count),
		zap.Int32("min", f.min),
		zap.Int32("max", f.max),
		zap.Uint32("seed", f.seed),
	)
	values, err := vector.Build(r, int(count), f.min, f.max)
	if err != nil {
		return fmt.Errorf("build vector: %w", err)
	}

	if err := c.Preview(values, f.limit); err != nil {
		return err
	}
	start := time.Now()
	st := sorter.BubbleSort(values)
	elapsed := time.Since(start)
	isSorted := sorter.IsSorted(values)
	logger.Debug(message.NewPrinter(language.English).
		Sprintf("sorted n=%d passes=%d cmp=%d swaps=%d (%.3fs elapsed)",
			len(values), st.Passes, st.Comparisons, st.Swaps, elapsed.Seconds()),
		zap.Bool("sorted", isSorted),
	)

	if err := c.Preview(values, f.limit); err != nil {
		return err
	}
	return c.Verdict(isSorted)
}
