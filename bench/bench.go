package bench

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bubble/prng"
	"github.com/daystram/bubble/sorter"
	"github.com/daystram/bubble/vector"
)

var DefaultSizes = []int{1_000, 2_000, 4_000}

type Config struct {
	Sizes    []int
	Min, Max int32
	// Seed of 0 seeds from the wall clock.
	Seed uint32
}

type Result struct {
	Size    int
	Stats   sorter.Stats
	Sorted  bool
	Elapsed time.Duration
}

func (r Result) String() string {
	rate := 0
	if secs := r.Elapsed.Seconds(); secs > 0 {
		rate = int(float64(r.Stats.Comparisons) / secs)
	}
	return message.NewPrinter(language.English).
		Sprintf("n=%d passes=%d swaps=%d rate=%dcmp/s sorted=%v (%.3fs elapsed)",
			r.Size, r.Stats.Passes, r.Stats.Swaps, rate, r.Sorted, r.Elapsed.Seconds())
}

// Run builds, sorts and verifies one vector per configured size, sending a
// summary line for each to out.
func Run(cfg *Config, out func(a ...any)) ([]Result, error) {
	r := prng.NewPseudoRand()
	if cfg.Seed != 0 {
		r.Seed(cfg.Seed)
	}
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}

	results := make([]Result, 0, len(sizes))
	for _, size := range sizes {
		v, err := vector.Build(r, size, cfg.Min, cfg.Max)
		if err != nil {
			return results, fmt.Errorf("bench n=%d: %w", size, err)
		}

		start := time.Now()
		st := sorter.BubbleSort(v)
		end := time.Now()

		res := Result{
			Size:    size,
			Stats:   st,
			Sorted:  sorter.IsSorted(v),
			Elapsed: end.Sub(start),
		}
		results = append(results, res)
		if out != nil {
			out(res.String())
		}
	}
	return results, nil
}
