package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"headerlife/pkg/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	density float64
	seed    int64
}

type densityResult struct {
	density     float64
	runs        int
	meanFinal   float64
	meanPeak    float64
	extinctions int
	stills      int
}

func (r densityResult) String() string {
	return fmt.Sprintf("density=%.2f final=%.1f peak=%.1f extinct=%d/%d still=%d/%d",
		r.density, r.meanFinal, r.meanPeak, r.extinctions, r.runs, r.stills, r.runs)
}

// workerLimit clamps the errgroup limit to at least one worker.
func workerLimit(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func main() {
	width := flag.Int("width", 160, "grid columns")
	height := flag.Int("height", 30, "grid rows")
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()
	*workers = workerLimit(*workers)

	var scenarios []scenario
	for d := 0.05; d <= 0.5+1e-9; d += 0.05 {
		for s := 0; s < *seeds; s++ {
			scenarios = append(scenarios, scenario{density: d, seed: int64(s + 1)})
		}
	}
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, *width, *height)

	type result struct {
		scenario
		out life.Outcome
	}
	results := make(chan result)
	var g errgroup.Group
	g.SetLimit(*workers)

	go func() {
		for _, sc := range scenarios {
			g.Go(func() error {
				results <- result{scenario: sc, out: life.Survey(*width, *height, sc.density, sc.seed, *steps)}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Printf("sweep: %v", err)
		}
		close(results)
	}()

	start := time.Now()
	byDensity := map[float64]*densityResult{}
	for res := range results {
		agg, ok := byDensity[res.density]
		if !ok {
			agg = &densityResult{density: res.density}
			byDensity[res.density] = agg
		}
		agg.runs++
		agg.meanFinal += float64(res.out.Final)
		agg.meanPeak += float64(res.out.Peak)
		if res.out.Extinct {
			agg.extinctions++
		}
		if res.out.StillAt >= 0 {
			agg.stills++
		}
	}

	var all []densityResult
	for _, agg := range byDensity {
		agg.meanFinal /= float64(agg.runs)
		agg.meanPeak /= float64(agg.runs)
		all = append(all, *agg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].meanFinal > all[j].meanFinal })

	fmt.Printf("\nResults by surviving population (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) %s\n", i+1, res)
	}
}
