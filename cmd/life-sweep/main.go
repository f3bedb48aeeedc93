// Command life-sweep measures how boards seeded at different densities
// settle: it runs every density × seed combination in parallel and reports the
// surviving population and the generation at which the board began to repeat.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/seeds"
	"lifegrid/internal/session"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type scenario struct {
	density float64
	seed    int64
}

func (s scenario) String() string {
	return fmt.Sprintf("density=%.2f seed=%d", s.density, s.seed)
}

type scenarioResult struct {
	scenario
	initial     int
	final       int
	peak        int
	settledAt   int
	period      int
	generations int
}

func main() {
	log.SetPrefix("life-sweep: ")
	rows := flag.Int("rows", 80, "board rows")
	cols := flag.Int("cols", 80, "board columns")
	densityList := flag.String("densities", "0.05,0.1,0.2,0.3,0.4,0.5", "comma separated initial densities")
	seedCount := flag.Int("seeds", 8, "seeds per density")
	generations := flag.Int("generations", 2000, "maximum generations per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	densities, err := parseDensities(*densityList)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	var sets []scenario
	for _, d := range densities {
		for seed := 1; seed <= *seedCount; seed++ {
			sets = append(sets, scenario{density: d, seed: int64(seed)})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, up to %d generations on %dx%d)\n", len(sets), *workers, *generations, *rows, *cols)

	start := time.Now()
	results := make([]scenarioResult, len(sets))
	var eg errgroup.Group
	eg.SetLimit(max(*workers, 1))
	for i, sc := range sets {
		eg.Go(func() error {
			res, err := runScenario(*rows, *cols, sc, *generations)
			if err != nil {
				return errors.Wrapf(err, "[runScenario] %s", sc)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("%+v", err)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool {
		if results[i].density != results[j].density {
			return results[i].density < results[j].density
		}
		return results[i].seed < results[j].seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range results {
		settled := "never"
		if res.period > 0 {
			settled = fmt.Sprintf("gen %d (period %d)", res.settledAt, res.period)
		}
		fmt.Printf("%s initial=%d peak=%d final=%d settled=%s\n", res.scenario, res.initial, res.peak, res.final, settled)
	}

	fmt.Printf("\nPer density averages:\n")
	for _, d := range densities {
		var final, settledAt, settledCount, n int
		for _, res := range results {
			if res.density != d {
				continue
			}
			n++
			final += res.final
			if res.period > 0 {
				settledAt += res.settledAt
				settledCount++
			}
		}
		if n == 0 {
			continue
		}
		avgSettle := "-"
		if settledCount > 0 {
			avgSettle = strconv.Itoa(settledAt / settledCount)
		}
		fmt.Printf("density=%.2f final=%.1f settled=%d/%d avgSettle=%s\n", d, float64(final)/float64(n), settledCount, n, avgSettle)
	}
}

func parseDensities(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "[parseDensities] invalid density %q", field)
		}
		if d < 0 || d > 1 {
			return nil, errors.Errorf("[parseDensities] density %v outside [0, 1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.New("[parseDensities] no densities given")
	}
	return out, nil
}

// runScenario steps a fresh session until its board repeats or the generation
// budget runs out.
func runScenario(rows, cols int, sc scenario, generations int) (scenarioResult, error) {
	cfg := session.DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.Density = sc.density
	cfg.Seed = sc.seed
	cfg.Pattern = seeds.Random

	s, err := session.New(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{scenario: sc, initial: s.Population(), peak: s.Population()}
	for s.Generation() < generations {
		s.StepOnce()
		if p := s.Population(); p > res.peak {
			res.peak = p
		}
		if s.Period() > 0 {
			res.period = s.Period()
			res.settledAt = s.Generation() - s.Period()
			break
		}
	}
	res.final = s.Population()
	res.generations = s.Generation()
	return res, nil
}
