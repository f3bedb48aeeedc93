// Command life-headless runs a board on the real step interval without a
// window and saves the final board and population chart.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/session"
	"lifegrid/internal/stats"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type progress struct {
	generation int
	population int
	period     int
}

func main() {
	log.SetPrefix("life-headless: ")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 500, "generations to run")
	fast := flag.Bool("fast", false, "step as fast as possible instead of waiting for the interval")
	every := flag.Duration("report", time.Second, "how often to log progress")
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	s, err := session.New(cfg.SessionConfig())
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates := make(chan progress, 1)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(updates)
		return drive(ctx, s, *generations, *fast, updates)
	})
	eg.Go(func() error {
		report(updates, *every)
		return nil
	})
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("%+v", err)
	}

	log.Printf("stopped at generation %d with %d live cells", s.Generation(), s.Population())
	if cfg.SVGPath != "" {
		if err := app.SaveSVG(cfg.SVGPath, s.Grid(), cfg.CellSize); err != nil {
			log.Fatalf("%+v", err)
		}
		log.Printf("board written to %s", cfg.SVGPath)
	}
	if cfg.ChartPath != "" {
		err := app.SaveChart(cfg.ChartPath, s.History())
		switch {
		case errors.Is(err, stats.ErrTooFewSamples):
			log.Printf("chart skipped: %v", err)
		case err != nil:
			log.Fatalf("%+v", err)
		default:
			log.Printf("chart written to %s", cfg.ChartPath)
		}
	}
}

// drive owns the session until it returns: it is the only goroutine that
// touches s.
func drive(ctx context.Context, s *session.Session, generations int, fast bool, updates chan<- progress) error {
	var tick <-chan time.Time
	if !fast {
		ticker := time.NewTicker(s.Interval())
		defer ticker.Stop()
		tick = ticker.C
	}
	for s.Generation() < generations {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		s.StepOnce()
		p := progress{generation: s.Generation(), population: s.Population(), period: s.Period()}
		select {
		case updates <- p:
		default:
		}
	}
	return nil
}

func report(updates <-chan progress, every time.Duration) {
	var last progress
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case p, ok := <-updates:
			if !ok {
				return
			}
			last = p
		case <-ticker.C:
			if last.period > 0 {
				log.Printf("generation %d: %d live cells, repeating every %d", last.generation, last.population, last.period)
				continue
			}
			log.Printf("generation %d: %d live cells", last.generation, last.population)
		}
	}
}
