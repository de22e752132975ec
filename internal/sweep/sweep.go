// Package sweep evolves a range of rules from a shared initial configuration
// and summarizes each run.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"eca/pkg/eca"
)

// Config selects the rule range and the run shape.
type Config struct {
	States  int
	From    int
	To      int // exclusive
	Steps   int
	Workers int
	Initial eca.Configuration
}

// Result summarizes one rule.
type Result struct {
	Rule int
	// Density is the fraction of non-zero cells in the final row.
	Density float64
	// Transient is the first step of the detected cycle.
	Transient int
	// Period is the cycle length, or 0 when no row repeats within Steps.
	Period int
	// Distinct counts distinct rows in the history.
	Distinct int
}

func (r Result) String() string {
	return fmt.Sprintf("rule=%d density=%.3f transient=%d period=%d distinct=%d",
		r.Rule, r.Density, r.Transient, r.Period, r.Distinct)
}

// Run evaluates every rule in [cfg.From, cfg.To) on a worker pool. Results
// are sorted by rule.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	n, err := eca.NumNeighborhoods(cfg.States)
	if err != nil {
		return nil, err
	}
	limit, _ := eca.MaxRule(cfg.States)
	if cfg.From < 0 || cfg.To > limit || cfg.From > cfg.To {
		return nil, fmt.Errorf("%w: rule range [%d, %d) outside [0, %d)", eca.ErrInvalidRule, cfg.From, cfg.To, limit)
	}
	if err := cfg.Initial.Validate(cfg.States); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	results := make(chan Result)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				res, err := evaluate(rule, n, cfg)
				if err != nil {
					errs <- err
					cancel()
					return
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for rule := cfg.From; rule < cfg.To; rule++ {
			select {
			case jobs <- rule:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, cfg.To-cfg.From)
	for res := range results {
		all = append(all, res)
	}
	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Rule < all[j].Rule })
	return all, nil
}

func evaluate(rule, numNeighborhoods int, cfg Config) (Result, error) {
	a, err := eca.New(rule, cfg.Initial, numNeighborhoods, cfg.States)
	if err != nil {
		return Result{}, err
	}
	history, err := a.Evolve(cfg.Steps)
	if err != nil {
		return Result{}, fmt.Errorf("rule %d: %w", rule, err)
	}
	return Summarize(rule, history), nil
}

// Summarize computes the cycle and density statistics of a history.
func Summarize(rule int, history eca.History) Result {
	res := Result{Rule: rule}
	seen := make(map[string]int, len(history))
	for t, row := range history {
		key := string(row)
		if first, ok := seen[key]; ok {
			if res.Period == 0 {
				res.Transient = first
				res.Period = t - first
			}
			continue
		}
		seen[key] = t
	}
	res.Distinct = len(seen)
	if final := history.Final(); len(final) > 0 {
		live := 0
		for _, v := range final {
			if v != 0 {
				live++
			}
		}
		res.Density = float64(live) / float64(len(final))
	}
	return res
}
