package lambda

import (
	"log/slog"
	"time"
)

// Options bounds and observes a call to Normalize. The zero value reduces
// without limits and without logging.
type Options struct {
	MaxSteps int           // 0 means unlimited
	Timeout  time.Duration // 0 means unlimited

	Logger      *slog.Logger
	ReportEvery int // steps between progress records; 0 disables them
}

// Result summarizes a reduction run.
type Result struct {
	Steps   int
	Elapsed time.Duration
}

// Normalize steps the graph until it reaches beta-normal form. Terms without
// a normal form reduce forever unless opts sets a budget, in which case
// ErrBudgetExceeded is returned together with the work done so far.
func (g *Graph) Normalize(opts Options) (Result, error) {
	var res Result
	start := time.Now()
	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = start.Add(opts.Timeout)
	}
	for {
		r, ok := g.nextRedex()
		if !ok {
			break
		}
		if opts.MaxSteps > 0 && res.Steps >= opts.MaxSteps ||
			!deadline.IsZero() && res.Steps%64 == 0 && time.Now().After(deadline) {
			res.Elapsed = time.Since(start)
			return res, ErrBudgetExceeded
		}
		g.contract(r)
		res.Steps++
		if opts.Logger != nil && opts.ReportEvery > 0 && res.Steps%opts.ReportEvery == 0 {
			opts.Logger.Info("reducing", "steps", res.Steps, "cells", g.Len(), "elapsed", time.Since(start))
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}
