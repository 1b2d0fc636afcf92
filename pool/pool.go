// Package pool runs tasks on a fixed number of workers.
package pool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxWorkers caps how many emulators run at once.
const DefaultMaxWorkers = 8

// Config sizes the pool.
type Config struct {
	MaxWorkers int
}

func DefaultConfig() Config {
	return Config{MaxWorkers: DefaultMaxWorkers}
}

// Size returns min(tasks, maxWorkers), never less than one.
func Size(tasks, maxWorkers int) int {
	return max(1, min(tasks, maxWorkers))
}

// Pool runs submitted jobs on at most size goroutines. Jobs cannot fail
// the pool; each one reports its own outcome.
type Pool struct {
	ctx context.Context
	g   errgroup.Group
}

// New creates a Pool whose jobs receive ctx.
func New(ctx context.Context, size int) *Pool {
	p := &Pool{ctx: ctx}
	p.g.SetLimit(max(1, size))

	return p
}

// Submit queues fn, blocking while every worker is busy. Jobs start in
// submission order.
func (p *Pool) Submit(fn func(ctx context.Context)) {
	p.g.Go(func() error {
		fn(p.ctx)

		return nil
	})
}

// Wait blocks until every submitted job has returned.
func (p *Pool) Wait() {
	_ = p.g.Wait()
}
