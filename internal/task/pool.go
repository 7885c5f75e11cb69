package task

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pricelab/pricelab/client"
	"github.com/pricelab/pricelab/internal/metrics"
	"github.com/pricelab/pricelab/internal/optimize"
)

const (
	outcomeDone   = "done"
	outcomeFailed = "failed"
)

// Notifier is called with every finished task.
type Notifier func(t Task)

// Pool executes optimization requests on a bounded set of workers.
type Pool struct {
	source   client.Source
	registry *Registry
	workers  int
	jobs     chan job
	notify   Notifier
	wg       sync.WaitGroup
}

type job struct {
	id      string
	request Request
}

// NewPool creates a pool with the given number of workers and queue capacity.
func NewPool(workers, queue int, source client.Source, registry *Registry) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers
	}
	return &Pool{
		source:   source,
		registry: registry,
		workers:  workers,
		jobs:     make(chan job, queue),
	}
}

// WithNotifier registers a callback for finished tasks.
func (p *Pool) WithNotifier(notify Notifier) *Pool {
	p.notify = notify
	return p
}

// Registry exposes the task registry backing the pool.
func (p *Pool) Registry() *Registry {
	return p.registry
}

// Start spins up the workers.
// They run until Stop is called or the context is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.jobs:
					if !ok {
						return
					}
					p.process(ctx, j)
				}
			}
		}()
	}
}

// Stop closes the queue and waits for the workers to drain it.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit enqueues the given request and returns the tracking task.
// It never blocks, a full queue rejects the request.
func (p *Pool) Submit(request Request) (Task, error) {
	if request.Product == "" {
		return Task{}, fmt.Errorf("missing product")
	}

	t := p.registry.Create(request.Product)
	select {
	case p.jobs <- job{id: t.ID, request: request}:
		log.Info().Str("id", t.ID).Str("product", request.Product).Msg("task submitted")
		return t, nil
	default:
		p.registry.Fail(t.ID, fmt.Errorf("queue full"))
		return Task{}, fmt.Errorf("queue full")
	}
}

func (p *Pool) process(ctx context.Context, j job) {
	finished := p.run(ctx, j)
	outcome := outcomeDone
	if finished.Status == StatusFailed {
		outcome = outcomeFailed
	}
	metrics.Observer.Increment(j.request.Product, outcome)
	if finished.Result != nil {
		metrics.Observer.ObserveIterations(finished.Result.Iterations)
	}
	if p.notify != nil {
		p.notify(finished)
	}
}

func (p *Pool) run(ctx context.Context, j job) Task {
	samples, err := p.source.Samples(ctx, j.request.Product)
	if err != nil {
		log.Error().Err(err).Str("id", j.id).Msg("could not retrieve samples")
		return p.registry.Fail(j.id, err)
	}

	result, err := optimize.Run(samples.Prices(), samples.Ratings(), j.request.Cost, j.request.MaxDemand)
	if err != nil {
		log.Error().Err(err).Str("id", j.id).Msg("optimization failed")
		return p.registry.Fail(j.id, err)
	}

	return p.registry.Complete(j.id, result)
}
