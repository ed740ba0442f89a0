// Package workpool runs jobs on a fixed number of goroutines fed from one queue.
package workpool

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/joshuapare/rawvec/internal/logger"
)

// Options configures a Pool.
type Options struct {
	// QueueSize is the number of jobs that may wait for a free worker before
	// Execute blocks.
	// Default: 64
	QueueSize int

	// Logger receives worker lifecycle and job panic records.
	// Default: nil, which follows the package-wide rawvec logger at each call,
	// so a pool started before logger.Init still logs once it is enabled
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() *Options {
	return &Options{
		QueueSize: 64,
	}
}

// Pool is a fixed set of workers sharing one job queue.
type Pool struct {
	jobs chan func()
	size int
	log  *slog.Logger // nil means logger.L()

	mu     sync.RWMutex // guards closed against concurrent sends
	closed bool
	once   sync.Once
	wg     sync.WaitGroup

	panics atomic.Uint64
}

// New starts size workers. It panics with ErrInvalidSize if size < 1.
func New(size int, opts *Options) *Pool {
	if size < 1 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidSize, size))
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	queue := opts.QueueSize
	if queue < 0 {
		queue = 0
	}
	p := &Pool{
		jobs: make(chan func(), queue),
		size: size,
		log:  opts.Logger,
	}
	p.wg.Add(size)
	for id := range size {
		go p.worker(id)
	}
	p.logger().Debug("workpool: started", "workers", size, "queue", queue)
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Panics returns how many jobs have panicked so far.
func (p *Pool) Panics() uint64 { return p.panics.Load() }

// Execute queues job for the next free worker. It blocks while the queue is full.
func (p *Pool) Execute(job func()) error {
	if job == nil {
		return ErrNilJob
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	p.jobs <- job
	return nil
}

// Close stops accepting jobs, waits for queued jobs to finish and joins every
// worker. Calling Close more than once is safe.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
	})
	p.wg.Wait()
	p.logger().Debug("workpool: released", "workers", p.size)
}

func (p *Pool) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return logger.L()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		p.logger().Debug("workpool: worker doing job", "worker", id)
		p.run(id, job)
	}
	p.logger().Debug("workpool: worker shutting down", "worker", id)
}

// run keeps a panicking job from taking its worker down.
func (p *Pool) run(id int, job func()) {
	defer func() {
		if r := recover(); r != nil {
			p.panics.Add(1)
			p.logger().Error("workpool: job panicked", "worker", id, "panic", r)
		}
	}()
	job()
}
