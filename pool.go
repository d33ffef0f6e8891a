package md2cv

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent exports; each holds a whole document in memory.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for file I/O and the caller.
	cpuDivisor = 2
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("converter pool is closed")

// ConverterPool bounds the number of exports running at once.
// Converters are created lazily on first acquire with the pool's options.
type ConverterPool struct {
	size    int
	opts    []Option
	sem     chan *Converter
	mu      sync.Mutex
	created int
	closed  bool
}

// NewConverterPool creates a pool with capacity for n Converter instances.
// opts are applied to every converter the pool creates.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < 1 {
		n = 1
	}

	return &ConverterPool{
		size: n,
		opts: opts,
		sem:  make(chan *Converter, n),
	}
}

// Acquire gets a converter from the pool, creating one if needed.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() (*Converter, error) {
	// Try to get an existing converter (non-blocking)
	select {
	case conv, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return conv, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create outside the lock; font files may be read from disk.
		conv, err := NewConverter(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return conv, nil
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	conv, ok := <-p.sem
	if !ok {
		return nil, ErrPoolClosed
	}
	return conv, nil
}

// Release returns a converter to the pool.
// The lock is held while sending so Close cannot close the channel underneath.
// The send never blocks: at most size converters exist.
func (p *ConverterPool) Release(conv *Converter) {
	if conv == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.sem <- conv
}

// Close stops the pool. Waiting Acquire calls return ErrPoolClosed.
func (p *ConverterPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.sem)
	return nil
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs inside containers.
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
