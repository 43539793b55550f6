package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpen = errors.New("remote api temporarily unavailable")

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
	Reset()
}

type Option func(*breaker)

// WithFailureFilter decides which errors count against the window.
// Errors rejected by the filter are returned to the caller but recorded as successes.
func WithFailureFilter(f func(error) bool) Option {
	return func(b *breaker) { b.isFailure = f }
}

func WithStateHook(f func(from, to State)) Option {
	return func(b *breaker) { b.onChange = f }
}

type breaker struct {
	mu sync.Mutex

	state    State
	window   []bool
	pos      int
	filled   int
	ratio    float64
	cooldown time.Duration
	openedAt time.Time
	// consecutive successes needed in half-open before closing
	probes    int
	succeeded int

	isFailure func(error) bool
	onChange  func(from, to State)
	now       func() time.Time
}

// New returns a breaker that opens once the failure ratio over the last
// window calls reaches ratio, and probes again after cooldown.
func New(window int, cooldown time.Duration, ratio float64, probes int, opts ...Option) CircuitBreaker {
	if window <= 0 {
		window = 1
	}
	b := &breaker{
		state:     Closed,
		window:    make([]bool, window),
		ratio:     ratio,
		cooldown:  cooldown,
		probes:    probes,
		isFailure: func(err error) bool { return err != nil },
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == Open {
		if b.now().Sub(b.openedAt) < b.cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.transition(HalfOpen)
	}
	b.mu.Unlock()

	err := fn()
	failed := err != nil && b.isFailure(err)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.record(failed)

	if b.state == HalfOpen {
		if failed {
			b.trip()
			return err
		}
		b.succeeded++
		if b.succeeded >= b.probes {
			b.reset()
		}
		return err
	}

	if failed && b.filled == len(b.window) && b.failureRatio() >= b.ratio {
		b.trip()
	}
	return err
}

func (b *breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *breaker) record(failed bool) {
	b.window[b.pos] = failed
	b.pos = (b.pos + 1) % len(b.window)
	if b.filled < len(b.window) {
		b.filled++
	}
}

func (b *breaker) failureRatio() float64 {
	fails := 0
	for _, f := range b.window {
		if f {
			fails++
		}
	}
	return float64(fails) / float64(len(b.window))
}

func (b *breaker) trip() {
	b.openedAt = b.now()
	b.succeeded = 0
	b.transition(Open)
}

func (b *breaker) reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.pos, b.filled, b.succeeded = 0, 0, 0
	b.transition(Closed)
}

func (b *breaker) transition(to State) {
	from := b.state
	b.state = to
	if from != to && b.onChange != nil {
		b.onChange(from, to)
	}
}
