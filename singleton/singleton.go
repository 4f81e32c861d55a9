// Package singleton holds a lazily constructed shared value using
// double-checked locking.
//
// The published pointer lives in an atomic cell. Readers that observe it as
// non-nil never take the lock, and because the store that publishes it
// happens after the constructor returns, they always see a fully built value.
package singleton

import (
	"fmt"
	"sync"

	"github.com/hnhuaxi/lazysingleton"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

type Ctor[T any] func() (*T, error)

type Holder[T any] struct {
	mu        sync.Mutex
	instance  atomic.Pointer[T]
	creations atomic.Int64
	attempts  atomic.Int64
	ctor      Ctor[T]
	opts      Option
}

func New[T any](ctor Ctor[T], ops ...OptionFunc) *Holder[T] {
	var opts Option
	for _, op := range ops {
		op(&opts)
	}

	return &Holder[T]{
		ctor:   ctor,
		opts:   opts,
	}
}

func (h *Holder[T]) log() lazysingleton.LoggerAdapter {
	if h.opts.Log != nil {
		return h.opts.Log
	}

	return lazysingleton.Logger()
}

// Get returns the shared value, constructing it on the first call. A failed
// construction publishes nothing, so the next call tries again.
func (h *Holder[T]) Get() (*T, error) {
	if v := h.instance.Load(); v != nil {
		return v, nil
	}

	return h.getSlow()
}

func (h *Holder[T]) getSlow() (*T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// another caller may have finished construction while we waited
	if v := h.instance.Load(); v != nil {
		return v, nil
	}

	v, err := h.construct()
	if err != nil {
		h.log().Error("construct instance", err, lazysingleton.LogFields{
			"attempt": h.attempts.Load(),
		})
		return nil, err
	}

	n := h.creations.Inc()
	if h.opts.OnCreate != nil {
		h.opts.OnCreate(n)
	}

	h.instance.Store(v)
	h.log().Debug("instance created", lazysingleton.LogFields{
		"creations": n,
		"attempts":  h.attempts.Load(),
	})

	return v, nil
}

func (h *Holder[T]) construct() (v *T, err error) {
	h.attempts.Inc()

	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("%w: %w", lazysingleton.ErrConstruct, errors.Errorf("panic: %v", r))
		}
	}()

	if v, err = h.ctor(); err != nil {
		return nil, fmt.Errorf("%w: %w", lazysingleton.ErrConstruct, err)
	}

	if v == nil {
		return nil, fmt.Errorf("%w: %w", lazysingleton.ErrConstruct, errors.WithStack(lazysingleton.ErrNilInstance))
	}

	return v, nil
}

// MustGet is like Get but panics if construction fails.
func (h *Holder[T]) MustGet() *T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// Loaded reports whether the value has been published. It never blocks.
func (h *Holder[T]) Loaded() bool {
	return h.instance.Load() != nil
}

// Creations is the number of successful constructions, 0 or 1.
func (h *Holder[T]) Creations() int64 {
	return h.creations.Load()
}

// Attempts counts constructor calls including failed ones.
func (h *Holder[T]) Attempts() int64 {
	return h.attempts.Load()
}
