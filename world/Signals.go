package world

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSignal is returned when a signal has not been produced
	// by any base signal provider
	ErrMissingSignal = errors.New("signal missing")

	// ErrSignalType is returned when a signal has a type that cannot be
	// interpreted as requested
	ErrSignalType = errors.New("signal has wrong type")
)

// Signals is the set of named signals produced at a single step. Base
// signal providers fill Signals with booleans and numbers, and reward
// functors may add diagnostic entries of their own.
type Signals map[string]interface{}

// Bool returns the boolean signal stored under key
func (s Signals) Bool(key string) (bool, error) {
	v, ok := s[key]
	if !ok {
		return false, fmt.Errorf("bool %q: %w", key, ErrMissingSignal)
	}

	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("bool %q: %w: have %T", key, ErrSignalType,
			v)
	}
	return b, nil
}

// Float returns the numeric signal stored under key. Any integer or
// floating point type is accepted.
func (s Signals) Float(key string) (float64, error) {
	v, ok := s[key]
	if !ok {
		return 0, fmt.Errorf("float %q: %w", key, ErrMissingSignal)
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("float %q: %w: have %T", key, ErrSignalType, v)
}

// Clone returns a shallow copy of s
func (s Signals) Clone() Signals {
	c := make(Signals, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Merge writes every entry of update into dst and returns dst. On a key
// collision the value from update wins, so merging the updates of an
// ordered sequence of functors one after the other leaves the value of
// the last functor that wrote each key. A nil dst is allocated.
func Merge(dst, update Signals) Signals {
	if dst == nil {
		dst = make(Signals, len(update))
	}
	for k, v := range update {
		dst[k] = v
	}
	return dst
}
