package vector

import (
	"errors"
	"fmt"
)

const (
	DefaultMin int32 = 0
	DefaultMax int32 = 999
)

var (
	// ErrInvalidCount represents a negative element count.
	ErrInvalidCount = errors.New("invalid count")
	// ErrInvalidRange represents an empty or inverted [min, max) range.
	ErrInvalidRange = errors.New("invalid range")
)

// Source draws integers in [min, max).
type Source interface {
	Int32Range(min, max int32) int32
}

type Vector []int32

// Build returns count values drawn independently from r in [min, max).
func Build(r Source, count int, min, max int32) (Vector, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if max <= min {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}

	v := make(Vector, 0, count)
	for i := 0; i < count; i++ {
		v = append(v, r.Int32Range(min, max))
	}
	return v, nil
}

func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) Len() int {
	return len(v)
}
