package vector

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/bubble/prng"
)

// stepSource returns min, min+1, ... wrapping back to min at max.
type stepSource struct {
	i int32
}

func (s *stepSource) Int32Range(min, max int32) int32 {
	v := min + s.i%(max-min)
	s.i++
	return v
}

func TestBuild(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		count    int
		min, max int32
		want     Vector
		wantErr  error
	}{
		{name: "empty", count: 0, min: 0, max: 10, want: Vector{}},
		{name: "step", count: 5, min: 0, max: 3, want: Vector{0, 1, 2, 0, 1}},
		{name: "negative bounds", count: 3, min: -3, max: -1, want: Vector{-3, -2, -3}},
		{name: "negative count", count: -1, min: 0, max: 10, wantErr: ErrInvalidCount},
		{name: "equal bounds", count: 3, min: 5, max: 5, wantErr: ErrInvalidRange},
		{name: "inverted bounds", count: 3, min: 5, max: 1, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Build(&stepSource{}, tt.count, tt.min, tt.max)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected vector (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildBounds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		count    int
		min, max int32
	}{
		{count: 1, min: 0, max: 999},
		{count: 1_000, min: 0, max: 999},
		{count: 1_000, min: -10, max: 10},
		{count: 500, min: 7, max: 8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("", func(t *testing.T) {
			t.Parallel()
			r := prng.NewPseudoRand()
			r.Seed(uint32(tt.count))
			v, err := Build(r, tt.count, tt.min, tt.max)
			require.NoError(t, err)
			require.Len(t, v, tt.count)
			for i, x := range v {
				assert.GreaterOrEqual(t, x, tt.min, "index %d", i)
				assert.Less(t, x, tt.max, "index %d", i)
			}
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	v := Vector{3, 1, 2}
	c := v.Clone()
	c[0] = 9
	assert.Equal(t, Vector{3, 1, 2}, v)
	assert.Equal(t, 3, c.Len())
	assert.Nil(t, Vector(nil).Clone())
}
