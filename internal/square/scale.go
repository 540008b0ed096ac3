package square

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/squarefx/internal/config"
)

var ErrScaleOutOfRange = errors.New("initial scale must be between 0 and 100")

// Scale is an observable percentage clamped to [config.ScaleMin, config.ScaleMax].
type Scale struct {
	value       float64
	subscribers []func(float64)
}

// NewScale returns a Scale starting at initial. When initial is out of range
// the Scale starts at config.DefaultScale and ErrScaleOutOfRange is returned
// alongside it, so callers always get a usable control.
func NewScale(initial float64) (*Scale, error) {
	if initial < config.ScaleMin || initial > config.ScaleMax || math.IsNaN(initial) {
		s := &Scale{value: config.DefaultScale}
		return s, fmt.Errorf("%w: got %g, using %d", ErrScaleOutOfRange, initial, config.DefaultScale)
	}
	return &Scale{value: initial}, nil
}

func (s *Scale) Value() float64 { return s.value }

// Set clamps v and notifies subscribers if the value changed.
func (s *Scale) Set(v float64) {
	v = clampPercent(v)
	if v == s.value {
		return
	}
	s.value = v
	for _, fn := range s.subscribers {
		fn(v)
	}
}

// Subscribe registers fn and calls it once with the current value.
func (s *Scale) Subscribe(fn func(float64)) {
	s.subscribers = append(s.subscribers, fn)
	fn(s.value)
}

// Factor is the uniform scale factor for a percentage.
func Factor(percent float64) float64 {
	return percent / 100
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < config.ScaleMin {
		return config.ScaleMin
	}
	if v > config.ScaleMax {
		return config.ScaleMax
	}
	return v
}
