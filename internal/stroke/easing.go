package stroke

import (
	"fmt"
	"sort"
)

// Easing maps t in [0,1] onto [0,1].
type Easing func(t float64) float64

func Linear(t float64) float64      { return t }
func EaseInQuad(t float64) float64  { return t * t }
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

var easings = map[string]Easing{
	"linear":        Linear,
	"easeInQuad":    EaseInQuad,
	"easeOutQuad":   EaseOutQuad,
	"easeInOutQuad": EaseInOutQuad,
	"easeOutCubic":  EaseOutCubic,
}

// EasingByName looks up a named easing curve. The empty name is linear.
func EasingByName(name string) (Easing, error) {
	if name == "" {
		return Linear, nil
	}
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (have %v)", name, EasingNames())
	}
	return e, nil
}

func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
