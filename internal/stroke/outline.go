// Package stroke turns pointer samples into a filled brush silhouette.
//
// Outline simulates pen pressure from sample spacing and offsets the smoothed
// centerline on both sides, producing a closed polygon (left rail forward,
// end cap, right rail backward, start cap). ToSmoothPath rounds that polygon
// into quadratic curves for filling.
package stroke

import (
	"math"

	"SketchBoard/internal/state"
)

const (
	pressureRate = 0.275
	// slightly more than pi so a half turn fully covers the seam
	fixedPi = math.Pi + 0.0001

	startCapSteps = 13
	endCapSteps   = 29
	cornerSteps   = 13
	endNoise      = 3.0
)

// Cap describes how one end of a stroke is finished.
type Cap struct {
	Cap    bool
	Taper  float64
	Easing Easing
}

// Options control the outline. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Size             float64
	Thinning         float64
	Smoothing        float64
	Streamline       float64
	Easing           Easing
	SimulatePressure bool
	// Last marks the samples as a complete stroke: the final sample is kept
	// exactly and a single sample still yields a dot.
	Last  bool
	Start Cap
	End   Cap
}

// DefaultOptions is the brush used by the draw tool.
func DefaultOptions() Options {
	return Options{
		Size:             8,
		Thinning:         0.5,
		Smoothing:        0.5,
		Streamline:       0.5,
		Easing:           Linear,
		SimulatePressure: true,
		Last:             true,
		Start:            Cap{Cap: true, Easing: Linear},
		End:              Cap{Cap: true, Easing: Linear},
	}
}

type strokePoint struct {
	point         state.Point
	pressure      float64
	vector        state.Point
	distance      float64
	runningLength float64
}

// Outline computes the closed outline polygon for samples. It always works
// from the full sample history; an empty input gives an empty outline.
func Outline(samples []state.Point, o Options) state.Polygon {
	return outlinePoints(strokePoints(samples, o), o)
}

func strokePoints(samples []state.Point, o Options) []strokePoint {
	if len(samples) == 0 {
		return nil
	}
	t := 0.15 + (1-o.Streamline)*0.85

	pts := append([]state.Point(nil), samples...)
	switch len(pts) {
	case 1:
		pts = append(pts, pts[0].Add(state.Pt(1, 1)))
	case 2:
		last := pts[1]
		pts = pts[:1]
		for i := 1; i < 5; i++ {
			pts = append(pts, pts[0].Lerp(last, float64(i)/4))
		}
	}

	out := []strokePoint{{point: pts[0], pressure: 0.5, vector: state.Pt(1, 1)}}
	prev := out[0]
	reachedMin := false
	running := 0.0
	lastIdx := len(pts) - 1
	for i := 1; i < len(pts); i++ {
		var p state.Point
		if o.Last && i == lastIdx {
			p = pts[i]
		} else {
			p = prev.point.Lerp(pts[i], t)
		}
		if p.Eq(prev.point) {
			continue
		}
		d := p.Dist(prev.point)
		running += d
		if i < lastIdx && !reachedMin {
			if running < o.Size {
				continue
			}
			reachedMin = true
		}
		prev = strokePoint{
			point:         p,
			pressure:      0.5,
			vector:        unit(prev.point.Sub(p)),
			distance:      d,
			runningLength: running,
		}
		out = append(out, prev)
	}
	if len(out) > 1 {
		out[0].vector = out[1].vector
	} else {
		out[0].vector = state.Point{}
	}
	return out
}

func radius(size, thinning, pressure float64, ease Easing) float64 {
	return size * ease(0.5-thinning*(0.5-pressure))
}

func simulated(prev, distance, size float64) float64 {
	sp := math.Min(1, distance/size)
	rp := math.Min(1, 1-sp)
	return math.Min(1, prev+(rp-prev)*(sp*pressureRate))
}

func taper(c Cap) float64 {
	if c.Taper < 0 {
		return 0
	}
	return c.Taper
}

func outlinePoints(pts []strokePoint, o Options) state.Polygon {
	if len(pts) == 0 || o.Size <= 0 {
		return nil
	}
	ease := o.Easing
	if ease == nil {
		ease = Linear
	}
	startEase := o.Start.Easing
	if startEase == nil {
		startEase = EaseOutQuad
	}
	endEase := o.End.Easing
	if endEase == nil {
		endEase = EaseOutCubic
	}

	n := len(pts)
	total := pts[n-1].runningLength
	taperStart := taper(o.Start)
	taperEnd := taper(o.End)
	minDistance := math.Pow(o.Size*o.Smoothing, 2)

	prevPressure := pts[0].pressure
	for _, p := range pts[:min(n, 10)] {
		pressure := p.pressure
		if o.SimulatePressure {
			pressure = simulated(prevPressure, p.distance, o.Size)
		}
		prevPressure = (prevPressure + pressure) / 2
	}

	r := radius(o.Size, o.Thinning, pts[n-1].pressure, ease)
	firstRadius := -1.0
	prevVector := pts[0].vector
	pl, pr := pts[0].point, pts[0].point
	tl, tr := pl, pr
	prevSharp := false

	var left, right state.Polygon
	for i, sp := range pts {
		pressure := sp.pressure
		if i < n-1 && total-sp.runningLength < endNoise {
			continue
		}

		if o.Thinning != 0 {
			if o.SimulatePressure {
				pressure = simulated(prevPressure, sp.distance, o.Size)
			}
			r = radius(o.Size, o.Thinning, pressure, ease)
		} else {
			r = o.Size / 2
		}
		if firstRadius < 0 {
			firstRadius = r
		}

		ts, te := 1.0, 1.0
		if sp.runningLength < taperStart {
			ts = startEase(sp.runningLength / taperStart)
		}
		if total-sp.runningLength < taperEnd {
			te = endEase((total - sp.runningLength) / taperEnd)
		}
		r = math.Max(0.01, r*math.Min(ts, te))

		nextVector := sp.vector
		nextDpr := 1.0
		if i < n-1 {
			nextVector = pts[i+1].vector
			nextDpr = sp.vector.Dot(nextVector)
		}
		prevDpr := sp.vector.Dot(prevVector)
		sharp := prevDpr < 0 && !prevSharp
		nextSharp := nextDpr < 0

		if sharp || nextSharp {
			offset := perp(prevVector).Mul(r)
			for k := 0; k <= cornerSteps; k++ {
				t := float64(k) / cornerSteps
				tl = rotateAround(sp.point.Sub(offset), sp.point, fixedPi*t)
				left = append(left, tl)
				tr = rotateAround(sp.point.Add(offset), sp.point, -fixedPi*t)
				right = append(right, tr)
			}
			pl, pr = tl, tr
			if nextSharp {
				prevSharp = true
			}
			continue
		}
		prevSharp = false

		if i == n-1 {
			offset := perp(sp.vector).Mul(r)
			left = append(left, sp.point.Sub(offset))
			right = append(right, sp.point.Add(offset))
			continue
		}

		offset := perp(nextVector.Lerp(sp.vector, nextDpr)).Mul(r)
		tl = sp.point.Sub(offset)
		if i <= 1 || pl.Dist2(tl) > minDistance {
			left = append(left, tl)
			pl = tl
		}
		tr = sp.point.Add(offset)
		if i <= 1 || pr.Dist2(tr) > minDistance {
			right = append(right, tr)
			pr = tr
		}
		prevPressure = pressure
		prevVector = sp.vector
	}

	first := pts[0].point
	last := first.Add(state.Pt(1, 1))
	if n > 1 {
		last = pts[n-1].point
	}

	if n == 1 {
		if (taperStart == 0 && taperEnd == 0) || o.Last {
			if firstRadius < 0 {
				firstRadius = r
			}
			start := first.Add(unit(perp(first.Sub(last))).Mul(-firstRadius))
			dot := make(state.Polygon, 0, startCapSteps)
			for k := 1; k <= startCapSteps; k++ {
				dot = append(dot, rotateAround(start, first, fixedPi*2*float64(k)/startCapSteps))
			}
			return dot
		}
		return append(left, reversed(right)...)
	}

	var startCap state.Polygon
	switch {
	case taperStart > 0:
	case o.Start.Cap:
		for k := 1; k <= startCapSteps; k++ {
			startCap = append(startCap, rotateAround(right[0], first, fixedPi*float64(k)/startCapSteps))
		}
	default:
		corners := left[0].Sub(right[0])
		a, b := corners.Mul(0.5), corners.Mul(0.51)
		startCap = append(startCap, first.Sub(a), first.Sub(b), first.Add(b), first.Add(a))
	}

	var endCap state.Polygon
	direction := perp(pts[n-1].vector.Mul(-1))
	switch {
	case taperEnd > 0:
		endCap = append(endCap, last)
	case o.End.Cap:
		start := last.Add(direction.Mul(r))
		for k := 1; k < endCapSteps; k++ {
			endCap = append(endCap, rotateAround(start, last, fixedPi*3*float64(k)/endCapSteps))
		}
	default:
		endCap = append(endCap,
			last.Add(direction.Mul(r)),
			last.Add(direction.Mul(r*0.99)),
			last.Sub(direction.Mul(r*0.99)),
			last.Sub(direction.Mul(r)),
		)
	}

	out := make(state.Polygon, 0, len(left)+len(endCap)+len(right)+len(startCap))
	out = append(out, left...)
	out = append(out, endCap...)
	out = append(out, reversed(right)...)
	out = append(out, startCap...)
	return out
}

func perp(p state.Point) state.Point { return state.Pt(p.Y, -p.X) }

func unit(p state.Point) state.Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Mul(1 / l)
}

func rotateAround(p, c state.Point, rad float64) state.Point {
	s, co := math.Sincos(rad)
	d := p.Sub(c)
	return state.Pt(d.X*co-d.Y*s+c.X, d.X*s+d.Y*co+c.Y)
}

func reversed(pts state.Polygon) state.Polygon {
	out := make(state.Polygon, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
