package lasso

import (
	"math"

	"go.uber.org/zap"

	"SketchBoard/internal/state"
)

// MinArea is the smallest net enclosed area, in square surface units, of a
// lasso that is merged into the selection. Area is signed, so a figure-eight
// whose lobes wind in opposite directions nets close to zero and is ignored
// along with near-stationary gestures.
const MinArea = 0.5

// Accumulator owns the selection region. Each commit replaces the region
// with a new value; the previous one is never modified.
type Accumulator struct {
	region Region
	log    *zap.Logger
}

func NewAccumulator(log *zap.Logger) *Accumulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Accumulator{log: log}
}

// Region returns the current selection, possibly empty.
func (a *Accumulator) Region() Region { return a.region }

// Commit merges a closed lasso ring into the selection and returns the new
// selection. Degenerate rings, rings with no net area and failed unions
// leave it unchanged.
func (a *Accumulator) Commit(pg state.Polygon) Region {
	if pg.Distinct() < 3 {
		a.log.Warn("ignoring degenerate lasso", zap.Int("vertices", len(pg)))
		return a.region
	}
	if area := math.Abs(pg.Area()); area < MinArea {
		a.log.Warn("ignoring lasso without net area",
			zap.Int("vertices", len(pg)),
			zap.Float64("area", area),
		)
		return a.region
	}

	next := NewRegion(pg)
	if a.region.Empty() {
		a.region = next
		a.logCommit()
		return a.region
	}

	u, ok := Union(a.region, next)
	if !ok {
		a.log.Warn("lasso union failed, keeping previous selection", zap.Stringer("region", a.region))
		return a.region
	}
	a.region = u
	a.logCommit()
	return a.region
}

func (a *Accumulator) logCommit() {
	a.log.Info("selection updated",
		zap.Int("contours", len(a.region.poly)),
		zap.Float64("area", a.region.Area()),
	)
}
