package energy

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
)

// Linear is a piecewise-linear function over sorted, distinct nodes.
// Evaluation outside the node range is an error, never an extrapolation.
type Linear struct {
	xs []float64
	ys []float64
}

func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("x and y lengths differ: %d != %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 nodes, got %d", len(xs))
	}

	type node struct{ x, y float64 }
	nodes := make([]node, len(xs))
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, fmt.Errorf("non-finite node at position %d", i)
		}
		nodes[i] = node{xs[i], ys[i]}
	}
	slices.SortStableFunc(nodes, func(a, b node) int { return cmp.Compare(a.x, b.x) })

	l := &Linear{xs: make([]float64, len(nodes)), ys: make([]float64, len(nodes))}
	for i, n := range nodes {
		if i > 0 && n.x == nodes[i-1].x {
			return nil, fmt.Errorf("duplicate node at x=%g", n.x)
		}
		l.xs[i] = n.x
		l.ys[i] = n.y
	}
	return l, nil
}

func (l *Linear) Domain() (lo, hi float64) {
	return l.xs[0], l.xs[len(l.xs)-1]
}

func (l *Linear) At(x float64) (float64, error) {
	lo, hi := l.Domain()
	if math.IsNaN(x) || x < lo || x > hi {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, lo, hi)
	}
	i := sort.SearchFloat64s(l.xs, x)
	if l.xs[i] == x {
		return l.ys[i], nil
	}
	x0, x1 := l.xs[i-1], l.xs[i]
	y0, y1 := l.ys[i-1], l.ys[i]
	return y0 + (y1-y0)*(x-x0)/(x1-x0), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
