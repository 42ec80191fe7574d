package geom

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
	"golang.org/x/sync/errgroup"
)

// BoundarySet is a collection of disjoint boundary rings ("regions")
// evaluated as one constraint domain: each query point receives the signed
// distance to the region containing it, or a conservative smooth distance
// to the nearest region when it lies outside all of them.
//
// Region membership order is deterministic: rings are tested in the order
// they were passed to NewBoundarySet and the first ring containing a point
// wins. An R-tree over ring bounding boxes prefilters the candidate rings
// per point; since containment in a ring implies containment in its box,
// the prefilter never changes the outcome, only the work.
type BoundarySet struct {
	rings []Ring
	tree  rtree.RTreeG[int]
}

// NewBoundarySet builds a boundary set from one or more rings.
func NewBoundarySet(rings ...Ring) (*BoundarySet, error) {
	if len(rings) == 0 {
		return nil, ErrNoRegions
	}
	bs := &BoundarySet{rings: rings}
	for i, r := range rings {
		b := r.Bound()
		bs.tree.Insert([2]float64{b.Min[0], b.Min[1]}, [2]float64{b.Max[0], b.Max[1]}, i)
	}
	return bs, nil
}

// NumRegions returns the number of rings in the set.
func (bs *BoundarySet) NumRegions() int { return len(bs.rings) }

// Region returns the i-th ring.
func (bs *BoundarySet) Region(i int) Ring { return bs.rings[i] }

// Normals returns the inward edge normals of every ring, in region order.
func (bs *BoundarySet) Normals() [][]orb.Point {
	out := make([][]orb.Point, len(bs.rings))
	for i, r := range bs.rings {
		out[i] = r.Normals()
	}
	return out
}

// Distances evaluates the signed distance of every query point and reports
// the region each point was resolved against.
//
// Points inside some ring (first match in region order) get that ring's
// signed distance, ≤ opt.Tol. Points outside every ring get the soft-min
// of the per-region outside distances — positive, smooth, conservative —
// and are assigned the region of minimum plain distance.
//
// With opt.Workers > 1 the batch fans out across that many goroutines;
// outputs are index-aligned with pts regardless.
func (bs *BoundarySet) Distances(pts []orb.Point, opt Options) ([]float64, []int, error) {
	vals, _, regions, err := bs.eval(pts, nil, false, opt)
	return vals, regions, err
}

// Gradients is Distances plus the per-point gradient of the constraint
// value with respect to that point's coordinates.
func (bs *BoundarySet) Gradients(pts []orb.Point, opt Options) ([]float64, []orb.Point, []int, error) {
	return bs.eval(pts, nil, true, opt)
}

// DistancesAssigned evaluates each point against a previously assigned
// region, skipping membership dispatch entirely. The assignment usually
// comes from an earlier Distances call; pinning the region keeps the
// constraint value smooth while the optimizer moves points across region
// boundaries.
func (bs *BoundarySet) DistancesAssigned(pts []orb.Point, regions []int, opt Options) ([]float64, error) {
	vals, _, _, err := bs.eval(pts, regions, false, opt)
	return vals, err
}

// GradientsAssigned is DistancesAssigned plus per-point gradients.
func (bs *BoundarySet) GradientsAssigned(pts []orb.Point, regions []int, opt Options) ([]float64, []orb.Point, error) {
	vals, grads, _, err := bs.eval(pts, regions, true, opt)
	return vals, grads, err
}

// eval is the shared batch core. regions == nil requests dispatch;
// otherwise it pins each point to regions[i]. Assignment inputs are
// validated up front so shape errors surface deterministically before any
// work is spawned.
func (bs *BoundarySet) eval(pts []orb.Point, regions []int, wantGrad bool, opt Options) ([]float64, []orb.Point, []int, error) {
	opt = opt.withDefaults()

	if regions != nil {
		if len(regions) != len(pts) {
			return nil, nil, nil, ErrShapeMismatch
		}
		for _, ri := range regions {
			if ri < 0 || ri >= len(bs.rings) {
				return nil, nil, nil, ErrBadRegion
			}
		}
	}

	vals := make([]float64, len(pts))
	out := make([]int, len(pts))
	var grads []orb.Point
	if wantGrad {
		grads = make([]orb.Point, len(pts))
	}

	evalPoint := func(i int) {
		p := pts[i]
		switch {
		case regions != nil:
			out[i] = regions[i]
			bs.pinned(p, regions[i], i, wantGrad, opt, vals, grads)
		case len(bs.rings) == 1:
			out[i] = 0
			bs.pinned(p, 0, i, wantGrad, opt, vals, grads)
		default:
			bs.dispatch(p, i, wantGrad, opt, vals, grads, out)
		}
	}

	nw := opt.Workers
	if nw > len(pts) {
		nw = len(pts)
	}
	if nw <= 1 {
		for i := range pts {
			evalPoint(i)
		}
		return vals, grads, out, nil
	}

	var g errgroup.Group
	chunk := (len(pts) + nw - 1) / nw
	for w := 0; w < nw; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(pts) {
			hi = len(pts)
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				evalPoint(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return vals, grads, out, nil
}

// pinned evaluates one point against one fixed ring, writing slot i.
func (bs *BoundarySet) pinned(p orb.Point, ri, i int, wantGrad bool, opt Options, vals []float64, grads []orb.Point) {
	if wantGrad {
		vals[i], grads[i] = SignedDistanceGrad(p, bs.rings[ri], opt)
		return
	}
	vals[i] = SignedDistance(p, bs.rings[ri], opt)
}

// dispatch resolves one point with unknown region membership.
func (bs *BoundarySet) dispatch(p orb.Point, i int, wantGrad bool, opt Options, vals []float64, grads []orb.Point, out []int) {
	var candidates []int
	bs.tree.Search([2]float64{p[0], p[1]}, [2]float64{p[0], p[1]},
		func(_, _ [2]float64, ri int) bool {
			candidates = append(candidates, ri)
			return true
		})
	sort.Ints(candidates)

	for _, ri := range candidates {
		if sd := SignedDistance(p, bs.rings[ri], opt); sd <= opt.Tol {
			out[i] = ri
			if wantGrad {
				vals[i], grads[i] = SignedDistanceGrad(p, bs.rings[ri], opt)
			} else {
				vals[i] = sd
			}
			return
		}
	}

	// Outside every region: combine the per-region outside distances into
	// one smooth conservative value; assign the closest region.
	ds := make([]float64, len(bs.rings))
	var gs []orb.Point
	if wantGrad {
		gs = make([]orb.Point, len(bs.rings))
	}
	argmin := 0
	for ri, ring := range bs.rings {
		if wantGrad {
			ds[ri], gs[ri] = SignedDistanceGrad(p, ring, opt)
		} else {
			ds[ri] = SignedDistance(p, ring, opt)
		}
		if ds[ri] < ds[argmin] {
			argmin = ri
		}
	}
	out[i] = argmin

	if !wantGrad {
		vals[i] = SmoothMin(ds, opt.Sharpness)
		return
	}
	coeffs := make([]float64, len(ds))
	f, _ := smoothMinCoeffs(ds, opt.Sharpness, coeffs)
	vals[i] = f
	var gx, gy float64
	for ri := range ds {
		gx += coeffs[ri] * gs[ri][0]
		gy += coeffs[ri] * gs[ri][1]
	}
	grads[i] = orb.Point{gx, gy}
}

// PointsXY zips parallel coordinate arrays into points.
func PointsXY(xs, ys []float64) ([]orb.Point, error) {
	if len(xs) != len(ys) {
		return nil, ErrShapeMismatch
	}
	pts := make([]orb.Point, len(xs))
	for i := range xs {
		pts[i] = orb.Point{xs[i], ys[i]}
	}
	return pts, nil
}
