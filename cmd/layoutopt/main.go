// Command layoutopt runs a small end-to-end layout optimization: it places
// a structured starting grid, wires every turbine to its nearest substation
// through a stand-in routing solver, and descends total cable length plus a
// boundary penalty with L-BFGS, using the analytic gradients of both
// engines. Iterations land in a JSONL archive and the final layout in a
// figure.
//
// The built-in routing is deliberately naive (a star per substation): the
// production topology solver is an external collaborator, and this binary
// only demonstrates the surrounding machinery.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/optimize"

	"github.com/skagerrak/windplan/collection"
	"github.com/skagerrak/windplan/config"
	"github.com/skagerrak/windplan/cost"
	"github.com/skagerrak/windplan/geom"
	"github.com/skagerrak/windplan/layout"
	"github.com/skagerrak/windplan/recorder"
	"github.com/skagerrak/windplan/viz"
)

func main() {
	var (
		casePath = flag.String("case", "", "design case YAML (built-in demo case when empty)")
		outDir   = flag.String("out", ".", "output directory for archive and figure")
		iters    = flag.Int("iters", 50, "L-BFGS major iteration cap")
		penalty  = flag.Float64("penalty", 1e3, "boundary violation penalty weight")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *casePath, *outDir, *iters, *penalty); err != nil {
		log.Error("layoutopt failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, casePath, outDir string, iters int, penalty float64) error {
	c, err := loadCase(casePath)
	if err != nil {
		return err
	}
	log.Info("design case loaded",
		"turbine", c.Turbine.Name,
		"n_turbines", c.Farm.NTurbines,
		"substations", len(c.Farm.Substations))

	// Starting layout: the smallest square grid holding the farm, at 7D.
	side := int(math.Ceil(math.Sqrt(float64(c.Farm.NTurbines))))
	farm, err := layout.Grid(side, side, layout.GridSpec{
		SpacingPrimary:   7 * c.Turbine.RotorDiameter,
		SpacingSecondary: 7 * c.Turbine.RotorDiameter,
	})
	if err != nil {
		return err
	}
	xt := farm.X[:c.Farm.NTurbines]
	yt := farm.Y[:c.Farm.NTurbines]

	xs := make([]float64, len(c.Farm.Substations))
	ys := make([]float64, len(c.Farm.Substations))
	for i, s := range c.Farm.Substations {
		xs[i], ys[i] = s.X, s.Y
	}

	bounds, err := boundarySet(c.Farm)
	if err != nil {
		return err
	}

	rec, err := recorder.Create(filepath.Join(outDir, "iterations.jsonl"), c.Turbine.Name)
	if err != nil {
		return err
	}
	defer rec.Close()
	log.Info("recording run", "run_id", rec.RunID())

	obj := &objective{
		xs: xs, ys: ys,
		solver:       starSolver{},
		maxPerString: c.Farm.MaxTurbinesPerString,
		bounds:       bounds,
		opt:          geom.DefaultOptions(),
		penalty:      penalty,
		rec:          rec,
		log:          log,
	}

	x0 := packCoords(xt, yt)
	problem := optimize.Problem{Func: obj.value, Grad: obj.gradient}
	result, err := optimize.Minimize(problem, x0, &optimize.Settings{
		MajorIterations: iters,
	}, &optimize.LBFGS{})
	if err != nil {
		return fmt.Errorf("minimize: %w", err)
	}
	log.Info("optimization finished",
		"status", result.Status.String(),
		"evaluations", result.FuncEvaluations,
		"objective", result.F)

	xt, yt = unpackCoords(result.X)
	ev, err := obj.evaluate(xt, yt)
	if err != nil {
		return err
	}
	return report(log, c, outDir, xt, yt, xs, ys, bounds, ev)
}

// loadCase reads the design case, falling back to a built-in demo farm.
func loadCase(path string) (config.Case, error) {
	if path != "" {
		return config.Load(path)
	}
	demo := config.Case{
		Turbine: config.Turbine{
			Name:          "demo-3.4MW",
			RotorDiameter: 130,
			HubHeight:     110,
			RatedPowerKW:  3400,
			TCCPerKW:      1100,
			OffsetTCC:     50,
			OpexPerKW:     40,
		},
		Farm: config.Farm{
			NTurbines:            25,
			MaxTurbinesPerString: 8,
			Substations: []config.Substation{
				{X: -500, Y: -500},
				{X: 500, Y: 500},
			},
			Boundaries: []config.Polygon{{
				X: []float64{-2600, 2600, 2600, -2600},
				Y: []float64{-2600, -2600, 2600, 2600},
			}},
		},
	}
	if err := demo.Turbine.Validate(); err != nil {
		return config.Case{}, err
	}
	return demo, demo.Farm.Validate()
}

func boundarySet(farm config.Farm) (*geom.BoundarySet, error) {
	rings := make([]geom.Ring, 0, len(farm.Boundaries))
	for _, p := range farm.Boundaries {
		r, err := geom.NewRingXY(p.X, p.Y)
		if err != nil {
			return nil, err
		}
		rings = append(rings, r)
	}
	return geom.NewBoundarySet(rings...)
}

// evaluation bundles everything one coordinate vector produced.
type evaluation struct {
	ex    *collection.Extraction
	grad  collection.Gradient
	phys  *collection.Physical
	total float64
}

// objective is the penalized design objective: total cable length plus a
// quadratic penalty on boundary violations. It caches the last evaluation
// so Func and Grad at the same point cost one extraction.
type objective struct {
	xs, ys       []float64
	solver       collection.Solver
	maxPerString int
	bounds       *geom.BoundarySet
	opt          geom.Options
	penalty      float64

	rec  *recorder.Recorder
	log  *slog.Logger
	iter int

	lastX []float64
	last  *evaluation
}

// evaluate runs the stand-in solver and the extraction engine at (xt, yt).
func (o *objective) evaluate(xt, yt []float64) (*evaluation, error) {
	solved, links, phys, err := o.solver.Solve(xt, yt, o.xs, o.ys, o.maxPerString)
	if err != nil {
		return nil, err
	}
	ex, err := collection.Extract(solved, links, phys)
	if err != nil {
		return nil, err
	}
	coords, err := collection.NewCoordinates(xt, yt, o.xs, o.ys)
	if err != nil {
		return nil, err
	}
	grad, err := collection.TotalLengthGradient(phys, coords)
	if err != nil {
		return nil, err
	}
	return &evaluation{ex: ex, grad: grad, phys: phys, total: ex.TotalLength}, nil
}

// at returns the cached evaluation for x, recomputing on a new point.
// Evaluation failures are fatal by design: a bad extraction invalidates the
// whole iteration, so the optimizer is stopped by panic rather than fed
// garbage.
func (o *objective) at(x []float64) *evaluation {
	if o.last != nil && equal(o.lastX, x) {
		return o.last
	}
	xt, yt := unpackCoords(x)
	ev, err := o.evaluate(xt, yt)
	if err != nil {
		panic(fmt.Sprintf("layoutopt: evaluation failed: %v", err))
	}
	o.lastX = append(o.lastX[:0], x...)
	o.last = ev
	return ev
}

func (o *objective) value(x []float64) float64 {
	ev := o.at(x)
	xt, yt := unpackCoords(x)
	pts, err := geom.PointsXY(xt, yt)
	if err != nil {
		panic(fmt.Sprintf("layoutopt: %v", err))
	}
	vals, _, err := o.bounds.Distances(pts, o.opt)
	if err != nil {
		panic(fmt.Sprintf("layoutopt: %v", err))
	}

	var pen, worst float64
	for _, d := range vals {
		if d > 0 {
			pen += d * d
			worst = math.Max(worst, d)
		}
	}
	f := ev.total + o.penalty*pen

	if err := o.rec.Record(recorder.Iteration{
		Index:       o.iter,
		Objective:   f,
		TotalLength: ev.total,
		MaxLoad:     ev.ex.MaxLoad,
		Violation:   worst,
	}); err != nil {
		o.log.Warn("record failed", "err", err)
	}
	o.iter++
	return f
}

func (o *objective) gradient(grad, x []float64) {
	ev := o.at(x)
	xt, yt := unpackCoords(x)
	pts, err := geom.PointsXY(xt, yt)
	if err != nil {
		panic(fmt.Sprintf("layoutopt: %v", err))
	}
	vals, gs, _, err := o.bounds.Gradients(pts, o.opt)
	if err != nil {
		panic(fmt.Sprintf("layoutopt: %v", err))
	}

	gx := ev.grad.TurbineX()
	gy := ev.grad.TurbineY()
	for i := range xt {
		dx, dy := gx[i], gy[i]
		if vals[i] > 0 {
			dx += o.penalty * 2 * vals[i] * gs[i][0]
			dy += o.penalty * 2 * vals[i] * gs[i][1]
		}
		grad[2*i] = dx
		grad[2*i+1] = dy
	}
}

// starSolver is the stand-in topology solver: every turbine becomes its
// own string on the nearest substation, which trivially satisfies any
// capacity limit. Substation array index k maps to solver node k−R,
// matching the coordinate table's negative indexing.
type starSolver struct{}

var _ collection.Solver = starSolver{}

func (starSolver) Solve(xt, yt, xs, ys []float64, _ int) (*collection.Solved, *collection.CandidateLinks, *collection.Physical, error) {
	r := len(xs)
	edges := make([]collection.Edge, 0, len(xt))
	links := collection.NewCandidateLinks()
	phys := collection.NewPhysical()

	for i := range xt {
		best, bestD := 0, math.Inf(1)
		for k := range xs {
			d := math.Hypot(xt[i]-xs[k], yt[i]-ys[k])
			if d < bestD {
				best, bestD = k, d
			}
		}
		node := best - r
		edges = append(edges, collection.Edge{U: node, V: i, Load: 1, Reverse: true})
		links.SetRootDistance(i, node, bestD)
		phys.AddEdge(node, i, bestD, 1)
	}

	solved, err := collection.NewSolved(len(xt), r, edges)
	if err != nil {
		return nil, nil, nil, err
	}
	return solved, links, phys, nil
}

func report(log *slog.Logger, c config.Case, outDir string, xt, yt, xs, ys []float64, bounds *geom.BoundarySet, ev *evaluation) error {
	spec := cost.TurbineSpec{
		RatingKW:      c.Turbine.RatedPowerKW,
		RotorDiameter: c.Turbine.RotorDiameter,
		TCCPerKW:      c.Turbine.TCCPerKW,
		OffsetTCC:     c.Turbine.OffsetTCC,
		OpexPerKW:     c.Turbine.OpexPerKW,
	}
	tcc, err := cost.TurbineCapitalCost(len(xt), spec)
	if err != nil {
		return err
	}
	opex, err := cost.OperatingExpenses(len(xt), spec)
	if err != nil {
		return err
	}
	surrogate, err := cost.NewSpacingSurrogate(len(xt), c.Turbine.RotorDiameter)
	if err != nil {
		return err
	}
	log.Info("farm outputs",
		"total_length_cables_m", ev.total,
		"max_load_cables", ev.ex.MaxLoad,
		"spacing_diameters", surrogate.Spacing(ev.total),
		"tcc_usd", tcc,
		"opex_usd_yr", opex)

	coords, err := collection.NewCoordinates(xt, yt, xs, ys)
	if err != nil {
		return err
	}
	cables, err := viz.CableSegments(ev.ex, coords)
	if err != nil {
		return err
	}
	rings := make([]geom.Ring, bounds.NumRegions())
	for i := range rings {
		rings[i] = bounds.Region(i)
	}
	figure := filepath.Join(outDir, "layout.png")
	if err := viz.Render(figure, viz.Spec{
		Title:        c.Turbine.Name,
		Boundaries:   rings,
		XTurbines:    xt,
		YTurbines:    yt,
		XSubstations: xs,
		YSubstations: ys,
		Cables:       cables,
	}); err != nil {
		return err
	}
	log.Info("layout rendered", "path", figure)
	return nil
}

func packCoords(x, y []float64) []float64 {
	out := make([]float64, 2*len(x))
	for i := range x {
		out[2*i] = x[i]
		out[2*i+1] = y[i]
	}
	return out
}

func unpackCoords(v []float64) (x, y []float64) {
	n := len(v) / 2
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = v[2*i]
		y[i] = v[2*i+1]
	}
	return x, y
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
