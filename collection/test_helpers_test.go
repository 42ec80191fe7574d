package collection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// farmFixture accumulates a consistent solver output: the solved edge list,
// the candidate/root length tables, and the realized physical graph, all
// priced with straight-line distances between the stored coordinates.
type farmFixture struct {
	xt, yt []float64
	xs, ys []float64
	edges  []Edge
	links  *CandidateLinks
	phys   *Physical
}

func newFarmFixture(xt, yt, xs, ys []float64) *farmFixture {
	return &farmFixture{
		xt: xt, yt: yt, xs: xs, ys: ys,
		links: NewCandidateLinks(),
		phys:  NewPhysical(),
	}
}

// xy resolves a node index: negative substations count back from the end of
// the substation arrays, matching the coordinate-table convention.
func (f *farmFixture) xy(node int) (float64, float64) {
	if node < 0 {
		i := len(f.xs) + node
		return f.xs[i], f.ys[i]
	}
	return f.xt[node], f.yt[node]
}

func (f *farmFixture) dist(a, b int) float64 {
	ax, ay := f.xy(a)
	bx, by := f.xy(b)
	return math.Hypot(ax-bx, ay-by)
}

// addString wires one cable string into the fixture. chain[0] is the head
// turbine feeding root directly; successive entries chain outward, so the
// edge leaving chain[k] carries the len(chain)-k turbines behind it.
func (f *farmFixture) addString(root int, chain []int) {
	n := len(chain)
	head := chain[0]
	fd := f.dist(root, head)
	f.edges = append(f.edges, Edge{U: root, V: head, Load: n, Reverse: true})
	f.links.SetRootDistance(head, root, fd)
	f.phys.AddEdge(root, head, fd, n)

	for k := 1; k < n; k++ {
		child, parent := chain[k], chain[k-1]
		d := f.dist(child, parent)
		load := n - k
		f.edges = append(f.edges, Edge{U: parent, V: child, Load: load, Reverse: child > parent})
		f.links.SetLength(child, parent, d)
		f.phys.AddEdge(child, parent, d, load)
	}
}

func (f *farmFixture) solved(t *testing.T) *Solved {
	t.Helper()
	s, err := NewSolved(len(f.xt), len(f.xs), f.edges)
	require.NoError(t, err)
	return s
}

// gridFarm is a 5×5 turbine grid at 7-rotor-diameter spacing (130 m rotor)
// with substations at (-500,-500) and (500,500), wired as four strings of
// at most 7 turbines.
func gridFarm() *farmFixture {
	const rotor = 130.0
	spacing := 7 * rotor
	var xt, yt []float64
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			xt = append(xt, spacing*(float64(c)-2))
			yt = append(yt, spacing*(float64(r)-2))
		}
	}
	f := newFarmFixture(xt, yt, []float64{-500, 500}, []float64{-500, 500})
	f.addString(-2, []int{6, 5, 0, 1, 2, 3, 4})
	f.addString(-2, []int{7, 8, 9, 14, 13, 12})
	f.addString(-1, []int{17, 16, 15, 10, 11})
	f.addString(-1, []int{18, 19, 24, 23, 22, 21, 20})
	return f
}

// pentagonFarm is five turbines on a regular pentagon of radius 7×130 m
// around a single substation at the origin, each one its own string.
func pentagonFarm() *farmFixture {
	radius := 7 * 130.0
	var xt, yt []float64
	for i := 0; i < 5; i++ {
		a := 2 * math.Pi * float64(i) / 5
		xt = append(xt, radius*math.Cos(a))
		yt = append(yt, radius*math.Sin(a))
	}
	f := newFarmFixture(xt, yt, []float64{0}, []float64{0})
	for i := 0; i < 5; i++ {
		f.addString(-1, []int{i})
	}
	return f
}

// detourFarm is two chained turbines whose feeder is physically realized
// through relays 2 and 3: -1 — 3 — 2 — 0, with turbine 1 behind turbine 0.
// The logical feeder edge still reads (-1, 0).
func detourFarm() *farmFixture {
	f := newFarmFixture([]float64{0, 910}, []float64{0, 0}, []float64{-900}, []float64{-300})
	f.edges = append(f.edges,
		Edge{U: -1, V: 0, Load: 2, Reverse: true},
		Edge{U: 0, V: 1, Load: 1, Reverse: true},
	)
	f.links.SetLength(0, 1, f.dist(0, 1))
	f.phys.AddEdge(0, 2, 350, 2)
	f.phys.AddEdge(2, 3, 420, 2)
	f.phys.AddEdge(3, -1, 310, 2)
	f.phys.AddEdge(0, 1, f.dist(0, 1), 1)
	return f
}
