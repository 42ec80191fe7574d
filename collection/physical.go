package collection

// Hop is one adjacency entry of the physical routing graph: the far
// endpoint, the cable length of the hop, and the electrical load it carries.
type Hop struct {
	To     int
	Length float64
	Load   int
}

// PhysEdge is one undirected physical edge, stored once for passes that must
// visit each edge exactly once (total length, gradient accumulation).
type PhysEdge struct {
	U, V   int
	Length float64
}

// Physical is the realized routing graph: the solved links after detours
// replace logical feeders with relay chains. Adjacency preserves insertion
// order, which keeps detour-walk neighbor selection deterministic for a
// given construction sequence. Build with NewPhysical.
type Physical struct {
	adj   map[int][]Hop
	edges []PhysEdge
	remap map[int]int
	total float64
}

// NewPhysical returns an empty physical graph.
func NewPhysical() *Physical {
	return &Physical{
		adj:   make(map[int][]Hop),
		remap: make(map[int]int),
	}
}

// AddEdge records one undirected physical edge with its length and load.
func (p *Physical) AddEdge(u, v int, length float64, load int) {
	p.adj[u] = append(p.adj[u], Hop{To: v, Length: length, Load: load})
	p.adj[v] = append(p.adj[v], Hop{To: u, Length: length, Load: load})
	p.edges = append(p.edges, PhysEdge{U: u, V: v, Length: length})
	p.total += length
}

// HasEdge reports whether a direct u–v link exists.
func (p *Physical) HasEdge(u, v int) bool {
	for _, h := range p.adj[u] {
		if h.To == v {
			return true
		}
	}
	return false
}

// Neighbors returns u's adjacency entries in insertion order. The returned
// slice is the graph's own storage; callers must not mutate it.
func (p *Physical) Neighbors(u int) []Hop { return p.adj[u] }

// NumNodes returns the number of distinct endpoints seen so far.
func (p *Physical) NumNodes() int { return len(p.adj) }

// Edges returns every physical edge once, in insertion order.
func (p *Physical) Edges() []PhysEdge { return p.edges }

// TotalLength returns the edge-weighted size of the graph.
func (p *Physical) TotalLength() float64 { return p.total }

// SetRemap maps a synthetic relay index to the coordinate row that holds
// its position. Gradient assembly resolves every edge endpoint through
// Resolve, so detour clones of the same physical vertex share one row.
func (p *Physical) SetRemap(node, row int) { p.remap[node] = row }

// Resolve returns the coordinate row index for a node, applying any remap.
func (p *Physical) Resolve(node int) int {
	if r, ok := p.remap[node]; ok {
		return r
	}
	return node
}
