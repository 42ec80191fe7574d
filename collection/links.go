package collection

// CandidateLinks is the precomputed length table over every node pair the
// router considered linking, plus the routed root-distance entries used to
// price direct feeders. Pair keys are canonicalized, so lengths can be set
// and read with endpoints in either order; root distances are directional.
// Build with NewCandidateLinks; the zero value is not usable.
type CandidateLinks struct {
	lengths map[[2]int]float64
	roots   map[[2]int]float64
}

// NewCandidateLinks returns an empty candidate table.
func NewCandidateLinks() *CandidateLinks {
	return &CandidateLinks{
		lengths: make(map[[2]int]float64),
		roots:   make(map[[2]int]float64),
	}
}

// SetLength records the candidate cable length between two nodes.
func (c *CandidateLinks) SetLength(u, v int, length float64) {
	c.lengths[pairKey(u, v)] = length
}

// Length reports the candidate cable length between two nodes.
func (c *CandidateLinks) Length(u, v int) (float64, bool) {
	d, ok := c.lengths[pairKey(u, v)]
	return d, ok
}

// SetRootDistance records the routed distance from a node to a root.
func (c *CandidateLinks) SetRootDistance(node, root int, dist float64) {
	c.roots[[2]int{node, root}] = dist
}

// RootDistance reports the routed distance from a node to a root.
func (c *CandidateLinks) RootDistance(node, root int) (float64, bool) {
	d, ok := c.roots[[2]int{node, root}]
	return d, ok
}

// NumLengths returns the number of recorded pair lengths.
func (c *CandidateLinks) NumLengths() int { return len(c.lengths) }

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
