package collection

import (
	"fmt"
	"sort"
)

// StringRun is one cable string: the substation it lands on and the turbine
// indices along it, ordered from the substation outward.
type StringRun struct {
	Substation int
	Turbines   []int
}

// Strings decomposes the solved forest into ordered cable strings, the
// shape array-cable cost exporters expect.
//
// Substation-incident edges are visited in ascending (substation, turbine)
// order and each one opens a string. Walking outward from a turbine, its
// first unvisited branch continues the current string; every further branch
// opens a new string at the same substation. New strings are numbered
// depth-first, so a branch's entire subtree is numbered before its sibling
// opens — a conservative duplication of branched layouts into linear
// strings.
//
// Complexity: O(E log E) for the deterministic edge ordering.
//
// Errors: ErrNotATree if a walk reaches a turbine twice or runs into a
// second substation; ErrUnreachableRoot if some turbine sits on no string.
func Strings(s *Solved) ([]StringRun, error) {
	ordered := make([]link, len(s.links))
	copy(ordered, s.links)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].u.ID != ordered[j].u.ID {
			return ordered[i].u.ID < ordered[j].u.ID
		}
		return ordered[i].v.ID < ordered[j].v.ID
	})

	type halfEdge struct {
		key [2]int
		to  Node
	}
	adj := make(map[int][]halfEdge, s.turbines+s.substations)
	for _, l := range ordered {
		key := [2]int{l.u.ID, l.v.ID}
		adj[l.u.ID] = append(adj[l.u.ID], halfEdge{key: key, to: l.v})
		adj[l.v.ID] = append(adj[l.v.ID], halfEdge{key: key, to: l.u})
	}

	subs := make([]int, 0, s.substations)
	for id := range adj {
		if id < 0 {
			subs = append(subs, id)
		}
	}
	sort.Ints(subs)

	type frame struct {
		to        Node
		sub       int
		run       int
		newString bool
	}

	used := make(map[[2]int]bool, len(ordered))
	seen := make([]bool, s.turbines)
	runs := make([]StringRun, 0, s.substations)
	var stack []frame

	for _, sub := range subs {
		for _, root := range adj[sub] {
			if used[root.key] {
				continue
			}
			used[root.key] = true
			stack = append(stack, frame{to: root.to, sub: sub, newString: true})

			for len(stack) > 0 {
				f := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if f.to.Kind != KindTurbine {
					return nil, fmt.Errorf("%w: string from substation %d ran into %s %d",
						ErrNotATree, f.sub, f.to.Kind, f.to.ID)
				}
				i := f.to.ID
				if seen[i] {
					return nil, fmt.Errorf("%w: turbine %d reached twice", ErrNotATree, i)
				}
				seen[i] = true

				run := f.run
				if f.newString {
					run = len(runs)
					runs = append(runs, StringRun{Substation: f.sub})
				}
				runs[run].Turbines = append(runs[run].Turbines, i)

				// Unvisited branches in canonical edge order: the first
				// continues this string, the rest open new ones.
				var children []frame
				for _, he := range adj[i] {
					if used[he.key] {
						continue
					}
					used[he.key] = true
					children = append(children, frame{
						to:        he.to,
						sub:       f.sub,
						run:       run,
						newString: len(children) > 0,
					})
				}
				for k := len(children) - 1; k >= 0; k-- {
					stack = append(stack, children[k])
				}
			}
		}
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: turbine %d is on no string", ErrUnreachableRoot, i)
		}
	}
	return runs, nil
}
