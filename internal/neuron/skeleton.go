package neuron

import (
	"sort"

	"cogentcore.org/core/math32"
)

// NoParent marks a root node (no parent link).
const NoParent = -1

// Node is a single skeleton node. Parent is the id of the parent node or
// NoParent for roots. Radius may be zero if the source data carries none.
type Node struct {
	ID     int
	Parent int
	Pos    math32.Vector3
	Radius float32
}

// Skeleton is a tree (or forest) of connected nodes with parent links,
// optionally flagging one or more nodes as the soma.
type Skeleton struct {
	Base

	Nodes []Node

	// Soma lists node ids reported as soma. Zero, one, or many; soma
	// detection upstream can be wrong, so consumers should sanity-check
	// the count before rendering.
	Soma []int

	// SomaRadius overrides the soma sphere radius. When zero the soma
	// node's own radius is used.
	SomaRadius float32
}

// Node returns the node with the given id, or false if absent.
func (s *Skeleton) Node(id int) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodeIndex returns the position of the node with the given id in Nodes,
// or -1 if absent. Per-vertex color arrays are indexed by node position.
func (s *Skeleton) NodeIndex(id int) int {
	for i, n := range s.Nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// SomaRadiusFor returns the sphere radius to use for the given soma node:
// the skeleton-level SomaRadius when set, else the node's own radius.
func (s *Skeleton) SomaRadiusFor(n Node) float32 {
	if s.SomaRadius > 0 {
		return s.SomaRadius
	}
	return n.Radius
}

// Segments decomposes the skeleton into linear paths: maximal chains whose
// interior nodes have exactly one child. Each segment runs from a tip (leaf
// or branch node) up the parent links to the next branch node or root,
// inclusive, so branch nodes appear as the terminal node of every child
// chain and as the start of their own chain. Segments are ordered longest
// first. Each segment has at least two nodes; a skeleton with fewer than
// two nodes yields no segments.
func (s *Skeleton) Segments() [][]Node {
	if len(s.Nodes) < 2 {
		return nil
	}
	byID := make(map[int]Node, len(s.Nodes))
	children := make(map[int]int, len(s.Nodes))
	for _, n := range s.Nodes {
		byID[n.ID] = n
	}
	for _, n := range s.Nodes {
		if n.Parent != NoParent {
			if _, ok := byID[n.Parent]; ok {
				children[n.Parent]++
			}
		}
	}

	var segs [][]Node
	for _, n := range s.Nodes {
		// Seeds are leaves and branch points; each starts one chain upward.
		if children[n.ID] != 0 && children[n.ID] < 2 {
			continue
		}
		seg := []Node{n}
		cur := n
		for cur.Parent != NoParent {
			parent, ok := byID[cur.Parent]
			if !ok {
				break
			}
			seg = append(seg, parent)
			if children[parent.ID] >= 2 || parent.Parent == NoParent {
				break
			}
			cur = parent
		}
		if len(seg) >= 2 {
			segs = append(segs, seg)
		}
	}

	sort.SliceStable(segs, func(i, j int) bool {
		return len(segs[i]) > len(segs[j])
	})
	return segs
}
