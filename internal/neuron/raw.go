package neuron

import "cogentcore.org/core/math32"

// RawSkeleton is a skeleton produced outside the neuron model, e.g. by a
// mesh-skeletonization tool: flat vertex and edge arrays with optional
// per-vertex radii and no neuron metadata. It is not a Neuron variant;
// Skeleton() wraps it into one so the neuron pipeline can render it.
type RawSkeleton struct {
	ID       string
	Vertices []math32.Vector3

	// Edges lists (vertex, parent vertex) index pairs. Vertices that appear
	// in no edge's first position are roots.
	Edges [][2]int

	// Radii is parallel to Vertices; nil means no radius information.
	Radii []float32
}

// Skeleton wraps the raw arrays into a Skeleton. Vertex indices become node
// IDs; out-of-range edge indices are dropped.
func (r *RawSkeleton) Skeleton() *Skeleton {
	sk := &Skeleton{Base: Base{ID: r.ID}}
	for i, p := range r.Vertices {
		n := Node{ID: i, Parent: NoParent, Pos: p}
		if i < len(r.Radii) {
			n.Radius = r.Radii[i]
		}
		sk.Nodes = append(sk.Nodes, n)
	}
	for _, e := range r.Edges {
		if e[0] < 0 || e[0] >= len(sk.Nodes) || e[1] < 0 || e[1] >= len(sk.Nodes) {
			continue
		}
		sk.Nodes[e[0]].Parent = e[1]
	}
	return sk
}
