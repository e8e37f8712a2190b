package neuron

import "cogentcore.org/core/math32"

// Mesh is a triangle-mesh neuron: vertices plus triangle faces indexing
// into the vertex slice.
type Mesh struct {
	Base

	Vertices []math32.Vector3
	Faces    [][3]int

	// VertexNode, when non-nil, maps each vertex back to the index of the
	// skeleton node it was swept around. Populated by TubeMesh so per-node
	// colors can be carried onto the tube surface.
	VertexNode []int
}

// tubeSides is the number of vertices in each tube ring when a skeleton is
// rendered as a radius-honoring mesh.
const tubeSides = 8

// minTubeRadius is substituted for nodes with no usable radius so tube
// meshes stay non-degenerate.
const minTubeRadius = float32(0.5)

// TubeMesh converts the skeleton into a Mesh by sweeping a tube of
// tubeSides-sided rings along every parent edge, sized by the node radii.
// Identity and connectors are carried over so connector rendering still
// works on the converted neuron. Returns nil if the skeleton has no edges.
func (s *Skeleton) TubeMesh() *Mesh {
	byID := make(map[int]Node, len(s.Nodes))
	idx := make(map[int]int, len(s.Nodes))
	for i, n := range s.Nodes {
		byID[n.ID] = n
		idx[n.ID] = i
	}

	m := &Mesh{Base: Base{ID: s.ID, Name: s.Name, Connectors: s.Connectors}}
	for _, n := range s.Nodes {
		if n.Parent == NoParent {
			continue
		}
		parent, ok := byID[n.Parent]
		if !ok {
			continue
		}
		addTubeSegment(m, parent, n, idx[parent.ID], idx[n.ID])
	}
	if len(m.Faces) == 0 {
		return nil
	}
	return m
}

// addTubeSegment appends one truncated cone between the two nodes: a ring
// around each endpoint, perpendicular to the edge, stitched with quads
// split into triangles. ai and bi are the node indices recorded per ring
// vertex in VertexNode.
func addTubeSegment(m *Mesh, a, b Node, ai, bi int) {
	axis := b.Pos.Sub(a.Pos)
	if axis.Length() == 0 {
		return
	}
	axis = axis.Normal()

	// Any vector not parallel to the axis works to seed the ring basis.
	ref := math32.Vec3(0, 0, 1)
	if math32.Abs(axis.Z) > 0.9 {
		ref = math32.Vec3(1, 0, 0)
	}
	u := axis.Cross(ref).Normal()
	v := axis.Cross(u)

	ra, rb := a.Radius, b.Radius
	if ra <= 0 {
		ra = minTubeRadius
	}
	if rb <= 0 {
		rb = minTubeRadius
	}

	base := len(m.Vertices)
	for i := 0; i < tubeSides; i++ {
		ang := 2 * math32.Pi * float32(i) / tubeSides
		dir := u.MulScalar(math32.Cos(ang)).Add(v.MulScalar(math32.Sin(ang)))
		m.Vertices = append(m.Vertices, a.Pos.Add(dir.MulScalar(ra)))
		m.VertexNode = append(m.VertexNode, ai)
	}
	for i := 0; i < tubeSides; i++ {
		ang := 2 * math32.Pi * float32(i) / tubeSides
		dir := u.MulScalar(math32.Cos(ang)).Add(v.MulScalar(math32.Sin(ang)))
		m.Vertices = append(m.Vertices, b.Pos.Add(dir.MulScalar(rb)))
		m.VertexNode = append(m.VertexNode, bi)
	}
	for i := 0; i < tubeSides; i++ {
		next := (i + 1) % tubeSides
		a0, a1 := base+i, base+next
		b0, b1 := base+tubeSides+i, base+tubeSides+next
		m.Faces = append(m.Faces, [3]int{a0, b0, a1}, [3]int{a1, b0, b1})
	}
}
