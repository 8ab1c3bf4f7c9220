package meshing

// Mesh is the output of a mesh call: one ordered quad list per face. Order
// within a list is the merge stage's emission order — monotone in the
// face's primary coordinate (spec.md §3, §5) — and is a contract relied on
// by Remesh's splice step.
type Mesh struct {
	quads [6][]Quad
}

// NewMesh returns an empty mesh, ready to be populated by Mesh/SlowMesh or
// spliced into by Remesh/RemeshSlow.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Face returns the quad list for the given face. The returned slice is
// owned by the Mesh; splicing installs a newly built slice for each
// affected face, so a slice retained across a Remesh call no longer
// reflects the mesh.
func (m *Mesh) Face(f Face) []Quad {
	return m.quads[f]
}

// setFace replaces the quad list for the given face. Used by Mesh/SlowMesh
// to install freshly built lists.
func (m *Mesh) setFace(f Face, quads []Quad) {
	m.quads[f] = quads
}

// Len returns the total number of quads across all six faces.
func (m *Mesh) Len() int {
	n := 0
	for _, q := range m.quads {
		n += len(q)
	}
	return n
}
