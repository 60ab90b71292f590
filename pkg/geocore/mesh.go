package geocore

import "fmt"

// Mesh is an indexed face mesh: a vertex sequence plus face topology held as
// triangles, quads, or both. The wire form carries exactly one face kind per
// encoding; a mesh holding any triangles is encoded as triangles only, so a
// mixed mesh must be triangulated first for a faithful round trip (see
// EncodeMesh).
type Mesh struct {
	Vertices  []Point3
	Triangles []Triangle
	Quads     []Quad
}

// HasTriangles reports whether the mesh holds at least one triangle.
func (m *Mesh) HasTriangles() bool { return len(m.Triangles) > 0 }

// HasQuads reports whether the mesh holds at least one quad.
func (m *Mesh) HasQuads() bool { return len(m.Quads) > 0 }

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{}
	if m.Vertices != nil {
		c.Vertices = make([]Point3, len(m.Vertices))
		copy(c.Vertices, m.Vertices)
	}
	if m.Triangles != nil {
		c.Triangles = make([]Triangle, len(m.Triangles))
		copy(c.Triangles, m.Triangles)
	}
	if m.Quads != nil {
		c.Quads = make([]Quad, len(m.Quads))
		copy(c.Quads, m.Quads)
	}
	return c
}

// Triangulated returns a copy of the mesh with every quad (A,B,C,D) split
// into the triangles (A,B,C) and (A,C,D), preserving winding. The vertex
// sequence is unchanged and the receiver is never mutated.
func (m *Mesh) Triangulated() *Mesh {
	c := m.Clone()
	if len(c.Quads) == 0 {
		c.Quads = nil
		return c
	}
	tris := make([]Triangle, 0, len(c.Triangles)+2*len(c.Quads))
	tris = append(tris, c.Triangles...)
	for _, q := range c.Quads {
		tris = append(tris, Triangle{q[0], q[1], q[2]}, Triangle{q[0], q[2], q[3]})
	}
	c.Triangles = tris
	c.Quads = nil
	return c
}

// Validate checks that every face index lies inside [0, len(Vertices)).
// The codec itself never performs this check; callers that build topology
// from untrusted input can run it before encoding.
func (m *Mesh) Validate() error {
	n := int32(len(m.Vertices))
	for i, t := range m.Triangles {
		for _, v := range t {
			if v < 0 || v >= n {
				return fmt.Errorf("geocore: triangle %d references vertex %d outside [0,%d)", i, v, n)
			}
		}
	}
	for i, q := range m.Quads {
		for _, v := range q {
			if v < 0 || v >= n {
				return fmt.Errorf("geocore: quad %d references vertex %d outside [0,%d)", i, v, n)
			}
		}
	}
	return nil
}
