package m3d

import "github.com/go-gl/mathgl/mgl32"

// Face is a triangle given as three indices into the mesh vertex array.
type Face struct {
	V0, V1, V2 uint16
}

// MaterialGroup binds a subset of a mesh's faces to a named material.
type MaterialGroup struct {
	MaterialName string
	Faces        []uint16 // indices into the mesh face array
}

// TriangleMesh is one mesh of a model: vertex positions, optional texture
// coordinates, triangle faces, material groups, per-face smoothing-group
// bitmasks and a local transform.
//
// The transform keeps the file's row-vector convention: the three basis
// vectors occupy the upper rows, the translation sits in the bottom row and
// the last column is (0, 0, 0, 1).
type TriangleMesh struct {
	Vertices        []mgl32.Vec3
	TexCoords       []mgl32.Vec2
	Faces           []Face
	MaterialGroups  []MaterialGroup
	SmoothingGroups []uint32 // one bitmask per face when present
	Matrix          mgl32.Mat4
}

// NewTriangleMesh returns an empty mesh with an identity transform.
func NewTriangleMesh() *TriangleMesh {
	return &TriangleMesh{Matrix: mgl32.Ident4()}
}

// AddVertex appends a vertex position.
func (m *TriangleMesh) AddVertex(v mgl32.Vec3) {
	m.Vertices = append(m.Vertices, v)
}

// AddTexCoord appends a texture coordinate.
func (m *TriangleMesh) AddTexCoord(tc mgl32.Vec2) {
	m.TexCoords = append(m.TexCoords, tc)
}

// AddFace appends a triangle face.
func (m *TriangleMesh) AddFace(f Face) {
	m.Faces = append(m.Faces, f)
}

// AddSmoothingGroup appends one per-face smoothing-group bitmask.
func (m *TriangleMesh) AddSmoothingGroup(g uint32) {
	m.SmoothingGroups = append(m.SmoothingGroups, g)
}

// AddMaterialGroup appends a material group.
func (m *TriangleMesh) AddMaterialGroup(g MaterialGroup) {
	m.MaterialGroups = append(m.MaterialGroups, g)
}

// VertexCount returns the number of vertices.
func (m *TriangleMesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *TriangleMesh) FaceCount() int {
	return len(m.Faces)
}
