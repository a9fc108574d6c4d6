package m3d

// Model is one named object in the scene, holding its triangle meshes in
// file order.
type Model struct {
	Name   string
	Meshes []*TriangleMesh
}

// NewModel returns an empty model with the given name.
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddMesh appends a triangle mesh to the model.
func (m *Model) AddMesh(mesh *TriangleMesh) {
	m.Meshes = append(m.Meshes, mesh)
}
