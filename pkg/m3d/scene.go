package m3d

// Scene is the root of a decoded 3DS file: the models and materials it
// declares, in file order, plus the optional background color.
type Scene struct {
	Models     []*Model
	Materials  []*Material
	Background Color
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddModel appends a model to the scene.
func (s *Scene) AddModel(m *Model) {
	s.Models = append(s.Models, m)
}

// AddMaterial appends a material to the scene.
func (s *Scene) AddMaterial(m *Material) {
	s.Materials = append(s.Materials, m)
}

// ModelByName returns the first model with the given name, or nil.
func (s *Scene) ModelByName(name string) *Model {
	for _, m := range s.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// MaterialByName returns the first material with the given name, or nil.
func (s *Scene) MaterialByName(name string) *Material {
	for _, m := range s.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// TotalVertexCount returns the number of vertices across all meshes.
func (s *Scene) TotalVertexCount() int {
	total := 0
	for _, m := range s.Models {
		for _, mesh := range m.Meshes {
			total += mesh.VertexCount()
		}
	}
	return total
}

// TotalFaceCount returns the number of faces across all meshes.
func (s *Scene) TotalFaceCount() int {
	total := 0
	for _, m := range s.Models {
		for _, mesh := range m.Meshes {
			total += mesh.FaceCount()
		}
	}
	return total
}

// HasTextures returns true if any material references a texture map.
func (s *Scene) HasTextures() bool {
	for _, m := range s.Materials {
		if m.TextureMap != "" {
			return true
		}
	}
	return false
}
