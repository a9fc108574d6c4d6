package m3d

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func triangleMesh() *TriangleMesh {
	mesh := NewTriangleMesh()
	mesh.AddVertex(mgl32.Vec3{0, 0, 0})
	mesh.AddVertex(mgl32.Vec3{1, 0, 0})
	mesh.AddVertex(mgl32.Vec3{0, 1, 0})
	mesh.AddFace(Face{0, 1, 2})
	return mesh
}

func sceneWith(mesh *TriangleMesh) *Scene {
	model := NewModel("obj")
	model.AddMesh(mesh)
	scene := NewScene()
	scene.AddModel(model)
	return scene
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *TriangleMesh)
		wantErr error
	}{
		{
			name:    "valid mesh",
			mutate:  func(m *TriangleMesh) {},
			wantErr: nil,
		},
		{
			name: "face vertex index out of range",
			mutate: func(m *TriangleMesh) {
				m.AddFace(Face{0, 1, 3})
			},
			wantErr: ErrVertexIndexRange,
		},
		{
			name: "material group face index out of range",
			mutate: func(m *TriangleMesh) {
				m.AddMaterialGroup(MaterialGroup{MaterialName: "red", Faces: []uint16{1}})
			},
			wantErr: ErrFaceIndexRange,
		},
		{
			name: "material group within range",
			mutate: func(m *TriangleMesh) {
				m.AddMaterialGroup(MaterialGroup{MaterialName: "red", Faces: []uint16{0}})
			},
			wantErr: nil,
		},
		{
			name: "smoothing group count mismatch",
			mutate: func(m *TriangleMesh) {
				m.AddSmoothingGroup(1)
				m.AddSmoothingGroup(1)
			},
			wantErr: ErrSmoothingGroupCount,
		},
		{
			name: "smoothing groups matching faces",
			mutate: func(m *TriangleMesh) {
				m.AddSmoothingGroup(1)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := triangleMesh()
			tt.mutate(mesh)
			err := sceneWith(mesh).Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EmptyScene(t *testing.T) {
	if err := NewScene().Validate(); err != nil {
		t.Errorf("Validate() on empty scene = %v", err)
	}
}
