package m3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestScene_Lookups(t *testing.T) {
	scene := NewScene()
	scene.AddModel(NewModel("tower"))
	scene.AddModel(NewModel("gate"))

	red := NewMaterial()
	red.Name = "red"
	scene.AddMaterial(red)

	if m := scene.ModelByName("gate"); m == nil || m.Name != "gate" {
		t.Errorf("ModelByName(gate) = %v", m)
	}
	if scene.ModelByName("wall") != nil {
		t.Error("ModelByName returned non-nil for missing model")
	}
	if m := scene.MaterialByName("red"); m == nil || m.Name != "red" {
		t.Errorf("MaterialByName(red) = %v", m)
	}
	if scene.MaterialByName("blue") != nil {
		t.Error("MaterialByName returned non-nil for missing material")
	}
}

func TestScene_Totals(t *testing.T) {
	mesh1 := NewTriangleMesh()
	mesh1.AddVertex(mgl32.Vec3{})
	mesh1.AddVertex(mgl32.Vec3{1, 0, 0})
	mesh1.AddVertex(mgl32.Vec3{0, 1, 0})
	mesh1.AddFace(Face{0, 1, 2})

	mesh2 := NewTriangleMesh()
	mesh2.AddVertex(mgl32.Vec3{})
	mesh2.AddFace(Face{0, 0, 0})
	mesh2.AddFace(Face{0, 0, 0})

	model := NewModel("obj")
	model.AddMesh(mesh1)
	model.AddMesh(mesh2)

	scene := NewScene()
	scene.AddModel(model)

	if got := scene.TotalVertexCount(); got != 4 {
		t.Errorf("TotalVertexCount() = %d, want 4", got)
	}
	if got := scene.TotalFaceCount(); got != 3 {
		t.Errorf("TotalFaceCount() = %d, want 3", got)
	}
}

func TestScene_HasTextures(t *testing.T) {
	scene := NewScene()
	plain := NewMaterial()
	scene.AddMaterial(plain)
	if scene.HasTextures() {
		t.Error("HasTextures() = true for untextured scene")
	}

	textured := NewMaterial()
	textured.TextureMap = "wood.bmp"
	scene.AddMaterial(textured)
	if !scene.HasTextures() {
		t.Error("HasTextures() = false for textured scene")
	}
}

func TestNewMaterial_Defaults(t *testing.T) {
	mat := NewMaterial()
	if mat.Shininess != 1 {
		t.Errorf("Shininess = %f, want 1", mat.Shininess)
	}
	if mat.Opacity != 1 {
		t.Errorf("Opacity = %f, want 1", mat.Opacity)
	}
}
