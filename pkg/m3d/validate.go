package m3d

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrVertexIndexRange    = errors.New("face vertex index out of range")
	ErrFaceIndexRange      = errors.New("material group face index out of range")
	ErrSmoothingGroupCount = errors.New("smoothing group count does not match face count")
)

// Validate checks cross-references the decoder deliberately leaves alone:
// face vertex indices against the vertex array, material-group face indices
// against the face array, and the smoothing-group count against the face
// count. The wire format does not order chunks, so a face array may be
// decoded before its point array; these checks therefore run on the finished
// scene rather than during the decode.
func (s *Scene) Validate() error {
	for _, model := range s.Models {
		for mi, mesh := range model.Meshes {
			if err := mesh.validate(); err != nil {
				return fmt.Errorf("model %q mesh %d: %w", model.Name, mi, err)
			}
		}
	}
	return nil
}

func (m *TriangleMesh) validate() error {
	nVertices := len(m.Vertices)
	for i, f := range m.Faces {
		if int(f.V0) >= nVertices || int(f.V1) >= nVertices || int(f.V2) >= nVertices {
			return fmt.Errorf("%w: face %d references (%d, %d, %d) with %d vertices",
				ErrVertexIndexRange, i, f.V0, f.V1, f.V2, nVertices)
		}
	}

	nFaces := len(m.Faces)
	for _, group := range m.MaterialGroups {
		for i, faceIndex := range group.Faces {
			if int(faceIndex) >= nFaces {
				return fmt.Errorf("%w: group %q entry %d references face %d of %d",
					ErrFaceIndexRange, group.MaterialName, i, faceIndex, nFaces)
			}
		}
	}

	if n := len(m.SmoothingGroups); n != 0 && n != nFaces {
		return fmt.Errorf("%w: %d smoothing groups for %d faces",
			ErrSmoothingGroupCount, n, nFaces)
	}
	return nil
}
