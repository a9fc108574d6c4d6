package m3d

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// errUnknownChunk is returned by a handler that does not recognize a chunk
// tag. It is not a failure: the dispatcher skips the chunk's declared
// content byte-for-byte and continues. A handler must never return it for a
// tag it partially consumed.
var errUnknownChunk = errors.New("unknown chunk")

// chunkHandler interprets one chunk at a given nesting level. It returns the
// number of content bytes it consumed, or errUnknownChunk for a tag outside
// its vocabulary, or a fatal error.
type chunkHandler func(r *reader, tag ChunkTag, contentSize int32) (int32, error)

// readChunk reads one chunk header, hands the content to the handler and
// reconciles the handler's consumption against the declared content size.
// On success it returns the full chunk size, header included, so that the
// caller's byte accounting stays in header-inclusive units.
func readChunk(r *reader, handle chunkHandler) (int32, error) {
	rawTag, err := r.readUint16()
	if err != nil {
		return 0, err
	}
	tag := ChunkTag(rawTag)

	chunkSize, err := r.readInt32()
	if err != nil {
		return 0, err
	}
	if chunkSize < chunkHeaderSize {
		return 0, fmt.Errorf("%w: %v chunk declares %d bytes", ErrChunkHeader, tag, chunkSize)
	}

	contentSize := chunkSize - chunkHeaderSize
	consumed, err := handle(r, tag, contentSize)
	switch {
	case errors.Is(err, errUnknownChunk):
		if err := r.skip(contentSize); err != nil {
			return 0, fmt.Errorf("skipping %v chunk: %w", tag, err)
		}
		return chunkSize, nil
	case err != nil:
		return 0, err
	case consumed != contentSize:
		return 0, fmt.Errorf("%w: %v chunk declares %d content bytes, read %d",
			ErrChunkSizeMismatch, tag, contentSize, consumed)
	}
	return chunkSize, nil
}

// readChunks reads sibling chunks until exactly budget bytes are consumed.
// A chunk straddling the budget boundary, or a budget left short, is a
// failure. This is the sole recursion point of the decoder: handlers parse
// nested chunk groups by calling back in with a different handler.
func readChunks(r *reader, budget int32, handle chunkHandler) (int32, error) {
	var total int32
	for total < budget {
		chunkSize, err := readChunk(r, handle)
		if err != nil {
			return 0, err
		}
		total += chunkSize
	}
	if total != budget {
		return 0, fmt.Errorf("%w: sibling chunks span %d bytes, expected %d",
			ErrChunkSizeMismatch, total, budget)
	}
	return total, nil
}

func topLevelHandler(scene *Scene) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		if tag == TagMeshData {
			return readChunks(r, contentSize, sceneHandler(scene))
		}
		return 0, errUnknownChunk
	}
}

func sceneHandler(scene *Scene) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		switch tag {
		case TagNamedObject:
			name, nameLen, err := r.readString()
			if err != nil {
				return 0, fmt.Errorf("reading object name: %w", err)
			}
			model := NewModel(name)
			consumed, err := readChunks(r, contentSize-nameLen, modelHandler(model))
			if err != nil {
				return 0, err
			}
			scene.AddModel(model)
			return nameLen + consumed, nil

		case TagMaterialEntry:
			material := NewMaterial()
			consumed, err := readChunks(r, contentSize, materialHandler(material))
			if err != nil {
				return 0, err
			}
			scene.AddMaterial(material)
			return consumed, nil

		case TagBackgroundColor:
			var color Color
			consumed, err := readChunks(r, contentSize, colorHandler(&color))
			if err != nil {
				return 0, err
			}
			scene.Background = color
			return consumed, nil

		default:
			return 0, errUnknownChunk
		}
	}
}

func modelHandler(model *Model) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		if tag == TagTriangleMesh {
			mesh := NewTriangleMesh()
			consumed, err := readChunks(r, contentSize, triMeshHandler(mesh))
			if err != nil {
				return 0, err
			}
			model.AddMesh(mesh)
			return consumed, nil
		}
		return 0, errUnknownChunk
	}
}

func triMeshHandler(mesh *TriangleMesh) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		switch tag {
		case TagPointArray:
			return readPointArray(r, mesh)
		case TagMeshTextureCoords:
			return readTextureCoordArray(r, mesh)
		case TagFaceArray:
			return readFaceArray(r, mesh, contentSize)
		case TagMeshMatrix:
			return readMeshMatrix(r, mesh)
		default:
			return 0, errUnknownChunk
		}
	}
}

func readPointArray(r *reader, mesh *TriangleMesh) (int32, error) {
	nPoints, err := r.readUint16()
	if err != nil {
		return 0, err
	}
	consumed := int32(2)

	for i := 0; i < int(nPoints); i++ {
		var v [3]float32
		for j := range v {
			if v[j], err = r.readFloat32(); err != nil {
				return 0, fmt.Errorf("reading vertex %d: %w", i, err)
			}
		}
		consumed += 12
		mesh.AddVertex(mgl32.Vec3{v[0], v[1], v[2]})
	}
	return consumed, nil
}

func readTextureCoordArray(r *reader, mesh *TriangleMesh) (int32, error) {
	nPoints, err := r.readUint16()
	if err != nil {
		return 0, err
	}
	consumed := int32(2)

	for i := 0; i < int(nPoints); i++ {
		u, err := r.readFloat32()
		if err != nil {
			return 0, fmt.Errorf("reading texture coord %d: %w", i, err)
		}
		v, err := r.readFloat32()
		if err != nil {
			return 0, fmt.Errorf("reading texture coord %d: %w", i, err)
		}
		consumed += 8
		// The wire V axis is flipped relative to the internal convention.
		mesh.AddTexCoord(mgl32.Vec2{u, -v})
	}
	return consumed, nil
}

// readFaceArray reads the face list and, if the chunk declares more content
// than the list itself, the trailing sub-chunks (material groups and
// smoothing groups).
func readFaceArray(r *reader, mesh *TriangleMesh, contentSize int32) (int32, error) {
	nFaces, err := r.readUint16()
	if err != nil {
		return 0, err
	}
	consumed := int32(2)

	for i := 0; i < int(nFaces); i++ {
		var f [4]uint16 // v0, v1, v2, flags; flags are not retained
		for j := range f {
			if f[j], err = r.readUint16(); err != nil {
				return 0, fmt.Errorf("reading face %d: %w", i, err)
			}
		}
		consumed += 8
		mesh.AddFace(Face{V0: f[0], V1: f[1], V2: f[2]})
	}

	if consumed > contentSize {
		return 0, fmt.Errorf("%w: face list overruns chunk by %d bytes",
			ErrChunkSizeMismatch, consumed-contentSize)
	}
	if consumed < contentSize {
		trailing, err := readChunks(r, contentSize-consumed, faceArrayHandler(mesh))
		if err != nil {
			return 0, err
		}
		consumed += trailing
	}
	return consumed, nil
}

func faceArrayHandler(mesh *TriangleMesh) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		switch tag {
		case TagMeshMaterialGroup:
			name, nameLen, err := r.readString()
			if err != nil {
				return 0, fmt.Errorf("reading material group name: %w", err)
			}
			nFaces, err := r.readUint16()
			if err != nil {
				return 0, err
			}
			consumed := nameLen + 2

			group := MaterialGroup{MaterialName: name}
			for i := 0; i < int(nFaces); i++ {
				faceIndex, err := r.readUint16()
				if err != nil {
					return 0, fmt.Errorf("reading material group face %d: %w", i, err)
				}
				consumed += 2
				group.Faces = append(group.Faces, faceIndex)
			}
			mesh.AddMaterialGroup(group)
			return consumed, nil

		case TagMeshSmoothGroup:
			// One bitmask per face already read into the mesh. The field is
			// unsigned on the wire despite the signed read.
			var consumed int32
			for i := 0; i < mesh.FaceCount(); i++ {
				groups, err := r.readInt32()
				if err != nil {
					return 0, fmt.Errorf("reading smoothing group %d: %w", i, err)
				}
				if groups < 0 {
					return 0, fmt.Errorf("%w: face %d has value %d", ErrSmoothingGroup, i, groups)
				}
				consumed += 4
				mesh.AddSmoothingGroup(uint32(groups))
			}
			return consumed, nil

		default:
			return 0, errUnknownChunk
		}
	}
}

// readMeshMatrix reads the 12-float local transform: three basis row vectors
// followed by a translation, expanded to 4x4 with a (0, 0, 0, 1) last
// column. The layout is a fixed format convention, not a general 4x4.
func readMeshMatrix(r *reader, mesh *TriangleMesh) (int32, error) {
	var e [12]float32
	for i := range e {
		var err error
		if e[i], err = r.readFloat32(); err != nil {
			return 0, fmt.Errorf("reading mesh matrix: %w", err)
		}
	}

	// mgl32 stores column-major; the file rows become storage columns.
	mesh.Matrix = mgl32.Mat4{
		e[0], e[3], e[6], e[9],
		e[1], e[4], e[7], e[10],
		e[2], e[5], e[8], e[11],
		0, 0, 0, 1,
	}
	return 48, nil
}

func materialHandler(material *Material) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		switch tag {
		case TagMaterialName:
			name, nameLen, err := r.readString()
			if err != nil {
				return 0, fmt.Errorf("reading material name: %w", err)
			}
			material.Name = name
			return nameLen, nil

		case TagMaterialAmbient:
			return readColorInto(r, contentSize, &material.Ambient)
		case TagMaterialDiffuse:
			return readColorInto(r, contentSize, &material.Diffuse)
		case TagMaterialSpecular:
			return readColorInto(r, contentSize, &material.Specular)

		case TagMaterialShininess:
			var percent float32
			consumed, err := readChunks(r, contentSize, percentageHandler(&percent))
			if err != nil {
				return 0, err
			}
			material.Shininess = percent
			return consumed, nil

		case TagMaterialTransparency:
			var percent float32
			consumed, err := readChunks(r, contentSize, percentageHandler(&percent))
			if err != nil {
				return 0, err
			}
			material.Opacity = 1 - percent/100
			return consumed, nil

		case TagMaterialTexmap:
			return readChunks(r, contentSize, texmapHandler(material))

		default:
			return 0, errUnknownChunk
		}
	}
}

func readColorInto(r *reader, contentSize int32, dst *Color) (int32, error) {
	var color Color
	consumed, err := readChunks(r, contentSize, colorHandler(&color))
	if err != nil {
		return 0, err
	}
	*dst = color
	return consumed, nil
}

func colorHandler(color *Color) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		switch tag {
		case TagColor24:
			var c [3]byte
			for i := range c {
				var err error
				if c[i], err = r.readByte(); err != nil {
					return 0, err
				}
			}
			*color = Color{
				R: float32(c[0]) / 255,
				G: float32(c[1]) / 255,
				B: float32(c[2]) / 255,
			}
			return 3, nil

		case TagColorFloat:
			var c [3]float32
			for i := range c {
				var err error
				if c[i], err = r.readFloat32(); err != nil {
					return 0, err
				}
			}
			*color = Color{R: c[0], G: c[1], B: c[2]}
			return 12, nil

		default:
			return 0, errUnknownChunk
		}
	}
}

func percentageHandler(percent *float32) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		switch tag {
		case TagIntPercentage:
			value, err := r.readInt16()
			if err != nil {
				return 0, err
			}
			*percent = float32(value)
			return 2, nil

		case TagFloatPercentage:
			value, err := r.readFloat32()
			if err != nil {
				return 0, err
			}
			*percent = value
			return 4, nil

		default:
			return 0, errUnknownChunk
		}
	}
}

func texmapHandler(material *Material) chunkHandler {
	return func(r *reader, tag ChunkTag, contentSize int32) (int32, error) {
		if tag == TagMaterialMapname {
			name, nameLen, err := r.readString()
			if err != nil {
				return 0, fmt.Errorf("reading texmap name: %w", err)
			}
			material.TextureMap = name
			return nameLen, nil
		}
		return 0, errUnknownChunk
	}
}

// Decode parses a complete 3DS file from raw bytes and returns the decoded
// scene. Any malformed chunk anywhere fails the whole decode; unknown chunk
// types are skipped.
func Decode(data []byte) (*Scene, error) {
	r := newReader(data)

	magic, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	if ChunkTag(magic) != TagMagic {
		return nil, fmt.Errorf("%w: 0x%04X", ErrInvalidMagic, magic)
	}

	chunkSize, err := r.readInt32()
	if err != nil {
		return nil, err
	}
	if chunkSize < chunkHeaderSize {
		return nil, fmt.Errorf("%w: file declares %d bytes", ErrChunkHeader, chunkSize)
	}

	scene := NewScene()
	if _, err := readChunks(r, chunkSize-chunkHeaderSize, topLevelHandler(scene)); err != nil {
		return nil, err
	}
	return scene, nil
}

// DecodeReader reads the stream to its end and decodes it as a 3DS file.
func DecodeReader(rd io.Reader) (*Scene, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("reading 3DS stream: %w", err)
	}
	return Decode(data)
}

// DecodeFile decodes a 3DS file from disk.
func DecodeFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading 3DS file: %w", err)
	}
	return Decode(data)
}
