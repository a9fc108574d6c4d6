// Package m3d decodes 3D Studio (.3ds) scene files into an in-memory
// scene graph of models, triangle meshes and materials.
//
// A 3DS file is a tree of length-prefixed chunks. Each chunk starts with a
// 16-bit type tag and a 32-bit total size (header included); the content is
// either raw fields or further nested chunks, depending on the tag and on
// where in the tree the chunk appears. The decoder walks this tree with a
// single recursive engine and enforces exact byte accounting at every level:
// the format carries no checksums, so a size that does not add up is the only
// way corruption can be detected.
package m3d

import "fmt"

// ChunkTag identifies a chunk's type within its parent context.
type ChunkTag uint16

// Chunk tags recognized by the decoder. Tags outside this set are skipped
// byte-for-byte wherever they occur.
const (
	TagMagic ChunkTag = 0x4D4D // file root

	TagColorFloat      ChunkTag = 0x0010
	TagColor24         ChunkTag = 0x0011
	TagIntPercentage   ChunkTag = 0x0030
	TagFloatPercentage ChunkTag = 0x0031

	TagBackgroundColor ChunkTag = 0x1200
	TagMeshData        ChunkTag = 0x3D3D

	TagNamedObject       ChunkTag = 0x4000
	TagTriangleMesh      ChunkTag = 0x4100
	TagPointArray        ChunkTag = 0x4110
	TagFaceArray         ChunkTag = 0x4120
	TagMeshMaterialGroup ChunkTag = 0x4130
	TagMeshTextureCoords ChunkTag = 0x4140
	TagMeshSmoothGroup   ChunkTag = 0x4150
	TagMeshMatrix        ChunkTag = 0x4160

	TagMaterialEntry        ChunkTag = 0xAFFF
	TagMaterialName         ChunkTag = 0xA000
	TagMaterialAmbient      ChunkTag = 0xA010
	TagMaterialDiffuse      ChunkTag = 0xA020
	TagMaterialSpecular     ChunkTag = 0xA030
	TagMaterialShininess    ChunkTag = 0xA040
	TagMaterialTransparency ChunkTag = 0xA050
	TagMaterialTexmap       ChunkTag = 0xA200
	TagMaterialMapname      ChunkTag = 0xA300
)

// chunkHeaderSize is the fixed cost of every chunk header: a 16-bit tag plus
// a 32-bit total size. A chunk's declared size can never be smaller.
const chunkHeaderSize = 6

// String returns a human-readable tag name for diagnostics.
func (t ChunkTag) String() string {
	switch t {
	case TagMagic:
		return "magic"
	case TagColorFloat:
		return "float color"
	case TagColor24:
		return "24-bit color"
	case TagIntPercentage:
		return "int percentage"
	case TagFloatPercentage:
		return "float percentage"
	case TagBackgroundColor:
		return "background color"
	case TagMeshData:
		return "mesh data"
	case TagNamedObject:
		return "named object"
	case TagTriangleMesh:
		return "triangle mesh"
	case TagPointArray:
		return "point array"
	case TagFaceArray:
		return "face array"
	case TagMeshMaterialGroup:
		return "material group"
	case TagMeshTextureCoords:
		return "texture coords"
	case TagMeshSmoothGroup:
		return "smoothing group"
	case TagMeshMatrix:
		return "mesh matrix"
	case TagMaterialEntry:
		return "material entry"
	case TagMaterialName:
		return "material name"
	case TagMaterialAmbient:
		return "material ambient"
	case TagMaterialDiffuse:
		return "material diffuse"
	case TagMaterialSpecular:
		return "material specular"
	case TagMaterialShininess:
		return "material shininess"
	case TagMaterialTransparency:
		return "material transparency"
	case TagMaterialTexmap:
		return "material texmap"
	case TagMaterialMapname:
		return "texmap name"
	default:
		return fmt.Sprintf("unknown(0x%04X)", uint16(t))
	}
}
