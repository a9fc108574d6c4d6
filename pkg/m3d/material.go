package m3d

// Color is an RGB triple with components in [0, 1]. The wire format stores
// colors either as three bytes or as three floats; both forms decode into
// this one representation.
type Color struct {
	R, G, B float32
}

// Material describes the surface appearance referenced by material groups.
type Material struct {
	Name       string
	Ambient    Color
	Diffuse    Color
	Specular   Color
	Shininess  float32 // percentage in [0, 100]
	Opacity    float32 // 1 = opaque, derived from the wire transparency
	TextureMap string  // texture file name, empty if none
}

// NewMaterial returns a material with default shininess and full opacity.
func NewMaterial() *Material {
	return &Material{Shininess: 1, Opacity: 1}
}
