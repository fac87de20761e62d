package parallax

// Packed colors are RGBA stored as 0xAABBGGRR, the byte order OpenGL reads
// for a normalized uint8x4 attribute.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs a color from 0-255 components.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts the components of a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Fade multiplies a packed color's alpha by opacity, clamped to [0, 1].
func Fade(c uint32, opacity float32) uint32 {
	r, g, b, a := UnpackRGBA(c)
	return RGBA(r, g, b, uint8(float32(a)*clampf(opacity, 0, 1)))
}

// LerpColor interpolates every component from a to b; t is clamped to [0, 1].
func LerpColor(a, b uint32, t float32) uint32 {
	t = clampf(t, 0, 1)
	ar, ag, ab, aa := UnpackRGBA(a)
	br, bg, bb, ba := UnpackRGBA(b)
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return RGBA(lerp(ar, br), lerp(ag, bg), lerp(ab, bb), lerp(aa, ba))
}
