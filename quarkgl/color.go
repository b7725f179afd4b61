package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Packed returns c as A<<24 | B<<16 | G<<8 | R, the FrameBuffer pixel layout.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// Vector returns c with channels scaled to 0..1.
func (c Color) Vector() Vector {
	return Vec(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// UnpackColor splits a packed FrameBuffer pixel.
func UnpackColor(p uint32) Color {
	return Color{R: uint8(p), G: uint8(p >> 8), B: uint8(p >> 16), A: uint8(p >> 24)}
}

// PackColor converts a 0..1 color vector into a packed pixel, clamping each
// channel and rounding to the nearest 8-bit value.
func PackColor(c Vector) uint32 {
	return Color{R: channel(c.X), G: channel(c.Y), B: channel(c.Z), A: channel(c.W)}.Packed()
}

func channel(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
