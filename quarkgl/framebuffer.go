package quarkgl

import (
	"encoding/binary"
	"image"
	"math"
)

// FarDepth is the depth a cleared FrameBuffer holds. Smaller depths are nearer.
const FarDepth float32 = 1

// FrameBuffer owns a packed color buffer and a depth buffer of the same size.
//
// Pixels are row-major with the origin at the top-left. A FrameBuffer is not
// safe for concurrent use.
type FrameBuffer struct {
	width, height int

	colors []uint32
	depths []float32
}

// BoundingBox is the clipped pixel rectangle a triangle may cover.
type BoundingBox struct {
	MinX, MaxX int
	MinY, MaxY int

	ShouldRender bool
}

// NewFrameBuffer allocates a w*h buffer cleared to color 0 and far depth.
// Non-positive sizes yield an empty buffer that ignores all writes.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	fb := &FrameBuffer{
		width:  w,
		height: h,
		colors: make([]uint32, w*h),
		depths: make([]float32, w*h),
	}
	fb.Clear(0)
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Size matches the drivers.Displayer convention used by the HUD.
func (fb *FrameBuffer) Size() (w, h int) { return fb.width, fb.height }

// Clear fills every pixel with color and resets depth to FarDepth.
func (fb *FrameBuffer) Clear(color uint32) {
	for i := range fb.colors {
		fb.colors[i] = color
	}
	for i := range fb.depths {
		fb.depths[i] = FarDepth
	}
}

func (fb *FrameBuffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.width && y < fb.height
}

// SetPixel writes color at (x, y). Out of range writes are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, color uint32) {
	if !fb.inside(x, y) {
		return
	}
	fb.colors[y*fb.width+x] = color
}

// Pixel returns the packed color at (x, y), or 0 out of range.
func (fb *FrameBuffer) Pixel(x, y int) uint32 {
	if !fb.inside(x, y) {
		return 0
	}
	return fb.colors[y*fb.width+x]
}

// Depth returns the stored depth at (x, y), or FarDepth out of range.
func (fb *FrameBuffer) Depth(x, y int) float32 {
	if !fb.inside(x, y) {
		return FarDepth
	}
	return fb.depths[y*fb.width+x]
}

// IsVisible is the depth test-and-set. When z is nearer than the stored depth
// it stores z and returns true; otherwise depth is left as is.
func (fb *FrameBuffer) IsVisible(x, y int, z float32) bool {
	if !fb.inside(x, y) {
		return false
	}
	i := y*fb.width + x
	if z < fb.depths[i] {
		fb.depths[i] = z
		return true
	}
	return false
}

// Bound returns the clipped pixel box of a screen-space triangle.
//
// A triangle with any vertex at negative Z is rejected whole; there is no
// near-plane clipping.
func (fb *FrameBuffer) Bound(v0, v1, v2 Vector) BoundingBox {
	if v0.Z < 0 || v1.Z < 0 || v2.Z < 0 {
		return BoundingBox{}
	}
	w := float64(fb.width)
	h := float64(fb.height)

	bb := BoundingBox{
		MinX: clampPixel(math.Floor(float64(min(v0.X, v1.X, v2.X))), 0, w),
		MinY: clampPixel(math.Floor(float64(min(v0.Y, v1.Y, v2.Y))), 0, h),
		MaxX: clampPixel(math.Ceil(float64(max(v0.X, v1.X, v2.X))), -1, w-1),
		MaxY: clampPixel(math.Ceil(float64(max(v0.Y, v1.Y, v2.Y))), -1, h-1),
	}
	bb.ShouldRender = bb.MinX <= bb.MaxX && bb.MinY <= bb.MaxY
	return bb
}

// clampPixel clamps before converting so huge or NaN coordinates never reach
// the int conversion.
func clampPixel(v, lo, hi float64) int {
	if !(v > lo) {
		return int(lo)
	}
	if v > hi {
		return int(hi)
	}
	return int(v)
}

// Colors returns the packed pixels for presentation. The slice aliases the
// buffer and must not be modified.
func (fb *FrameBuffer) Colors() []uint32 { return fb.colors }

// Image copies the buffer into a new RGBA image.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, c := range fb.colors {
		binary.LittleEndian.PutUint32(img.Pix[i*4:], c)
	}
	return img
}
