package quarkgl

// Target receives finished frames from a FrameBuffer.
type Target interface {
	Blit(fb *FrameBuffer)
}

// RGB565Target writes into a little-endian RGB565 pixel buffer.
//
// Callers provide the backing buffer and its row stride in bytes. Pixels
// outside either the target or the FrameBuffer are left untouched.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Blit(fb *FrameBuffer) {
	w, h, ok := blitSize(fb, t.Buf, t.Stride, t.W, t.H)
	if !ok {
		return
	}
	for y := 0; y < h; y++ {
		row := y * t.Stride
		src := fb.colors[y*fb.width : y*fb.width+w]
		for x, p := range src {
			off := row + x*2
			if off+1 >= len(t.Buf) {
				break
			}
			c := rgb565From888(uint8(p), uint8(p>>8), uint8(p>>16))
			t.Buf[off] = byte(c)
			t.Buf[off+1] = byte(c >> 8)
		}
	}
}

// RGBA8888Target writes into a buffer with bytes R, G, B, A per pixel.
type RGBA8888Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGBA8888Target) Blit(fb *FrameBuffer) {
	w, h, ok := blitSize(fb, t.Buf, t.Stride, t.W, t.H)
	if !ok {
		return
	}
	for y := 0; y < h; y++ {
		row := y * t.Stride
		src := fb.colors[y*fb.width : y*fb.width+w]
		for x, p := range src {
			off := row + x*4
			if off+3 >= len(t.Buf) {
				break
			}
			t.Buf[off] = uint8(p)
			t.Buf[off+1] = uint8(p >> 8)
			t.Buf[off+2] = uint8(p >> 16)
			t.Buf[off+3] = uint8(p >> 24)
		}
	}
}

func blitSize(fb *FrameBuffer, buf []byte, stride, tw, th int) (w, h int, ok bool) {
	if fb == nil || buf == nil || stride <= 0 || tw <= 0 || th <= 0 {
		return 0, 0, false
	}
	return min(tw, fb.width), min(th, fb.height), true
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
