package hal

import "sync"

// hostFramebuffer double-buffers: the app draws into buf, Present copies it to
// front, and the window reads front.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	format PixelFormat
	buf    []byte

	frontMu  sync.Mutex
	front    []byte
	presents uint64
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * format.BytesPerPixel()
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Lock()               { f.mu.Lock() }
func (f *hostFramebuffer) Unlock()             { f.mu.Unlock() }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frontMu.Lock()
	defer f.frontMu.Unlock()
	copy(f.front, f.buf)
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.format {
	case PixelFormatRGB565:
		pixel := rgb565(r, g, b)
		lo := byte(pixel)
		hi := byte(pixel >> 8)
		for i := 0; i+1 < len(f.buf); i += 2 {
			f.buf[i] = lo
			f.buf[i+1] = hi
		}
	case PixelFormatRGBA8888:
		for i := 0; i+3 < len(f.buf); i += 4 {
			f.buf[i] = r
			f.buf[i+1] = g
			f.buf[i+2] = b
			f.buf[i+3] = 0xFF
		}
	}
}

// snapshotRGBA copies the last presented frame into dst as RGBA8888 and
// reports how many frames have been presented so far.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) uint64 {
	f.frontMu.Lock()
	defer f.frontMu.Unlock()
	rowOut := f.width * 4
	for y := 0; y < f.height; y++ {
		src := f.front[y*f.stride : y*f.stride+f.width*f.format.BytesPerPixel()]
		toRGBA(dst[y*rowOut:(y+1)*rowOut], src, f.format)
	}
	return f.presents
}
