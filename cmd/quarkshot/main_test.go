package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"quark/quarkgl"
	"quark/quarkgl/snapshot"
)

func TestRunWritesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.bmp")
	st, _, err := run(options{out: path, model: "cube", prim: quarkgl.Triangles, width: 64, height: 48, yaw: 30, pitch: 20})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Drawn == 0 || st.Culled == 0 {
		t.Fatalf("stats=%+v, want both drawn and culled faces", st)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := run(options{out: filepath.Join(dir, "a.png"), model: "teapot", width: 8, height: 8}); err == nil {
		t.Fatalf("unknown model accepted")
	}
	if _, _, err := run(options{out: filepath.Join(dir, "a.png"), model: "cube", width: 0, height: 8}); err == nil {
		t.Fatalf("zero width accepted")
	}
	_, _, err := run(options{out: filepath.Join(dir, "a.jpg"), model: "cube", width: 8, height: 8})
	if !errors.Is(err, snapshot.ErrUnknownFormat) {
		t.Fatalf("err=%v want ErrUnknownFormat", err)
	}
}

func TestRunWithMatrix(t *testing.T) {
	// Row-major translation pushing the cube away from the camera.
	m, err := parseMatrix("1,0,0,0, 0,1,0,0, 0,0,1,-2, 0,0,0,1")
	if err != nil {
		t.Fatalf("parseMatrix: %v", err)
	}
	if got := m.At(2, 3); got != -2 {
		t.Fatalf("At(2,3)=%v want -2", got)
	}

	path := filepath.Join(t.TempDir(), "cube.png")
	st, xf, err := run(options{out: path, model: "cube", prim: quarkgl.Triangles, width: 64, height: 48, transform: &m})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !xf.Equal(m) {
		t.Fatalf("transform not applied: %v", xf)
	}
	if st.Drawn == 0 {
		t.Fatalf("stats=%+v, want drawn faces", st)
	}
}

func TestParseMatrixErrors(t *testing.T) {
	tests := []string{
		"",
		"1,0,0,0",
		"1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,x",
		"1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1,0",
	}
	for _, in := range tests {
		if _, err := parseMatrix(in); err == nil {
			t.Fatalf("parseMatrix(%q) accepted", in)
		}
	}
}

func TestWriteMatrixRowMajor(t *testing.T) {
	m := quarkgl.MatrixTranslation(quarkgl.Vec(1, 2, 3, 0))
	var buf bytes.Buffer
	writeMatrix(&buf, m)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	want := []string{"1.0000", "2.0000", "3.0000"}
	for r, w := range want {
		if !strings.HasSuffix(strings.TrimSuffix(lines[r], "]"), w) {
			t.Fatalf("row %d = %q, want translation %s last", r, lines[r], w)
		}
	}
}
