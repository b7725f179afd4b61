// Command quarkshot renders one frame of a model without a window and writes
// it to an image file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/math/f32"

	"quark/app"
	"quark/quarkgl"
	"quark/quarkgl/snapshot"
)

const defaultOutPath = "quark.png"

type options struct {
	out    string
	model  string
	prim   quarkgl.Primitive
	width  int
	height int
	yaw    float32
	pitch  float32

	// transform replaces the yaw/pitch rotation when set.
	transform *quarkgl.Matrix
}

func main() {
	var o options
	var mode, matrix string
	var yaw, pitch float64
	var verbose bool
	flag.StringVar(&o.out, "out", defaultOutPath, "Output image path (.png, .bmp, .tif, .tiff).")
	flag.StringVar(&o.model, "model", "cube", "Model to render: "+strings.Join(app.ModelNames(), "|")+".")
	flag.StringVar(&mode, "mode", "triangles", "Primitive mode: triangles|lines|points.")
	flag.IntVar(&o.width, "width", 800, "Image width in pixels.")
	flag.IntVar(&o.height, "height", 450, "Image height in pixels.")
	flag.Float64Var(&yaw, "yaw", 30, "Model rotation about Y in degrees.")
	flag.Float64Var(&pitch, "pitch", 20, "Model rotation about X in degrees.")
	flag.StringVar(&matrix, "matrix", "", "Model transform as 16 comma-separated row-major values; overrides -yaw and -pitch.")
	flag.BoolVar(&verbose, "v", false, "Print the model transform.")
	flag.Parse()

	if o.out == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	prim, err := quarkgl.ParsePrimitive(mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	o.prim = prim
	o.yaw, o.pitch = float32(yaw), float32(pitch)

	if matrix != "" {
		m, err := parseMatrix(matrix)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
		o.transform = &m
	}

	st, xf, err := run(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if verbose {
		writeMatrix(os.Stdout, xf)
	}
	fmt.Printf("%s: %dx%d drawn=%d culled=%d skipped=%d\n", o.out, o.width, o.height, st.Drawn, st.Culled, st.Skipped)
}

// run renders the model and returns the stats and the model transform used.
func run(o options) (quarkgl.Stats, quarkgl.Matrix, error) {
	m, ok := app.Models[o.model]
	if !ok {
		return quarkgl.Stats{}, quarkgl.Matrix{}, fmt.Errorf("unknown model %q", o.model)
	}
	if o.width <= 0 || o.height <= 0 {
		return quarkgl.Stats{}, quarkgl.Matrix{}, fmt.Errorf("invalid size %dx%d", o.width, o.height)
	}
	if _, err := snapshot.FormatFromPath(o.out); err != nil {
		return quarkgl.Stats{}, quarkgl.Matrix{}, err
	}

	mesh := m.Build()
	mesh.Primitive = o.prim
	if o.transform != nil {
		mesh.Transform = *o.transform
	} else {
		mesh.Transform = quarkgl.MatrixRotation(quarkgl.Vec(0, 1, 0, 0), quarkgl.Radians(o.yaw)).
			Mul(quarkgl.MatrixRotation(quarkgl.Vec(1, 0, 0, 0), quarkgl.Radians(o.pitch)+m.Tilt))
	}

	s := quarkgl.CreateScene(1)
	s.AddMesh(mesh)

	fb := quarkgl.NewFrameBuffer(o.width, o.height)
	st := s.Render(fb)
	if err := snapshot.WriteFile(o.out, fb.Image()); err != nil {
		return st, mesh.Transform, err
	}
	return st, mesh.Transform, nil
}

// parseMatrix reads 16 comma-separated values in row-major order.
func parseMatrix(s string) (quarkgl.Matrix, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 16 {
		return quarkgl.Matrix{}, fmt.Errorf("matrix: want 16 values, got %d", len(fields))
	}
	var a f32.Mat4
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return quarkgl.Matrix{}, fmt.Errorf("matrix: value %d: %w", i, err)
		}
		a[i] = float32(v)
	}
	return quarkgl.MatrixFromMat4(a), nil
}

// writeMatrix prints m one row per line.
func writeMatrix(w io.Writer, m quarkgl.Matrix) {
	a := m.Mat4()
	for r := 0; r < 4; r++ {
		fmt.Fprintf(w, "[% 9.4f % 9.4f % 9.4f % 9.4f]\n", a[r*4], a[r*4+1], a[r*4+2], a[r*4+3])
	}
}
