// Package app is the interactive model viewer running on top of a HAL.
package app

import (
	"fmt"
	"log/slog"
	"math"

	"quark/hal"
	"quark/internal/buildinfo"
	"quark/quarkgl"
	"quark/quarkgl/snapshot"
)

const (
	orbitStep   = 0.05
	zoomStep    = 0.5
	orbitRadius = 5
)

var (
	axisX = quarkgl.Vec(1, 0, 0, 0)
	axisY = quarkgl.Vec(0, 1, 0, 0)
)

type program struct {
	h   hal.HAL
	cfg Config
	log *slog.Logger

	fb     *quarkgl.FrameBuffer
	target quarkgl.Target
	scene  *quarkgl.Scene
	mesh   int
	tilt   quarkgl.Matrix
	orbit  *quarkgl.OrbitController

	angle    float32
	lastTick uint64
	frames   uint64
	stats    quarkgl.Stats
	snapped  bool
}

// New starts the viewer with DefaultConfig.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig builds the viewer and returns its per-frame step. The step
// returns ErrQuit once the user asks to exit.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	p, err := newProgram(h, cfg)
	if err != nil {
		return nil, err
	}
	return guard(h, p.step), nil
}

func newProgram(h hal.HAL, cfg Config) (*program, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}

	log := cfg.Logger
	if log == nil {
		log = newLogger(h.Logger())
	}

	out := h.Display().Framebuffer()
	w, ht := out.Width(), out.Height()
	var target quarkgl.Target
	switch out.Format() {
	case hal.PixelFormatRGB565:
		target = &quarkgl.RGB565Target{Buf: out.Buffer(), Stride: out.StrideBytes(), W: w, H: ht}
	case hal.PixelFormatRGBA8888:
		target = &quarkgl.RGBA8888Target{Buf: out.Buffer(), Stride: out.StrideBytes(), W: w, H: ht}
	default:
		return nil, fmt.Errorf("app: pixel format %v: %w", out.Format(), hal.ErrNotImplemented)
	}

	model := Models[cfg.Model]
	mesh := model.Build()
	mesh.Primitive = cfg.Primitive

	s := quarkgl.CreateScene(1)
	s.ClearColor = cfg.ClearColor
	s.SetLogger(log)

	p := &program{
		h:      h,
		cfg:    cfg,
		log:    log,
		fb:     quarkgl.NewFrameBuffer(w, ht),
		target: target,
		scene:  s,
		mesh:   s.AddMesh(mesh),
		tilt:   quarkgl.MatrixRotation(axisX, model.Tilt),
		orbit:  quarkgl.NewOrbitController(quarkgl.Point(0, 0, 0), orbitRadius),
	}
	p.orbit.MinRadius = 2
	p.orbit.MaxRadius = 20

	log.Info("quark: start",
		"build", buildinfo.String(),
		"kernel", quarkgl.KernelInfo(),
		"model", cfg.Model,
		"mode", cfg.Primitive,
		"size", fmt.Sprintf("%dx%d", w, ht),
		"format", out.Format(),
	)
	return p, nil
}

func (p *program) step() error {
	if err := p.pollKeys(); err != nil {
		return err
	}
	p.advance()

	p.orbit.Update()
	p.orbit.Apply(&p.scene.Camera)
	p.scene.UpdateMeshTransform(p.mesh, quarkgl.MatrixRotation(axisY, p.angle).Mul(p.tilt))
	p.stats = p.scene.Render(p.fb)
	p.frames++

	if p.cfg.Snapshot != "" && !p.snapped {
		p.snapped = true
		if err := snapshot.WriteFile(p.cfg.Snapshot, p.fb.Image()); err != nil {
			return fmt.Errorf("app: %w", err)
		}
		p.log.Info("quark: snapshot written", "path", p.cfg.Snapshot)
	}

	if p.cfg.HUD {
		drawHUD(p.fb, p.hudLines(), "W MODE  H HUD  Q QUIT")
	}

	out := p.h.Display().Framebuffer()
	out.Lock()
	p.target.Blit(p.fb)
	out.Unlock()
	if err := out.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (p *program) hudLines() []string {
	return []string{
		"QUARKGL " + buildinfo.Short(),
		fmt.Sprintf("%s / %s", p.cfg.Model, p.cfg.Primitive),
		fmt.Sprintf("frame %d drawn %d culled %d", p.frames, p.stats.Drawn, p.stats.Culled),
		"kernel " + quarkgl.KernelBackend,
	}
}

// pollKeys drains pending key events without blocking.
func (p *program) pollKeys() error {
	in := p.h.Input()
	if in == nil || in.Keyboard() == nil {
		return nil
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if err := p.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (p *program) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyLeft:
		p.orbit.Rotate(-orbitStep, 0)
	case hal.KeyRight:
		p.orbit.Rotate(orbitStep, 0)
	case hal.KeyUp:
		p.orbit.Rotate(0, orbitStep)
	case hal.KeyDown:
		p.orbit.Rotate(0, -orbitStep)
	case hal.KeyPageUp:
		p.orbit.Zoom(-zoomStep)
	case hal.KeyPageDown:
		p.orbit.Zoom(zoomStep)
	}

	switch ev.Rune {
	case 'q', 'Q':
		return ErrQuit
	case 'w', 'W':
		p.cfg.Primitive = p.cfg.Primitive.Next()
		p.scene.SetMeshPrimitive(p.mesh, p.cfg.Primitive)
		p.log.Info("quark: mode", "mode", p.cfg.Primitive)
	case 'h', 'H':
		p.cfg.HUD = !p.cfg.HUD
	}
	return nil
}

// advance spins the model by the ticks elapsed since the last step.
func (p *program) advance() {
	t := p.h.Time()
	if t == nil || t.Ticks() == nil {
		return
	}
	ch := t.Ticks()
	for {
		select {
		case seq := <-ch:
			if seq > p.lastTick {
				p.angle += float32(seq-p.lastTick) * p.cfg.SpinRate
				p.lastTick = seq
			}
		default:
			p.angle = float32(math.Mod(float64(p.angle), 2*math.Pi))
			return
		}
	}
}
