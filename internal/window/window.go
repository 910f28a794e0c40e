// Package window presents sweep frames in a desktop window through GLFW and
// OpenGL 4.1 core. All functions must be called from the main OS thread.
package window

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"curvesweep/internal/config"
	"curvesweep/internal/geom"
	"curvesweep/internal/sweep"
)

// Window is a sweep.Renderer and sweep.Clock backed by a GLFW window.
type Window struct {
	win     *glfw.Window
	title   string
	palette config.Palette
	log     *slog.Logger

	program uint32
	curve   *lineBuffer

	// First vertex and vertex count of each finite run of the curve.
	runs     [][2]int32
	curveKey *geom.Point
	segments *lineBuffer

	frameTime   float64
	frameStart  float64
	lastFpsTime float64
	frameCount  int
}

var (
	_ sweep.Renderer = (*Window)(nil)
	_ sweep.Clock    = (*Window)(nil)
)

// New opens a fixed-size window described by cfg. The view is centered on
// the origin with y pointing up.
func New(cfg config.Config, log *slog.Logger) (*Window, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize gl: %w", err)
	}
	log.Debug("opengl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	gl.UseProgram(program)

	hw, hh := float32(cfg.Width)/2, float32(cfg.Height)/2
	mvp := mgl32.Ortho2D(-hw, hw, -hh, hh)
	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])

	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	bg := cfg.Palette.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)

	w := &Window{
		win:       win,
		title:     cfg.Title,
		palette:   cfg.Palette,
		log:       log,
		program:   program,
		curve:     newLineBuffer(program),
		segments:  newLineBuffer(program),
		frameTime: 1 / float64(cfg.FPS),
	}
	win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})
	now := glfw.GetTime()
	w.frameStart, w.lastFpsTime = now, now
	return w, nil
}

func (w *Window) PollEvents() { glfw.PollEvents() }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// Now returns the time since GLFW was initialized.
func (w *Window) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

// Present draws f, swaps buffers and waits out the rest of the frame so the
// loop runs at most at the configured rate.
func (w *Window) Present(f sweep.Frame) error {
	if len(f.Curve) > 0 && &f.Curve[0].P != w.curveKey {
		w.loadCurve(f)
	}

	w.segments.reset()
	for _, s := range f.Segments {
		c := w.palette.Segment(s.Kind)
		w.segments.add(s.P0, c)
		w.segments.add(s.P1, c)
	}
	w.segments.upload(gl.STREAM_DRAW)

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(w.program)

	gl.BindVertexArray(w.curve.vao)
	for _, r := range w.runs {
		gl.DrawArrays(gl.LINE_STRIP, r[0], r[1])
	}
	if w.segments.count > 0 {
		gl.BindVertexArray(w.segments.vao)
		gl.DrawArrays(gl.LINES, 0, w.segments.count)
	}

	w.win.SwapBuffers()
	w.limit()
	return nil
}

// loadCurve uploads the finite runs of the static curve.
func (w *Window) loadCurve(f sweep.Frame) {
	w.curveKey = &f.Curve[0].P
	w.curve.reset()
	w.runs = w.runs[:0]
	for _, run := range f.Curve.Runs() {
		w.runs = append(w.runs, [2]int32{int32(len(w.curve.data) / vertexSize), int32(len(run))})
		for _, p := range run {
			w.curve.add(p, w.palette.Curve)
		}
	}
	w.curve.upload(gl.STATIC_DRAW)
	w.log.Debug("curve uploaded", "runs", len(w.runs), "vertices", w.curve.count)
}

func (w *Window) limit() {
	now := glfw.GetTime()
	if wait := w.frameTime - (now - w.frameStart); wait > 0 {
		time.Sleep(time.Duration(wait * float64(time.Second)))
		now = glfw.GetTime()
	}
	w.frameStart = now

	w.frameCount++
	if now-w.lastFpsTime >= 1.0 {
		w.win.SetTitle(fmt.Sprintf("%s | FPS: %d", w.title, w.frameCount))
		w.frameCount = 0
		w.lastFpsTime = now
	}
}

// Close releases GL objects and the window.
func (w *Window) Close() {
	w.curve.delete()
	w.segments.delete()
	gl.DeleteProgram(w.program)
	w.win.Destroy()
	glfw.Terminate()
}
