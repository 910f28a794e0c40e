package sweep

import (
	"errors"
	"math"
	"testing"
	"time"

	"curvesweep/internal/config"
	"curvesweep/internal/geom"
	"curvesweep/internal/graph"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{9, 9},
		{10, 0},
		{12, 2},
		{25, 5},
		{9.5, 9.5},
	}
	for _, tt := range tests {
		if got := Wrap(tt.t, 0, 10); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Wrap(%g, 0, 10) = %g, want %g", tt.t, got, tt.want)
		}
	}
}

func TestWrapStaysInDomain(t *testing.T) {
	v := 9.0
	for i := 0; i < 4; i++ {
		v = Wrap(v+3, 0, 10)
		if v < 0 || v >= 10 {
			t.Fatalf("after %d advances t=%g left [0, 10)", i+1, v)
		}
	}
	if want := 9.0 + 12 - 20; math.Abs(v-want) > 1e-12 {
		t.Errorf("t=%g, want %g", v, want)
	}
}

func lineConfig() config.Config {
	c := config.Default()
	c.FPS = 1
	c.Cycle = 5 * time.Second
	c.Curve = graph.Curve{
		Name:  "line",
		X:     func(t float64) float64 { return t },
		Y:     func(t float64) float64 { return 2 * t },
		Start: 0,
		End:   10,
	}
	return c
}

func TestNewDriver(t *testing.T) {
	d := NewDriver(lineConfig(), nil)
	if d.Param() != 0 {
		t.Errorf("initial parameter %g, want 0", d.Param())
	}
	segs := d.Segments()
	if len(segs) != 2 || segs[0].Kind != geom.Tangent || segs[1].Kind != geom.Normal {
		t.Fatalf("initial segments %v, want tangent and normal", segs)
	}
}

func TestStepWraps(t *testing.T) {
	d := NewDriver(lineConfig(), nil)
	// 10 units per 5 s at one tick per second.
	d.t = 9
	d.Step()
	if math.Abs(d.Param()-1) > 1e-12 {
		t.Errorf("parameter %g, want 1", d.Param())
	}
	center := d.Segments()[0].P0.Midpoint(d.Segments()[0].P1)
	if diff := cmp.Diff(geom.Pt(1, 2), center, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("segments not regenerated at new parameter: %s", diff)
	}
}

func TestAdvanceConsumesWholeTicks(t *testing.T) {
	d := NewDriver(lineConfig(), nil)
	if n := d.Advance(3500 * time.Millisecond); n != 3 {
		t.Errorf("consumed %d ticks, want 3", n)
	}
	if math.Abs(d.Param()-6) > 1e-12 {
		t.Errorf("parameter %g, want 6", d.Param())
	}
	if n := d.Advance(400 * time.Millisecond); n != 0 {
		t.Errorf("consumed %d ticks, want 0", n)
	}
	if n := d.Advance(100 * time.Millisecond); n != 1 {
		t.Errorf("consumed %d ticks, want 1", n)
	}
	if n := d.Advance(-time.Second); n != 0 {
		t.Errorf("consumed %d ticks on negative elapsed, want 0", n)
	}
	if math.Abs(d.Param()-8) > 1e-12 {
		t.Errorf("parameter %g, want 8", d.Param())
	}
}

func TestAdvanceRateIndependentOfFrames(t *testing.T) {
	cfg := config.Default()
	fast, slow := NewDriver(cfg, nil), NewDriver(cfg, nil)
	for i := 0; i < 600; i++ {
		fast.Advance(time.Second / 120)
	}
	for i := 0; i < 50; i++ {
		slow.Advance(time.Second / 10)
	}
	if math.Abs(fast.Param()-slow.Param()) > 1e-9 {
		t.Errorf("parameter after 5 s differs: %g at 120 fps, %g at 10 fps", fast.Param(), slow.Param())
	}
}

func TestStationaryPointHasNoSegments(t *testing.T) {
	cfg := lineConfig()
	cfg.Curve.X = func(float64) float64 { return 4 }
	cfg.Curve.Y = func(float64) float64 { return 4 }
	d := NewDriver(cfg, nil)
	d.Step()
	if n := len(d.Segments()); n != 0 {
		t.Errorf("got %d segments, want 0", n)
	}
}

type fakeRenderer struct {
	frames []Frame
	limit  int
	err    error
	polls  int
}

func (r *fakeRenderer) PollEvents()       { r.polls++ }
func (r *fakeRenderer) ShouldClose() bool { return len(r.frames) >= r.limit }

func (r *fakeRenderer) Present(f Frame) error {
	f.Segments = append([]geom.Segment(nil), f.Segments...)
	r.frames = append(r.frames, f)
	return r.err
}

func TestRun(t *testing.T) {
	cfg := lineConfig()
	d := NewDriver(cfg, nil)
	curve := graph.Plot(cfg.Curve.X, cfg.Curve.Y, cfg.Curve.Start, cfg.Curve.End, cfg.Steps)
	r := &fakeRenderer{limit: 7}

	if err := Run(d, curve, r, NewFixedClock(cfg.Tick())); err != nil {
		t.Fatal(err)
	}
	if len(r.frames) != 7 {
		t.Fatalf("presented %d frames, want 7", len(r.frames))
	}
	if r.polls != 8 {
		t.Errorf("polled %d times, want 8", r.polls)
	}
	var got []float64
	for _, f := range r.frames {
		got = append(got, f.T)
		if len(f.Curve) != cfg.Steps+1 {
			t.Errorf("frame curve has %d samples, want %d", len(f.Curve), cfg.Steps+1)
		}
		if len(f.Segments) != 2 {
			t.Errorf("frame has %d segments, want 2", len(f.Segments))
		}
	}
	want := []float64{2, 4, 6, 8, 0, 2, 4}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Error(diff)
	}
}

func TestRunPropagatesError(t *testing.T) {
	errPresent := errors.New("present failed")
	r := &fakeRenderer{limit: 10, err: errPresent}
	d := NewDriver(lineConfig(), nil)
	if err := Run(d, nil, r, NewFixedClock(time.Second)); !errors.Is(err, errPresent) {
		t.Errorf("got %v, want %v", err, errPresent)
	}
	if len(r.frames) != 1 {
		t.Errorf("presented %d frames, want 1", len(r.frames))
	}
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(time.Millisecond)
	for i := 0; i < 3; i++ {
		if got, want := c.Now(), time.Duration(i)*time.Millisecond; got != want {
			t.Errorf("read %d: %v, want %v", i, got, want)
		}
	}
}
