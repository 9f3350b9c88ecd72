package sim

import (
	"testing"

	"github.com/gogpu/fovea"
)

const testSession = fovea.Session(7)

func mustNew(t *testing.T, p Profile) *Runtime {
	t.Helper()
	rt, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rt
}

func TestNewRejectsDuplicateView(t *testing.T) {
	p := DefaultProfile()
	p.Views = append(p.Views, p.Views[0])
	if _, err := New(p); err == nil {
		t.Error("duplicate view should fail")
	}
}

func TestNewRejectsDuplicateSize(t *testing.T) {
	p := DefaultProfile()
	p.Sizes = append(p.Sizes, p.Sizes[0])
	if _, err := New(p); err == nil {
		t.Error("duplicate size should fail")
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	p := DefaultProfile()
	p.Sizes[0].Kind = "cubemap"
	if _, err := New(p); err == nil {
		t.Error("unknown size kind should fail")
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	p := DefaultProfile()
	p.Sizes[0].Width = 0
	if _, err := New(p); err == nil {
		t.Error("zero width should fail")
	}
}

func TestTextureSizeUnscripted(t *testing.T) {
	rt := mustNew(t, DefaultProfile())
	if _, err := rt.TextureSize(testSession, fovea.TextureSizeQuad, fovea.ViewLeftFull); err == nil {
		t.Error("unscripted size should fail")
	}
}

func TestFoveatedFallsBackToStatic(t *testing.T) {
	rt := mustNew(t, DefaultProfile())

	static, err := rt.StaticFovTangents(testSession, fovea.ViewLeftFocus)
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	foveated, err := rt.FoveatedFovTangents(testSession, fovea.ViewLeftFocus, fovea.NeutralGaze(), fovea.FoveatedHints{})
	if err != nil {
		t.Fatalf("foveated: %v", err)
	}
	if foveated != static {
		t.Errorf("unscripted foveated frustum = %+v, want static %+v", foveated, static)
	}
}

func TestFoveatedWindowFollowsGaze(t *testing.T) {
	rt := mustNew(t, DefaultProfile())

	tests := []struct {
		name    string
		forward fovea.Vector3
		want    fovea.FovTangents
	}{
		{
			name:    "gaze right and down",
			forward: fovea.Vector3{X: 0.25, Y: -0.125, Z: 1},
			want:    fovea.FovTangents{Left: -0.25, Right: 0.75, Top: 0.375, Bottom: -0.625},
		},
		{
			name:    "slides back at the right edge",
			forward: fovea.Vector3{X: 1, Z: 1},
			want:    fovea.FovTangents{Left: 0, Right: 1, Top: 0.5, Bottom: -0.5},
		},
		{
			name:    "slides back at the left edge",
			forward: fovea.Vector3{X: -2, Z: 1},
			want:    fovea.FovTangents{Left: -1, Right: 0, Top: 0.5, Bottom: -0.5},
		},
		{
			name:    "slides back at the top edge",
			forward: fovea.Vector3{Y: 1, Z: 1},
			want:    fovea.FovTangents{Left: -0.5, Right: 0.5, Top: 1, Bottom: 0},
		},
		{
			name:    "divergent sample leaves the script alone",
			forward: fovea.Vector3{X: 0.5, Z: 0},
			want:    fovea.FovTangents{Left: -0.5, Right: 0.5, Top: 0.5, Bottom: -0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gaze := fovea.NeutralGaze()
			gaze.Combined.Forward = tt.forward
			got, err := rt.FoveatedFovTangents(testSession, fovea.ViewLeftFocus, gaze, fovea.FoveatedHints{})
			if err != nil {
				t.Fatalf("FoveatedFovTangents: %v", err)
			}
			if got != tt.want {
				t.Errorf("window = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFoveatedFullViewIgnoresGaze(t *testing.T) {
	rt := mustNew(t, DefaultProfile())

	gaze := fovea.NeutralGaze()
	gaze.Combined.Forward = fovea.Vector3{X: 0.25, Z: 1}
	got, err := rt.FoveatedFovTangents(testSession, fovea.ViewLeftFull, gaze, fovea.FoveatedHints{})
	if err != nil {
		t.Fatalf("FoveatedFovTangents: %v", err)
	}
	want := fovea.FovTangents{Left: -1, Right: 1, Top: 1, Bottom: -1}
	if got != want {
		t.Errorf("full frustum = %+v, want scripted %+v", got, want)
	}
}

func TestGazeUntracked(t *testing.T) {
	p := DefaultProfile()
	p.Gaze = GazeProfile{}
	rt := mustNew(t, p)

	if _, ok := rt.Gaze(testSession); ok {
		t.Error("untracked profile should fail gaze queries")
	}
}

func TestGazeCyclesSamples(t *testing.T) {
	p := DefaultProfile()
	p.Gaze.Samples = []GazeSample{
		{X: 0.1, Z: 0.99},
		{X: -0.1, Z: 0.99},
	}
	rt := mustNew(t, p)

	want := []fovea.Vector3{
		{X: 0.1, Z: 0.99},
		{X: -0.1, Z: 0.99},
		{X: 0.1, Z: 0.99},
	}
	for i, forward := range want {
		gaze, ok := rt.Gaze(testSession)
		if !ok {
			t.Fatalf("call %d: gaze should succeed", i)
		}
		if gaze.Combined.Forward != forward {
			t.Errorf("call %d forward = %+v, want %+v", i, gaze.Combined.Forward, forward)
		}
		if gaze.LeftEye.Forward != forward || gaze.RightEye.Forward != forward {
			t.Errorf("call %d eye rays should follow the combined ray", i)
		}
		if gaze.CaptureTime != int64(i) {
			t.Errorf("call %d CaptureTime = %d, want %d", i, gaze.CaptureTime, i)
		}
	}
}

func TestGazeDefaultsStraightAhead(t *testing.T) {
	rt := mustNew(t, DefaultProfile())

	gaze, ok := rt.Gaze(testSession)
	if !ok {
		t.Fatal("tracked profile should serve gaze")
	}
	if gaze.Combined.Forward != (fovea.Vector3{Z: 1}) {
		t.Errorf("forward = %+v, want straight ahead", gaze.Combined.Forward)
	}
	if gaze.Stability != 1 {
		t.Errorf("stability = %v, want 1", gaze.Stability)
	}
}

func TestViewDescriptionFromStereoSize(t *testing.T) {
	rt := mustNew(t, DefaultProfile())

	desc, err := rt.ViewDescription(testSession, fovea.ViewLeftFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fovea.ViewDescription{Width: 1400, Height: 1400, Enabled: true}
	if desc != want {
		t.Errorf("ViewDescription = %+v, want %+v", desc, want)
	}

	if _, err := rt.ViewDescription(testSession, fovea.ViewIndex(9)); err == nil {
		t.Error("unscripted view should fail")
	}
}

func TestSubmitFrameRecordsDeepCopy(t *testing.T) {
	rt := mustNew(t, DefaultProfile())

	layer := &fovea.MultiProjLayer{
		Header: fovea.LayerHeader{Type: fovea.LayerTypeMultiProj},
		Views: []fovea.ProjectionView{
			{Viewport: fovea.SwapchainViewport{Swapchain: 3, Width: 100, Height: 100}},
		},
	}
	if err := rt.SubmitFrame(testSession, &fovea.Submission{FrameNumber: 42, Layers: []fovea.Layer{layer}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the submitted layer afterwards must not reach the record.
	layer.Views[0].Viewport.Width = 999

	frames := rt.Frames()
	if len(frames) != 1 || frames[0].FrameNumber != 42 {
		t.Fatalf("frames = %+v, want one frame 42", frames)
	}
	rec := frames[0].Layers[0].(*fovea.MultiProjLayer)
	if rec.Views[0].Viewport.Width != 100 {
		t.Errorf("recorded width = %d, want 100 (deep copy)", rec.Views[0].Viewport.Width)
	}
}

func TestSubmitFrameNil(t *testing.T) {
	rt := mustNew(t, DefaultProfile())
	if err := rt.SubmitFrame(testSession, nil); err == nil {
		t.Error("nil submission should fail")
	}
}

func TestReset(t *testing.T) {
	rt := mustNew(t, DefaultProfile())

	if err := rt.SubmitFrame(testSession, &fovea.Submission{FrameNumber: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt.Gaze(testSession)
	rt.Reset()

	if frames := rt.Frames(); len(frames) != 0 {
		t.Errorf("frames after reset = %d, want 0", len(frames))
	}
	gaze, ok := rt.Gaze(testSession)
	if !ok || gaze.CaptureTime != 0 {
		t.Errorf("gaze script should rewind, CaptureTime = %d", gaze.CaptureTime)
	}
}

// TestFoveatorAgainstSimulatedHost drives the real decorator against the
// scripted host: negotiation doubles the focus base resolution and a
// placeholder focus view lands centered at half extent.
func TestFoveatorAgainstSimulatedHost(t *testing.T) {
	rt := mustNew(t, DefaultProfile())
	fv := fovea.New(rt)

	size, err := fv.TextureSize(testSession, fovea.TextureSizeStereo, fovea.ViewLeftFull)
	if err != nil {
		t.Fatalf("TextureSize: %v", err)
	}
	if want := (fovea.Size{Width: 2000, Height: 2000}); size != want {
		t.Errorf("negotiated size = %+v, want %+v", size, want)
	}

	fullProj := fovea.ProjectionFromTangents(fovea.FovTangents{Left: -1, Right: 1, Top: 1, Bottom: -1})
	layer := &fovea.MultiProjLayer{
		Header: fovea.LayerHeader{Type: fovea.LayerTypeMultiProj},
		Views: []fovea.ProjectionView{
			{Projection: fullProj, Viewport: fovea.SwapchainViewport{Swapchain: 5, Width: 1000, Height: 1000}},
			{Projection: fullProj, Viewport: fovea.SwapchainViewport{Swapchain: 5, X: 1000, Width: 1000, Height: 1000}},
			{Viewport: fovea.SwapchainViewport{Swapchain: 9, Width: 1, Height: 1}},
			{Viewport: fovea.SwapchainViewport{Swapchain: 9, Width: 1, Height: 1}},
		},
	}
	if err := fv.SubmitFrame(testSession, &fovea.Submission{FrameNumber: 60, Layers: []fovea.Layer{layer}}); err != nil {
		t.Fatalf("SubmitFrame: %v", err)
	}

	frames := rt.Frames()
	if len(frames) != 1 {
		t.Fatalf("recorded %d frames, want 1", len(frames))
	}
	got := frames[0].Layers[0].(*fovea.MultiProjLayer)
	want := fovea.SwapchainViewport{Swapchain: 5, X: 250, Y: 250, Width: 500, Height: 500}
	if got.Views[2].Viewport != want {
		t.Errorf("left focus viewport = %+v, want %+v", got.Views[2].Viewport, want)
	}
	wantRight := want
	wantRight.X = 1250
	if got.Views[3].Viewport != wantRight {
		t.Errorf("right focus viewport = %+v, want %+v", got.Views[3].Viewport, wantRight)
	}
	if got.Header.Flags&fovea.LayerFoveated == 0 {
		t.Error("patched layer should carry the foveated flag")
	}
	// The caller's own layer keeps its placeholders.
	if !layer.Views[2].Viewport.IsPlaceholder() {
		t.Error("caller layer mutated")
	}
}

// TestFoveatorGazeShiftsPlacement runs the decorator with real gaze
// queries enabled: a scripted rightward sample slides both focus
// viewports toward the right edge of their reference frames.
func TestFoveatorGazeShiftsPlacement(t *testing.T) {
	p := DefaultProfile()
	p.Gaze.Samples = []GazeSample{{X: 0.25, Z: 1}}
	rt := mustNew(t, p)
	fv := fovea.New(rt, fovea.WithFoveatedGaze(true))

	fullProj := fovea.ProjectionFromTangents(fovea.FovTangents{Left: -1, Right: 1, Top: 1, Bottom: -1})
	layer := &fovea.MultiProjLayer{
		Header: fovea.LayerHeader{Type: fovea.LayerTypeMultiProj},
		Views: []fovea.ProjectionView{
			{Projection: fullProj, Viewport: fovea.SwapchainViewport{Swapchain: 5, Width: 1000, Height: 1000}},
			{Projection: fullProj, Viewport: fovea.SwapchainViewport{Swapchain: 5, X: 1000, Width: 1000, Height: 1000}},
			{Viewport: fovea.SwapchainViewport{Swapchain: 9, Width: 1, Height: 1}},
			{Viewport: fovea.SwapchainViewport{Swapchain: 9, Width: 1, Height: 1}},
		},
	}
	if err := fv.SubmitFrame(testSession, &fovea.Submission{FrameNumber: 61, Layers: []fovea.Layer{layer}}); err != nil {
		t.Fatalf("SubmitFrame: %v", err)
	}

	got := rt.Frames()[0].Layers[0].(*fovea.MultiProjLayer)
	want := fovea.SwapchainViewport{Swapchain: 5, X: 375, Y: 250, Width: 500, Height: 500}
	if got.Views[2].Viewport != want {
		t.Errorf("left focus viewport = %+v, want %+v", got.Views[2].Viewport, want)
	}
	wantRight := want
	wantRight.X = 1375
	if got.Views[3].Viewport != wantRight {
		t.Errorf("right focus viewport = %+v, want %+v", got.Views[3].Viewport, wantRight)
	}
}
