package fovea

import (
	"errors"
	"fmt"
	"testing"
)

// sizeKey identifies one texture-size query.
type sizeKey struct {
	kind TextureSizeKind
	view ViewIndex
}

// capturedLayer records one forwarded layer: the pointer as received and,
// for multi-projection layers, a deep copy taken during the call. The
// copy matters because forwarded storage is recycled once SubmitFrame
// returns, so assertions must not read through the received pointer.
type capturedLayer struct {
	received Layer
	snapshot *MultiProjLayer
}

// capturedSubmission records one forwarded frame submission.
type capturedSubmission struct {
	frame  int64
	layers []capturedLayer
}

// mockRuntime implements Runtime for testing. The projection helpers use
// the package's reference math so patched geometry round-trips for real;
// everything else is steered by the configuration fields and recorded.
type mockRuntime struct {
	static   map[ViewIndex]FovTangents
	foveated map[ViewIndex]FovTangents
	sizes    map[sizeKey]Size
	descs    map[ViewIndex]ViewDescription

	gaze   Gaze
	gazeOK bool

	staticErr   error
	foveatedErr error
	sizeErr     error
	descErr     error
	submitErr   error

	gazeCalls     int
	staticCalls   int
	foveatedCalls int
	sizeCalls     []sizeKey
	lastGazeArg   Gaze
	lastHintsArg  FoveatedHints
	submits       []capturedSubmission
}

// newMockRuntime returns a mock preloaded with a symmetric headset:
// full views spanning tangent 1 on every edge, focus views spanning
// tangent 0.5, focus base resolution 1000x1000 (800x800 on the quadrant
// path), and a distinctive tracked host gaze.
func newMockRuntime() *mockRuntime {
	full := FovTangents{Left: -1, Right: 1, Top: 1, Bottom: -1}
	focus := FovTangents{Left: -0.5, Right: 0.5, Top: 0.5, Bottom: -0.5}
	views := map[ViewIndex]FovTangents{
		ViewLeftFull:   full,
		ViewRightFull:  full,
		ViewLeftFocus:  focus,
		ViewRightFocus: focus,
	}
	foveated := make(map[ViewIndex]FovTangents, len(views))
	for v, t := range views {
		foveated[v] = t
	}
	hostGaze := NeutralGaze()
	hostGaze.Stability = 0.25
	hostGaze.FocusDistance = 1.5
	hostGaze.Combined.Forward = Vector3{X: 0.1, Y: -0.2, Z: 0.97}
	return &mockRuntime{
		static:   views,
		foveated: foveated,
		sizes: map[sizeKey]Size{
			{TextureSizeDynamicFoveation, ViewLeftFocus}:  {Width: 1000, Height: 1000},
			{TextureSizeDynamicFoveation, ViewRightFocus}: {Width: 1000, Height: 1000},
			{TextureSizeQuad, ViewLeftFocus}:              {Width: 800, Height: 800},
			{TextureSizeQuad, ViewRightFocus}:             {Width: 800, Height: 800},
			{TextureSizeStereo, ViewLeftFull}:             {Width: 1400, Height: 1400},
			{TextureSizeStereo, ViewRightFull}:            {Width: 1400, Height: 1400},
			{TextureSizeStereo, ViewLeftFocus}:            {Width: 1000, Height: 1000},
			{TextureSizeStereo, ViewRightFocus}:           {Width: 1000, Height: 1000},
		},
		descs: map[ViewIndex]ViewDescription{
			ViewLeftFull:   {Width: 1400, Height: 1400, Enabled: true},
			ViewRightFull:  {Width: 1400, Height: 1400, Enabled: true},
			ViewLeftFocus:  {Width: 1000, Height: 1000, Enabled: true},
			ViewRightFocus: {Width: 1000, Height: 1000, Enabled: true},
		},
		gaze:   hostGaze,
		gazeOK: true,
	}
}

func (m *mockRuntime) TextureSize(_ Session, kind TextureSizeKind, view ViewIndex) (Size, error) {
	m.sizeCalls = append(m.sizeCalls, sizeKey{kind, view})
	if m.sizeErr != nil {
		return Size{}, m.sizeErr
	}
	sz, ok := m.sizes[sizeKey{kind, view}]
	if !ok {
		return Size{}, fmt.Errorf("mock: no size for %v %v", kind, view)
	}
	return sz, nil
}

func (m *mockRuntime) StaticFovTangents(_ Session, view ViewIndex) (FovTangents, error) {
	m.staticCalls++
	if m.staticErr != nil {
		return FovTangents{}, m.staticErr
	}
	tang, ok := m.static[view]
	if !ok {
		return FovTangents{}, fmt.Errorf("mock: no static tangents for %v", view)
	}
	return tang, nil
}

func (m *mockRuntime) FoveatedFovTangents(_ Session, view ViewIndex, gaze Gaze, hints FoveatedHints) (FovTangents, error) {
	m.foveatedCalls++
	m.lastGazeArg = gaze
	m.lastHintsArg = hints
	if m.foveatedErr != nil {
		return FovTangents{}, m.foveatedErr
	}
	tang, ok := m.foveated[view]
	if !ok {
		return FovTangents{}, fmt.Errorf("mock: no foveated tangents for %v", view)
	}
	return tang, nil
}

func (m *mockRuntime) Gaze(_ Session) (Gaze, bool) {
	m.gazeCalls++
	return m.gaze, m.gazeOK
}

func (m *mockRuntime) AlignedView(projection Projection) AlignedFov {
	return AlignedViewFromProjection(projection)
}

func (m *mockRuntime) ProjectionMatrix(tangents FovTangents) Projection {
	return ProjectionFromTangents(tangents)
}

func (m *mockRuntime) ViewDescription(_ Session, view ViewIndex) (ViewDescription, error) {
	if m.descErr != nil {
		return ViewDescription{}, m.descErr
	}
	desc, ok := m.descs[view]
	if !ok {
		return ViewDescription{}, fmt.Errorf("mock: no description for %v", view)
	}
	return desc, nil
}

func (m *mockRuntime) SubmitFrame(_ Session, submission *Submission) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	rec := capturedSubmission{frame: -1}
	if submission != nil {
		rec.frame = submission.FrameNumber
		for _, layer := range submission.Layers {
			cl := capturedLayer{received: layer}
			if proj, ok := layer.(*MultiProjLayer); ok {
				cl.snapshot = proj.Clone()
			}
			rec.layers = append(rec.layers, cl)
		}
	}
	m.submits = append(m.submits, rec)
	return nil
}

const testSession = Session(41)

func TestNewNilRuntimePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(nil) should panic")
		}
	}()
	New(nil)
}

func TestFoveatorImplementsRuntime(t *testing.T) {
	var rt Runtime = New(newMockRuntime())
	if rt == nil {
		t.Fatal("expected non-nil Runtime")
	}
}

func TestGazeDisabledReturnsNeutral(t *testing.T) {
	mock := newMockRuntime()
	fv := New(mock) // gaze off by default

	want := NeutralGaze()
	for i := 0; i < 5; i++ {
		got, ok := fv.Gaze(testSession)
		if !ok {
			t.Fatal("neutral gaze should always succeed")
		}
		if got != want {
			t.Errorf("Gaze() = %+v, want neutral %+v", got, want)
		}
	}
	if mock.gazeCalls != 0 {
		t.Errorf("host gaze queried %d times, want 0", mock.gazeCalls)
	}
}

func TestGazeEnabledDelegates(t *testing.T) {
	mock := newMockRuntime()
	fv := New(mock, WithFoveatedGaze(true))

	got, ok := fv.Gaze(testSession)
	if !ok {
		t.Fatal("host gaze should succeed")
	}
	if got != mock.gaze {
		t.Errorf("Gaze() = %+v, want host sample %+v", got, mock.gaze)
	}
	if mock.gazeCalls != 1 {
		t.Errorf("host gaze queried %d times, want 1", mock.gazeCalls)
	}
}

func TestGazeEnabledPropagatesFailure(t *testing.T) {
	mock := newMockRuntime()
	mock.gazeOK = false
	fv := New(mock, WithFoveatedGaze(true))

	if _, ok := fv.Gaze(testSession); ok {
		t.Error("host gaze failure should propagate")
	}
}

func TestResolveFovTangentsFoveatedPath(t *testing.T) {
	mock := newMockRuntime()
	fv := New(mock) // tangents on, gaze off

	got, err := fv.ResolveFovTangents(testSession, ViewLeftFocus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := mock.foveated[ViewLeftFocus]; got != want {
		t.Errorf("tangents = %+v, want %+v", got, want)
	}
	if mock.foveatedCalls != 1 || mock.staticCalls != 0 {
		t.Errorf("calls foveated=%d static=%d, want 1/0", mock.foveatedCalls, mock.staticCalls)
	}
	// Gaze off feeds the synthetic neutral sample into the host query.
	if mock.lastGazeArg != NeutralGaze() {
		t.Errorf("foveated query gaze = %+v, want neutral", mock.lastGazeArg)
	}
	if mock.lastHintsArg != (FoveatedHints{}) {
		t.Errorf("foveated query hints = %+v, want empty", mock.lastHintsArg)
	}
}

func TestResolveFovTangentsStaticWhenDisabled(t *testing.T) {
	mock := newMockRuntime()
	fv := New(mock, WithFoveatedTangents(false))

	got, err := fv.ResolveFovTangents(testSession, ViewLeftFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := mock.static[ViewLeftFull]; got != want {
		t.Errorf("tangents = %+v, want %+v", got, want)
	}
	if mock.foveatedCalls != 0 || mock.staticCalls != 1 {
		t.Errorf("calls foveated=%d static=%d, want 0/1", mock.foveatedCalls, mock.staticCalls)
	}
}

func TestResolveFovTangentsGazeFailureFallsBackToStatic(t *testing.T) {
	mock := newMockRuntime()
	mock.gazeOK = false
	fv := New(mock, WithFoveatedTangents(true), WithFoveatedGaze(true))

	got, err := fv.ResolveFovTangents(testSession, ViewRightFocus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := mock.static[ViewRightFocus]; got != want {
		t.Errorf("tangents = %+v, want static %+v", got, want)
	}
	if mock.foveatedCalls != 0 {
		t.Errorf("foveated queried %d times after gaze failure, want 0", mock.foveatedCalls)
	}
}

func TestResolveFovTangentsUsesHostGazeWhenEnabled(t *testing.T) {
	mock := newMockRuntime()
	fv := New(mock, WithFoveatedGaze(true))

	if _, err := fv.ResolveFovTangents(testSession, ViewLeftFocus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.lastGazeArg != mock.gaze {
		t.Errorf("foveated query gaze = %+v, want host sample %+v", mock.lastGazeArg, mock.gaze)
	}
}

func TestResolveFovTangentsErrorPropagates(t *testing.T) {
	mock := newMockRuntime()
	mock.foveatedErr = errors.New("tracker offline")
	fv := New(mock)

	if _, err := fv.ResolveFovTangents(testSession, ViewLeftFocus); err == nil {
		t.Error("foveated tangent error should propagate")
	}
}

func TestPassThroughMethods(t *testing.T) {
	mock := newMockRuntime()
	fv := New(mock)

	tang, err := fv.StaticFovTangents(testSession, ViewLeftFull)
	if err != nil {
		t.Fatalf("StaticFovTangents: %v", err)
	}
	if want := mock.static[ViewLeftFull]; tang != want {
		t.Errorf("StaticFovTangents = %+v, want %+v", tang, want)
	}

	gaze := NeutralGaze()
	tang, err = fv.FoveatedFovTangents(testSession, ViewRightFocus, gaze, FoveatedHints{})
	if err != nil {
		t.Fatalf("FoveatedFovTangents: %v", err)
	}
	if want := mock.foveated[ViewRightFocus]; tang != want {
		t.Errorf("FoveatedFovTangents = %+v, want %+v", tang, want)
	}

	src := FovTangents{Left: -0.7, Right: 0.9, Top: 0.8, Bottom: -0.6}
	proj := fv.ProjectionMatrix(src)
	got := fv.AlignedView(proj).Signed()
	if !fovNear(got.Left, src.Left, 1e-12) ||
		!fovNear(got.Right, src.Right, 1e-12) ||
		!fovNear(got.Top, src.Top, 1e-12) ||
		!fovNear(got.Bottom, src.Bottom, 1e-12) {
		t.Errorf("AlignedView(ProjectionMatrix(t)) = %+v, want %+v", got, src)
	}
}
