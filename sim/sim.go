// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sim provides a scripted, deterministic fovea.Runtime so
// applications and tests can exercise resolution negotiation and frame
// patching without a live compositor.
//
// A simulated runtime answers every query from a [Profile], usually
// loaded from YAML, and records the submissions it receives for
// inspection. Foveated frustums follow the caller's gaze sample: the
// profile scripts the focus window's shape, and each query re-centers
// that window on the gaze direction, clamped inside the paired full
// view's static frustum. A neutral gaze reproduces the profile exactly,
// which keeps every run reproducible.
package sim

import (
	"fmt"
	"sync"

	"github.com/gogpu/fovea"
)

type sizeKey struct {
	kind fovea.TextureSizeKind
	view fovea.ViewIndex
}

// RecordedFrame is one submission as it reached the simulated host.
// Multi-projection layers are deep copies taken at submission time;
// other layer types are recorded as the pointers received.
type RecordedFrame struct {
	FrameNumber int64
	Layers      []fovea.Layer
}

// Runtime is a scripted in-memory host. Safe for concurrent use.
type Runtime struct {
	name      string
	static    map[fovea.ViewIndex]fovea.FovTangents
	foveated  map[fovea.ViewIndex]fovea.FovTangents
	sizes     map[sizeKey]fovea.Size
	tracked   bool
	stability float64
	samples   []fovea.Vector3

	mu       sync.Mutex
	gazeSeq  int
	recorded []RecordedFrame
}

var _ fovea.Runtime = (*Runtime)(nil)

// New builds a scripted runtime from a profile.
func New(profile Profile) (*Runtime, error) {
	r := &Runtime{
		name:      profile.Name,
		static:    make(map[fovea.ViewIndex]fovea.FovTangents, len(profile.Views)),
		foveated:  make(map[fovea.ViewIndex]fovea.FovTangents, len(profile.Views)),
		sizes:     make(map[sizeKey]fovea.Size, len(profile.Sizes)),
		tracked:   profile.Gaze.Tracked,
		stability: profile.Gaze.Stability,
	}
	for _, v := range profile.Views {
		view := fovea.ViewIndex(v.View)
		if _, dup := r.static[view]; dup {
			return nil, fmt.Errorf("sim: view %d scripted twice", v.View)
		}
		r.static[view] = v.Static.fov()
		if v.Foveated != nil {
			r.foveated[view] = v.Foveated.fov()
		} else {
			r.foveated[view] = v.Static.fov()
		}
	}
	for _, s := range profile.Sizes {
		kind, err := parseSizeKind(s.Kind)
		if err != nil {
			return nil, err
		}
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("sim: non-positive %s size %dx%d for view %d", s.Kind, s.Width, s.Height, s.View)
		}
		key := sizeKey{kind, fovea.ViewIndex(s.View)}
		if _, dup := r.sizes[key]; dup {
			return nil, fmt.Errorf("sim: %s size for view %d scripted twice", s.Kind, s.View)
		}
		r.sizes[key] = fovea.Size{Width: s.Width, Height: s.Height}
	}
	if r.tracked && r.stability == 0 {
		r.stability = 1
	}
	for _, sample := range profile.Gaze.Samples {
		r.samples = append(r.samples, fovea.Vector3{X: sample.X, Y: sample.Y, Z: sample.Z})
	}
	fovea.Logger().Info("sim: runtime ready",
		"profile", r.name, "views", len(r.static), "sizes", len(r.sizes), "tracked", r.tracked)
	return r, nil
}

// Load reads a YAML profile file and builds a runtime from it.
func Load(path string) (*Runtime, error) {
	profile, err := LoadProfile(path)
	if err != nil {
		return nil, err
	}
	return New(profile)
}

// TextureSize answers from the scripted sizes.
func (r *Runtime) TextureSize(_ fovea.Session, kind fovea.TextureSizeKind, view fovea.ViewIndex) (fovea.Size, error) {
	size, ok := r.sizes[sizeKey{kind, view}]
	if !ok {
		return fovea.Size{}, fmt.Errorf("sim: no scripted %v size for view %v", kind, view)
	}
	return size, nil
}

// StaticFovTangents answers from the scripted static frustums.
func (r *Runtime) StaticFovTangents(_ fovea.Session, view fovea.ViewIndex) (fovea.FovTangents, error) {
	tangents, ok := r.static[view]
	if !ok {
		return fovea.FovTangents{}, fmt.Errorf("sim: no scripted tangents for view %v", view)
	}
	return tangents, nil
}

// FoveatedFovTangents answers from the scripted foveated frustums. For
// focus views the scripted window is re-centered on the combined gaze
// ray and slid back inside the paired full view's static frustum, so
// the window tracks the eye without ever leaving the reference frame.
// Full views and unusable gaze samples return the script unchanged.
// Hints are accepted and ignored.
func (r *Runtime) FoveatedFovTangents(_ fovea.Session, view fovea.ViewIndex, gaze fovea.Gaze, _ fovea.FoveatedHints) (fovea.FovTangents, error) {
	window, ok := r.foveated[view]
	if !ok {
		return fovea.FovTangents{}, fmt.Errorf("sim: no scripted foveated tangents for view %v", view)
	}
	if !view.IsFocus() {
		return window, nil
	}
	forward := gaze.Combined.Forward
	if forward.Z <= 0 {
		return window, nil
	}
	cx := forward.X / forward.Z
	cy := forward.Y / forward.Z
	window.Left += cx
	window.Right += cx
	window.Bottom += cy
	window.Top += cy
	if bounds, ok := r.static[view.Pair()]; ok {
		window = slideInside(window, bounds)
	}
	return window, nil
}

// slideInside moves a window just far enough to sit inside bounds,
// preserving its extent. A window wider than the bounds ends up pinned
// to the left or bottom edge.
func slideInside(window, bounds fovea.FovTangents) fovea.FovTangents {
	if excess := window.Right - bounds.Right; excess > 0 {
		window.Left -= excess
		window.Right -= excess
	}
	if excess := bounds.Left - window.Left; excess > 0 {
		window.Left += excess
		window.Right += excess
	}
	if excess := window.Top - bounds.Top; excess > 0 {
		window.Bottom -= excess
		window.Top -= excess
	}
	if excess := bounds.Bottom - window.Bottom; excess > 0 {
		window.Bottom += excess
		window.Top += excess
	}
	return window
}

// Gaze serves the scripted tracker. When tracking is off it fails like a
// headset without eye tracking; otherwise each call returns the next
// scripted sample, repeating from the start, with CaptureTime counting
// calls.
func (r *Runtime) Gaze(_ fovea.Session) (fovea.Gaze, bool) {
	if !r.tracked {
		return fovea.Gaze{}, false
	}

	r.mu.Lock()
	seq := r.gazeSeq
	r.gazeSeq++
	r.mu.Unlock()

	forward := fovea.Vector3{Z: 1}
	if len(r.samples) > 0 {
		forward = r.samples[seq%len(r.samples)]
	}
	gaze := fovea.NeutralGaze()
	gaze.LeftEye.Forward = forward
	gaze.RightEye.Forward = forward
	gaze.Combined.Forward = forward
	gaze.Stability = r.stability
	gaze.CaptureTime = int64(seq)
	return gaze, true
}

// AlignedView recovers positive edge magnitudes from a projection using
// the package's reference math.
func (r *Runtime) AlignedView(projection fovea.Projection) fovea.AlignedFov {
	return fovea.AlignedViewFromProjection(projection)
}

// ProjectionMatrix builds a projection from tangents using the package's
// reference math.
func (r *Runtime) ProjectionMatrix(tangents fovea.FovTangents) fovea.Projection {
	return fovea.ProjectionFromTangents(tangents)
}

// ViewDescription derives descriptions from the scripted stereo sizes;
// a scripted view is always enabled.
func (r *Runtime) ViewDescription(session fovea.Session, view fovea.ViewIndex) (fovea.ViewDescription, error) {
	size, err := r.TextureSize(session, fovea.TextureSizeStereo, view)
	if err != nil {
		return fovea.ViewDescription{}, err
	}
	return fovea.ViewDescription{Width: size.Width, Height: size.Height, Enabled: true}, nil
}

// SubmitFrame records the submission. Multi-projection layers are deep
// copied because the submitting side recycles its storage once the call
// returns.
func (r *Runtime) SubmitFrame(_ fovea.Session, submission *fovea.Submission) error {
	if submission == nil {
		return fmt.Errorf("sim: nil submission")
	}
	rec := RecordedFrame{FrameNumber: submission.FrameNumber}
	for _, layer := range submission.Layers {
		if proj, ok := layer.(*fovea.MultiProjLayer); ok {
			rec.Layers = append(rec.Layers, proj.Clone())
			continue
		}
		rec.Layers = append(rec.Layers, layer)
	}

	r.mu.Lock()
	r.recorded = append(r.recorded, rec)
	frames := len(r.recorded)
	r.mu.Unlock()

	fovea.Logger().Debug("sim: frame recorded",
		"profile", r.name, "frame", rec.FrameNumber, "layers", len(rec.Layers), "total", frames)
	return nil
}

// Frames returns the submissions recorded so far, oldest first.
func (r *Runtime) Frames() []RecordedFrame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedFrame, len(r.recorded))
	copy(out, r.recorded)
	return out
}

// Reset discards the recorded submissions and rewinds the gaze script.
func (r *Runtime) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = nil
	r.gazeSeq = 0
}
