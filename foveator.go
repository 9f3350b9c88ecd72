// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fovea

// Foveator wraps a host [Runtime] and rewrites the geometry flowing
// through it so focus views render at matched angular density and land in
// the right sub-rectangle of their full views.
//
// A Foveator implements Runtime itself: route an application's calls
// through it instead of the host and the texture-size, view-description,
// and frame-submission operations come back patched while everything else
// passes through. Construction-time options fix its behavior; it holds no
// other state, so one Foveator serves any number of sessions from any
// thread.
type Foveator struct {
	rt    Runtime
	opts  options
	arena *submissionArena
}

// New wraps a host runtime. rt must not be nil.
func New(rt Runtime, opts ...Option) *Foveator {
	if rt == nil {
		panic("fovea: New called with a nil Runtime")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	Logger().Info("fovea: foveator ready",
		"foveated", o.foveatedTangents, "gaze", o.foveatedGaze)
	return &Foveator{
		rt:    rt,
		opts:  o,
		arena: newSubmissionArena(),
	}
}

// Ensure the Foveator exposes the full capability set it consumes.
var _ Runtime = (*Foveator)(nil)

// Gaze returns the gaze sample FOV resolution should use. With foveated
// gaze enabled it delegates to the host's eye tracking, including its
// failures; disabled, it always succeeds with the synthetic neutral
// forward gaze, independent of session state.
func (f *Foveator) Gaze(session Session) (Gaze, bool) {
	if !f.opts.foveatedGaze {
		return NeutralGaze(), true
	}
	return f.rt.Gaze(session)
}

// ResolveFovTangents returns the frustum tangents for a view. With
// foveated tangents enabled and a usable gaze sample it asks the host for
// gaze-conditioned tangents (with no tuning hints); otherwise it falls
// back to the view's static tangents.
//
// Results are never cached: callers that need one consistent answer
// across several steps resolve once and reuse it, as the submission
// patcher does for each focus view.
func (f *Foveator) ResolveFovTangents(session Session, view ViewIndex) (FovTangents, error) {
	if f.opts.foveatedTangents {
		if gaze, ok := f.Gaze(session); ok {
			return f.rt.FoveatedFovTangents(session, view, gaze, FoveatedHints{})
		}
	}
	return f.rt.StaticFovTangents(session, view)
}

// StaticFovTangents passes through to the host.
func (f *Foveator) StaticFovTangents(session Session, view ViewIndex) (FovTangents, error) {
	return f.rt.StaticFovTangents(session, view)
}

// FoveatedFovTangents passes through to the host.
func (f *Foveator) FoveatedFovTangents(session Session, view ViewIndex, gaze Gaze, hints FoveatedHints) (FovTangents, error) {
	return f.rt.FoveatedFovTangents(session, view, gaze, hints)
}

// AlignedView passes through to the host.
func (f *Foveator) AlignedView(projection Projection) AlignedFov {
	return f.rt.AlignedView(projection)
}

// ProjectionMatrix passes through to the host.
func (f *Foveator) ProjectionMatrix(tangents FovTangents) Projection {
	return f.rt.ProjectionMatrix(tangents)
}
