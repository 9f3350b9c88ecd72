// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fovea

// Session identifies one connection to a host runtime. Sessions are
// created and owned by the host; this package only forwards them.
type Session uint64

// Runtime is the host-runtime capability set the foveator consumes.
//
// This interface is the primary integration point between fovea and a VR
// runtime. The host (a live runtime binding, or the sim package in tests)
// implements Runtime and passes it to [New], allowing the geometry core to
// stay independent of how the runtime is reached.
//
// Key principle: fovea RECEIVES the runtime from the host, it does NOT
// locate or attach to one. How these capabilities get wired to a live
// process is the host's concern.
//
// [Foveator] implements Runtime as well, replacing the texture-size,
// view-description, and frame-submission operations with their patched
// versions and passing the rest through, so callers cannot observe a
// difference beyond the patched values.
type Runtime interface {
	// TextureSize returns the host's recommended render-target size of
	// the given kind for a view.
	TextureSize(session Session, kind TextureSizeKind, view ViewIndex) (Size, error)

	// StaticFovTangents returns a view's fixed frustum tangents,
	// independent of gaze.
	StaticFovTangents(session Session, view ViewIndex) (FovTangents, error)

	// FoveatedFovTangents returns a view's frustum tangents conditioned
	// on a gaze sample.
	FoveatedFovTangents(session Session, view ViewIndex, gaze Gaze, hints FoveatedHints) (FovTangents, error)

	// Gaze returns the latest gaze sample for rendering. ok is false when
	// no reliable sample is available (tracking unavailable, user not
	// calibrated); callers then fall back to static tangents.
	Gaze(session Session) (gaze Gaze, ok bool)

	// AlignedView decomposes a projection into its frustum boundaries in
	// the positive-magnitude convention.
	AlignedView(projection Projection) AlignedFov

	// ProjectionMatrix composes the projection for the given signed
	// frustum tangents.
	ProjectionMatrix(tangents FovTangents) Projection

	// ViewDescription returns the host's description of a view.
	ViewDescription(session Session, view ViewIndex) (ViewDescription, error)

	// SubmitFrame presents one frame's layers.
	SubmitFrame(session Session, submission *Submission) error
}
