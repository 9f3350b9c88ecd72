// Package fovea patches a VR compositor's view geometry for foveated
// rendering.
//
// # Overview
//
// fovea sits between an application and its VR runtime and rewrites the
// geometry the two exchange so that a narrow, high-density "focus" view is
// rendered once and composited into the correct sub-rectangle of its wide
// "full" view. It performs no rendering of its own: every operation is
// metadata patching — render-target sizes, viewport rectangles, and
// projection tangents.
//
// Two transformations make up the core:
//
//   - Texture-size negotiation: the full view's render target is resized so
//     its pixels-per-degree matches the density the runtime already chose
//     for the focus view, by scaling the focus resolution with the ratio of
//     the two views' tangent-space extents.
//   - Submission patching: at frame submission, focus views whose viewport
//     is the 1×1 placeholder are given a computed crop rectangle inside
//     their paired full view, along with the matching projection.
//
// # Quick Start
//
//	import "github.com/gogpu/fovea"
//
//	// rt is the host runtime capability set (fovea.Runtime).
//	fv := fovea.New(rt, fovea.WithFoveatedTangents(true))
//
//	// Route the application's geometry queries through fv.
//	size, _ := fv.TextureSize(session, fovea.TextureSizeStereo, fovea.ViewLeftFull)
//
//	// Route frame submissions through fv.
//	err := fv.SubmitFrame(session, submission)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Foveator, Runtime, FovTangents, AlignedFov, Projection,
//     Gaze, MultiProjLayer, Submission
//   - Host-runtime boundary: the Runtime interface (capability
//     substitution — fovea RECEIVES the runtime, it does not attach to one)
//   - Support packages: sim (profile-driven simulated runtime), swapchain
//     (render-target helpers), preview (layout diagnostics)
//
// A Foveator itself implements Runtime, so it can be dropped in anywhere a
// host runtime is consumed; only the texture-size, view-description, and
// frame-submission operations change behavior, the rest pass through.
//
// # Sign Conventions
//
// Field-of-view boundaries appear in two conventions that must not be
// mixed. FovTangents is the signed form: Left and Bottom are negative for
// any view extending left of or below its optical axis. AlignedFov is the
// positive-magnitude form reported by the runtime's aligned-view query:
// all four values are magnitudes. The two are distinct types; convert with
// FovTangents.Aligned and AlignedFov.Signed.
package fovea

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
