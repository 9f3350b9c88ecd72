package fovea

import "strings"

// LayerType discriminates the payload behind a submitted layer.
type LayerType int32

// Layer types. The patcher only rewrites multi-projection layers; every
// other type passes through untouched.
const (
	LayerTypeMultiProj LayerType = 1
)

// LayerFlags is the bitmask of per-layer compositing options in a layer
// header.
type LayerFlags int64

// Layer flag bits.
const (
	// LayerAlphaBlend blends the layer with the output using alpha.
	LayerAlphaBlend LayerFlags = 1 << iota

	// LayerDepthTest enables depth testing against other layers.
	LayerDepthTest

	// LayerInvertAlpha inverts the alpha channel before blending.
	LayerInvertAlpha

	// LayerChromaticAberration enables chromatic aberration correction.
	LayerChromaticAberration

	// LayerFoveated marks the layer as carrying foveated (gaze-following)
	// focus views. The patcher sets this on layers it has rewritten when
	// foveated tangents are enabled, so the compositor samples the focus
	// region at its gaze-driven position.
	LayerFoveated
)

// String returns the set flag names joined by "|", or "0" for no flags.
func (f LayerFlags) String() string {
	if f == 0 {
		return "0"
	}
	names := []struct {
		bit  LayerFlags
		name string
	}{
		{LayerAlphaBlend, "AlphaBlend"},
		{LayerDepthTest, "DepthTest"},
		{LayerInvertAlpha, "InvertAlpha"},
		{LayerChromaticAberration, "ChromaticAberration"},
		{LayerFoveated, "Foveated"},
	}
	var parts []string
	for _, n := range names {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, "|")
}

// LayerHeader prefixes every submitted layer with its type and flags.
type LayerHeader struct {
	Type  LayerType
	Flags LayerFlags
}

// Layer is any payload a frame submission can carry. Implementations
// other than [MultiProjLayer] are forwarded to the host unmodified.
type Layer interface {
	// LayerHeader returns the layer's common header.
	LayerHeader() *LayerHeader
}

// ExtensionKind discriminates per-view extension payloads.
type ExtensionKind int32

// Extension kinds.
const (
	ExtensionDepth ExtensionKind = 1
)

// ViewExtension is auxiliary data a caller attaches to a submitted view.
// The patcher carries extensions through by reference and never rewrites
// them, including any viewport they embed.
type ViewExtension interface {
	// Kind identifies the extension payload.
	Kind() ExtensionKind
}

// DepthExtension attaches a depth surface to a view so the compositor can
// reproject with real depth information.
type DepthExtension struct {
	// MinDepth and MaxDepth bound the depth values in the surface.
	MinDepth float64
	MaxDepth float64

	// NearZ and FarZ are the projection's clip planes. NearZ > FarZ
	// signals a reversed depth range.
	NearZ float64
	FarZ  float64

	// Viewport addresses the depth surface.
	Viewport SwapchainViewport
}

// Kind identifies the extension payload.
func (*DepthExtension) Kind() ExtensionKind { return ExtensionDepth }

// ProjectionView is one view of a multi-projection layer: where it was
// rendered (viewport), with what frustum (projection), plus optional
// extension data.
type ProjectionView struct {
	Projection Projection
	Viewport   SwapchainViewport
	Extension  ViewExtension
}

// MultiProjLayer submits one rendered image per view. Views 0 and 1 are
// the full views; when focus views are present they follow at 2 and 3,
// each pairing with the full view at its index mod 2.
type MultiProjLayer struct {
	Header LayerHeader
	Space  Space
	Views  []ProjectionView
}

// LayerHeader returns the layer's common header.
func (l *MultiProjLayer) LayerHeader() *LayerHeader { return &l.Header }

// Clone deep-copies the layer: the header, space, and a fresh Views
// slice. Extensions are carried by reference.
func (l *MultiProjLayer) Clone() *MultiProjLayer {
	cp := &MultiProjLayer{Header: l.Header, Space: l.Space}
	if len(l.Views) > 0 {
		cp.Views = make([]ProjectionView, len(l.Views))
		copy(cp.Views, l.Views)
	}
	return cp
}

var _ Layer = (*MultiProjLayer)(nil)

// Space identifies the coordinate space a layer's poses are expressed in.
// The package never interprets spaces; it copies them through.
type Space int32

// SpaceLocal is the host's default local space.
const SpaceLocal Space = 0

// Submission is one frame's ordered layer list. The caller owns it for
// the duration of the submitting call only; the patcher never retains or
// mutates it, forwarding a rebuilt copy instead.
type Submission struct {
	// FrameNumber is the host frame this submission presents.
	FrameNumber int64

	// Layers are composited bottom-up in slice order.
	Layers []Layer
}
