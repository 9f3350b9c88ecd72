package fovea

import "fmt"

// ViewIndex identifies a logical view. Views 0 and 1 are the left and
// right full (wide) views; views 2 and 3 are the left and right focus
// (high-density inset) views. Focus view k composites into full view
// k mod 2.
type ViewIndex int32

// Logical view indices.
const (
	ViewLeftFull ViewIndex = iota
	ViewRightFull
	ViewLeftFocus
	ViewRightFocus
)

// IsFull reports whether v is one of the two full views.
func (v ViewIndex) IsFull() bool { return v == ViewLeftFull || v == ViewRightFull }

// IsFocus reports whether v is a focus view.
func (v ViewIndex) IsFocus() bool { return v >= ViewLeftFocus }

// Pair returns the full view a focus view composites into (k mod 2).
// For a full view it returns the view itself.
func (v ViewIndex) Pair() ViewIndex { return v % 2 }

// Focus returns the focus view paired with a full view (v + 2).
func (v ViewIndex) Focus() ViewIndex { return v + 2 }

// String returns a human-readable name for the view index.
func (v ViewIndex) String() string {
	switch v {
	case ViewLeftFull:
		return "LeftFull"
	case ViewRightFull:
		return "RightFull"
	case ViewLeftFocus:
		return "LeftFocus"
	case ViewRightFocus:
		return "RightFocus"
	default:
		return fmt.Sprintf("View(%d)", int32(v))
	}
}

// TextureSizeKind selects which of a host runtime's recommended
// resolutions a texture-size query reports.
type TextureSizeKind int32

// Texture size kinds.
const (
	// TextureSizeStereo is the render-target size for a full view. This
	// is the kind the negotiator rewrites.
	TextureSizeStereo TextureSizeKind = iota

	// TextureSizeQuad is the host's quadrant resolution, the base density
	// reference when foveated tangents are disabled.
	TextureSizeQuad

	// TextureSizeDynamicFoveation is the host's gaze-following focus
	// resolution, the base density reference when foveated tangents are
	// enabled.
	TextureSizeDynamicFoveation
)

// String returns a human-readable name for the size kind.
func (k TextureSizeKind) String() string {
	switch k {
	case TextureSizeStereo:
		return "Stereo"
	case TextureSizeQuad:
		return "Quad"
	case TextureSizeDynamicFoveation:
		return "DynamicFoveation"
	default:
		return fmt.Sprintf("TextureSizeKind(%d)", int32(k))
	}
}

// Size is a render-target extent in pixels.
type Size struct {
	Width  int32
	Height int32
}

// ViewDescription is a host's description of one logical view. The
// augmenter overwrites Width and Height for full views; everything else
// passes through untouched.
type ViewDescription struct {
	// Width and Height are the recommended render-target extent in pixels.
	Width  int32
	Height int32

	// Enabled reports whether the host currently drives this view.
	Enabled bool
}
