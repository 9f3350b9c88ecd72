// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fovcanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/fovea"
	"github.com/gogpu/fovea/preview"
)

// Common errors returned by Overlay operations.
var (
	// ErrOverlayClosed is returned when operations are attempted on a closed overlay.
	ErrOverlayClosed = errors.New("fovcanvas: overlay is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("fovcanvas: nil DeviceProvider")

	// ErrInvalidScale is returned when the preview scale is out of range.
	ErrInvalidScale = errors.New("fovcanvas: invalid scale")

	// ErrNoLayout is returned when no layer has been rendered yet.
	ErrNoLayout = errors.New("fovcanvas: no layout rendered yet")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Overlay renders patched frame layouts into a HUD texture for a gogpu
// window. It manages the CPU-to-GPU pipeline automatically.
//
// Overlay is NOT safe for concurrent use. Create one Overlay per
// goroutine, or use external synchronization.
type Overlay struct {
	provider   gpucontext.DeviceProvider
	scale      float64
	img        *image.RGBA
	texture    any // Lazy-created texture
	oldTexture any // Previous texture awaiting deferred destruction
	texW       int
	texH       int
	dirty      bool
	closed     bool
}

// New creates an Overlay for integrated mode.
// The provider should come from gogpu.App.GPUContextProvider().
//
// scale shrinks device pixels to overlay pixels and must be in (0, 1]:
// at 0.1 a 2000-pixel-wide layout becomes a 200-pixel-wide HUD.
func New(provider gpucontext.DeviceProvider, scale float64) (*Overlay, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if scale <= 0 || scale > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	return &Overlay{
		provider: provider,
		scale:    scale,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded scale).
func MustNew(provider gpucontext.DeviceProvider, scale float64) *Overlay {
	o, err := New(provider, scale)
	if err != nil {
		panic(err)
	}
	return o
}

// Update re-renders the overlay from a multi-projection layer and flags
// it for GPU upload on the next RenderTo.
func (o *Overlay) Update(layer *fovea.MultiProjLayer) error {
	if o.closed {
		return ErrOverlayClosed
	}
	img, err := preview.RenderLayer(layer, o.scale)
	if err != nil {
		return fmt.Errorf("fovcanvas: layout render failed: %w", err)
	}
	o.img = img
	o.dirty = true
	return nil
}

// UpdateSubmission renders the first multi-projection layer of a frame
// submission. Submissions without one leave the overlay untouched and
// report ErrNoLayout.
func (o *Overlay) UpdateSubmission(sub *fovea.Submission) error {
	if o.closed {
		return ErrOverlayClosed
	}
	if sub != nil {
		for _, layer := range sub.Layers {
			if proj, ok := layer.(*fovea.MultiProjLayer); ok {
				return o.Update(proj)
			}
		}
	}
	return ErrNoLayout
}

// Image returns the last rendered layout image, or nil before the first
// Update.
func (o *Overlay) Image() *image.RGBA {
	if o.closed {
		return nil
	}
	return o.img
}

// Size returns the overlay dimensions in pixels, or zeros before the
// first Update.
func (o *Overlay) Size() (width, height int) {
	if o.img == nil {
		return 0, 0
	}
	b := o.img.Bounds()
	return b.Dx(), b.Dy()
}

// MarkDirty flags the overlay for GPU upload on the next RenderTo.
func (o *Overlay) MarkDirty() {
	o.dirty = true
}

// IsDirty returns true if the overlay has pending changes that need to
// be uploaded to the GPU.
func (o *Overlay) IsDirty() bool {
	return o.dirty
}

// Provider returns the DeviceProvider associated with this overlay.
// Returns nil if the overlay is closed.
func (o *Overlay) Provider() gpucontext.DeviceProvider {
	if o.closed {
		return nil
	}
	return o.provider
}

// Close releases all resources associated with the Overlay.
// After Close, the Overlay should not be used.
// Close is idempotent - multiple calls are safe.
func (o *Overlay) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true

	// Destroy textures (current and any deferred old texture)
	if o.oldTexture != nil {
		if destroyer, ok := o.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		o.oldTexture = nil
	}
	if o.texture != nil {
		if destroyer, ok := o.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		o.texture = nil
	}

	o.img = nil
	o.provider = nil
	return nil
}
