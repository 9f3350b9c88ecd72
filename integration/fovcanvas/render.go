// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fovcanvas

import (
	"errors"
	"fmt"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the draw context cannot
	// draw textures.
	ErrInvalidDrawContext = errors.New("fovcanvas: dc cannot draw textures")

	// ErrInvalidRenderer is returned when the draw context's renderer
	// cannot create textures.
	ErrInvalidRenderer = errors.New("fovcanvas: renderer cannot create textures")
)

// textureDrawer is the structural slice of a gogpu draw context the
// overlay draws through.
type textureDrawer interface {
	DrawTexture(tex any, x, y float32) error
	Renderer() any
}

// textureCreator creates GPU textures from RGBA pixel data.
type textureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// textureUpdater updates texture contents in place.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// RenderTo uploads the overlay if dirty and draws it at the origin.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer();
// any value with DrawTexture and Renderer methods works.
func (o *Overlay) RenderTo(dc any) error {
	return o.RenderToPosition(dc, 0, 0)
}

// RenderToPosition draws the overlay with its top-left corner at (x, y).
func (o *Overlay) RenderToPosition(dc any, x, y float32) error {
	if o.closed {
		return ErrOverlayClosed
	}
	if o.img == nil {
		return ErrNoLayout
	}
	drawer, ok := dc.(textureDrawer)
	if !ok {
		return ErrInvalidDrawContext
	}

	tex, err := o.flush(drawer)
	if err != nil {
		return err
	}
	return drawer.DrawTexture(tex, x, y)
}

// flush creates or updates the GPU texture from the current layout.
func (o *Overlay) flush(drawer textureDrawer) (any, error) {
	b := o.img.Bounds()
	w, h := b.Dx(), b.Dy()

	// A size change invalidates the texture. The old one may still be
	// referenced by in-flight GPU command buffers, so it is destroyed
	// only after the replacement upload has waited out the GPU.
	if o.texture != nil && (w != o.texW || h != o.texH) {
		if o.oldTexture != nil {
			if destroyer, ok := o.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
		}
		o.oldTexture = o.texture
		o.texture = nil
	}

	// Create texture if needed (lazy initialization).
	if o.texture == nil {
		creator, ok := drawer.Renderer().(textureCreator)
		if !ok {
			return nil, ErrInvalidRenderer
		}
		// NewTextureFromRGBA waits for the GPU internally; when it
		// returns, prior frames no longer reference the old texture.
		tex, err := creator.NewTextureFromRGBA(w, h, o.img.Pix)
		if err != nil {
			return nil, fmt.Errorf("fovcanvas: NewTextureFromRGBA failed: %w", err)
		}
		o.texture = tex
		o.texW, o.texH = w, h
		o.dirty = false

		if o.oldTexture != nil {
			if destroyer, ok := o.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			o.oldTexture = nil
		}
		return o.texture, nil
	}

	if !o.dirty {
		return o.texture, nil
	}

	// Update existing texture in place.
	if updater, ok := o.texture.(textureUpdater); ok {
		if err := updater.UpdateData(o.img.Pix); err != nil {
			return nil, fmt.Errorf("fovcanvas: texture update failed: %w", err)
		}
	}
	o.dirty = false
	return o.texture, nil
}
