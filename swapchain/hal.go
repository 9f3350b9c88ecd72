// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import (
	"errors"
	"fmt"
	"sync"

	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// HAL allocation errors.
var (
	// ErrNilDevice is returned when creating an allocator without a
	// texture device.
	ErrNilDevice = errors.New("swapchain: texture device is nil")

	// ErrReleased is returned when operating on a released target.
	ErrReleased = errors.New("swapchain: target has been released")
)

// TextureDevice is the slice of a HAL device the allocator needs:
// texture and view lifecycle only. A wgpu hal.Device satisfies it.
type TextureDevice interface {
	CreateTexture(*hal.TextureDescriptor) (hal.Texture, error)
	DestroyTexture(hal.Texture)
	CreateTextureView(hal.Texture, *hal.TextureViewDescriptor) (hal.TextureView, error)
	DestroyTextureView(hal.TextureView)
}

// HALAllocator allocates swapchain backings on a wgpu HAL device
// received from the host.
type HALAllocator struct {
	device TextureDevice
}

// NewHALAllocator wraps a host texture device.
func NewHALAllocator(device TextureDevice) (*HALAllocator, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return &HALAllocator{device: device}, nil
}

// Allocate creates the backing texture and its default view. The
// returned target's dynamic type is [*HALTarget].
func (a *HALAllocator) Allocate(desc Descriptor) (Target, error) {
	if err := validate(desc); err != nil {
		return nil, err
	}

	sampleCount := desc.SampleCount
	if sampleCount == 0 {
		sampleCount = 1
	}
	texture, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              uint32(desc.Width),
			Height:             uint32(desc.Height),
			DepthOrArrayLayers: uint32(desc.ArrayLayers),
		},
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     types.TextureDimension2D,
		Format:        desc.Format,
		Usage:         desc.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("swapchain: create texture %q: %w", desc.Label, err)
	}

	// Zero values inherit format, dimension, and the full layer range
	// from the texture.
	view, err := a.device.CreateTextureView(texture, &hal.TextureViewDescriptor{
		Label:  desc.Label + " (view)",
		Aspect: types.TextureAspectAll,
	})
	if err != nil {
		a.device.DestroyTexture(texture)
		return nil, fmt.Errorf("swapchain: create view %q: %w", desc.Label, err)
	}

	return &HALTarget{
		device:  a.device,
		desc:    desc,
		texture: texture,
		view:    view,
	}, nil
}

// Ensure HALAllocator implements Allocator.
var _ Allocator = (*HALAllocator)(nil)

// HALTarget is a GPU-backed swapchain target.
//
// Safe for concurrent use. Release should be called exactly once when
// the swapchain is destroyed; accessors fail afterwards.
type HALTarget struct {
	mu       sync.Mutex
	device   TextureDevice
	desc     Descriptor
	texture  hal.Texture
	view     hal.TextureView
	released bool
}

// Descriptor returns the creation descriptor.
func (t *HALTarget) Descriptor() Descriptor { return t.desc }

// Texture returns the backing HAL texture.
func (t *HALTarget) Texture() (hal.Texture, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return nil, ErrReleased
	}
	return t.texture, nil
}

// View returns the backing texture's default view.
func (t *HALTarget) View() (hal.TextureView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return nil, ErrReleased
	}
	return t.view, nil
}

// Release destroys the view and texture. Idempotent.
func (t *HALTarget) Release() {
	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}
	t.released = true
	device := t.device
	texture := t.texture
	view := t.view
	t.texture = nil
	t.view = nil
	t.mu.Unlock()

	if view != nil {
		device.DestroyTextureView(view)
	}
	if texture != nil {
		device.DestroyTexture(texture)
	}
}
