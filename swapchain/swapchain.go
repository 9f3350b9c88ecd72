// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package swapchain manages the render targets behind the swapchain
// handles that frame submissions reference.
//
// The core geometry package treats swapchain IDs as opaque; this
// package gives them a backing: an [Allocator] creates textures, a
// [Registry] issues handles and resolves submitted viewports against
// the targets they address.
//
// Key principle: the package RECEIVES a texture device from the host,
// it does NOT create one. [NullAllocator] serves layout logic and tests
// where no GPU is available.
package swapchain

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/fovea"
)

// Descriptor describes one swapchain's backing texture.
type Descriptor struct {
	// Label is an optional debug name.
	Label string

	// Width and Height are the texture dimensions in pixels.
	Width  int32
	Height int32

	// ArrayLayers is the number of array layers; a submitted viewport
	// addresses exactly one. Use 1 for a plain 2D target.
	ArrayLayers int32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// SampleCount is the number of samples per pixel (1 for non-MSAA).
	SampleCount uint32

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage
}

// DefaultDescriptor returns a render-target descriptor for the given
// size: one layer, RGBA8, single-sampled, renderable and bindable.
func DefaultDescriptor(size fovea.Size) Descriptor {
	return Descriptor{
		Width:       size.Width,
		Height:      size.Height,
		ArrayLayers: 1,
		Format:      gputypes.TextureFormatRGBA8Unorm,
		SampleCount: 1,
		Usage:       gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
}

// NegotiatedDescriptor sizes a full-view render target through the
// runtime's stereo texture-size query. Pass the foveating decorator as
// rt and the descriptor comes back with density-matched dimensions; pass
// the bare host and it matches the host's unfoveated answer.
func NegotiatedDescriptor(rt fovea.Runtime, session fovea.Session, view fovea.ViewIndex) (Descriptor, error) {
	size, err := rt.TextureSize(session, fovea.TextureSizeStereo, view)
	if err != nil {
		return Descriptor{}, fmt.Errorf("swapchain: stereo size for %v: %w", view, err)
	}
	desc := DefaultDescriptor(size)
	desc.Label = fmt.Sprintf("swapchain %v", view)
	return desc, nil
}

// Target is one allocated swapchain backing.
type Target interface {
	// Descriptor returns the creation descriptor.
	Descriptor() Descriptor

	// Release frees the backing resources. Idempotent.
	Release()
}

// Allocator creates swapchain backings.
type Allocator interface {
	// Allocate creates the backing for one swapchain.
	Allocate(desc Descriptor) (Target, error)
}

// NullAllocator creates targets with no GPU backing. Used for layout
// logic and tests where no device is available.
type NullAllocator struct{}

// Allocate validates the descriptor and returns an unbacked target.
func (NullAllocator) Allocate(desc Descriptor) (Target, error) {
	if err := validate(desc); err != nil {
		return nil, err
	}
	return &nullTarget{desc: desc}, nil
}

// Ensure NullAllocator implements Allocator.
var _ Allocator = NullAllocator{}

type nullTarget struct {
	desc Descriptor
}

func (t *nullTarget) Descriptor() Descriptor { return t.desc }

func (t *nullTarget) Release() {}

func validate(desc Descriptor) error {
	if desc.Width <= 0 || desc.Height <= 0 {
		return fmt.Errorf("swapchain: invalid size %dx%d", desc.Width, desc.Height)
	}
	if desc.ArrayLayers <= 0 {
		return fmt.Errorf("swapchain: invalid array layer count %d", desc.ArrayLayers)
	}
	return nil
}
