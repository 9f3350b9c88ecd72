// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import (
	"fmt"
	"sync"

	"github.com/gogpu/fovea"
)

// Registry issues swapchain handles and tracks the targets behind them.
// Submitted viewports carry a [fovea.SwapchainID]; the registry is where
// those IDs become textures again. Safe for concurrent use.
type Registry struct {
	alloc Allocator

	mu      sync.RWMutex
	next    fovea.SwapchainID
	targets map[fovea.SwapchainID]Target
}

// NewRegistry creates a registry on the given allocator. A nil allocator
// falls back to [NullAllocator].
func NewRegistry(alloc Allocator) *Registry {
	if alloc == nil {
		alloc = NullAllocator{}
	}
	return &Registry{
		alloc:   alloc,
		next:    1, // 0 stays unissued so a zero viewport is recognizably unbound
		targets: make(map[fovea.SwapchainID]Target),
	}
}

// Create allocates a target and issues its handle.
func (r *Registry) Create(desc Descriptor) (fovea.SwapchainID, error) {
	target, err := r.alloc.Allocate(desc)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	id := r.next
	r.next++
	r.targets[id] = target
	r.mu.Unlock()

	fovea.Logger().Debug("swapchain: created",
		"id", id, "label", desc.Label,
		"width", desc.Width, "height", desc.Height, "layers", desc.ArrayLayers)
	return id, nil
}

// Target resolves a handle to its live target.
func (r *Registry) Target(id fovea.SwapchainID) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	target, ok := r.targets[id]
	return target, ok
}

// Resolve returns the target a submitted viewport addresses, rejecting
// viewports whose handle is unknown, whose layer does not exist, or
// whose rectangle falls outside the target.
func (r *Registry) Resolve(vp fovea.SwapchainViewport) (Target, error) {
	target, ok := r.Target(vp.Swapchain)
	if !ok {
		return nil, fmt.Errorf("swapchain: unknown handle %d", vp.Swapchain)
	}
	desc := target.Descriptor()
	if vp.ArrayIndex < 0 || vp.ArrayIndex >= desc.ArrayLayers {
		return nil, fmt.Errorf("swapchain: layer %d outside handle %d (%d layers)",
			vp.ArrayIndex, vp.Swapchain, desc.ArrayLayers)
	}
	if vp.Width <= 0 || vp.Height <= 0 || vp.X < 0 || vp.Y < 0 ||
		vp.X+vp.Width > desc.Width || vp.Y+vp.Height > desc.Height {
		return nil, fmt.Errorf("swapchain: viewport %dx%d at (%d,%d) outside handle %d (%dx%d)",
			vp.Width, vp.Height, vp.X, vp.Y, vp.Swapchain, desc.Width, desc.Height)
	}
	return target, nil
}

// Destroy releases a handle's target and retires the handle. It reports
// whether the handle was live. Handles are never reused.
func (r *Registry) Destroy(id fovea.SwapchainID) bool {
	r.mu.Lock()
	target, ok := r.targets[id]
	delete(r.targets, id)
	r.mu.Unlock()

	if ok {
		target.Release()
		fovea.Logger().Debug("swapchain: destroyed", "id", id)
	}
	return ok
}

// Close releases every live target.
func (r *Registry) Close() {
	r.mu.Lock()
	targets := r.targets
	r.targets = make(map[fovea.SwapchainID]Target)
	r.mu.Unlock()

	for id, target := range targets {
		target.Release()
		fovea.Logger().Debug("swapchain: destroyed", "id", id)
	}
}

// Len returns the number of live targets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}
