// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fovcanvas overlays foveation layout previews on gogpu windows.
//
// The package turns a patched multi-projection layer into a small HUD
// texture so focus-view placement can be watched live while an
// application runs. The data flow is:
//
//	fovea.MultiProjLayer -> layout image (CPU) -> GPU texture -> window
//
// # Architecture
//
// Overlay owns the pipeline from layer geometry to on-screen texture:
//
//   - Update renders a layer's viewports with the preview package
//   - RenderTo uploads the image to a GPU texture and draws it
//   - Dirty tracking avoids re-uploading an unchanged layout
//
// # Usage
//
// Basic usage with gogpu:
//
//	overlay := fovcanvas.MustNew(app.GPUContextProvider(), 0.1)
//	defer overlay.Close()
//
//	// Wherever frames are submitted:
//	overlay.UpdateSubmission(sub)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    overlay.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Overlay is NOT safe for concurrent use. Confine it to the goroutine
// that drives drawing, or synchronize externally.
//
// # Integration Without Circular Imports
//
// The package reaches gogpu through interfaces only:
//
//   - gpucontext.DeviceProvider for device access
//   - Local structural interfaces for texture creation and drawing
//
// Any draw context with DrawTexture and Renderer methods works, which
// also keeps the package testable without a GPU.
package fovcanvas
