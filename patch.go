// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fovea

// SubmitFrame implements [Runtime]. Multi-projection layers are
// deep-copied and their placeholder focus views patched with computed
// viewports and projections before the whole submission is forwarded to
// the host; other layer types forward as the caller's own pointers, in
// the original order. The caller's layers are never mutated.
//
// The copies live in pooled scratch owned by this call, so they outlive
// the forwarded host call but not SubmitFrame itself. Hosts retain what
// they need during submission, as real compositors do.
func (f *Foveator) SubmitFrame(session Session, submission *Submission) error {
	if submission == nil || len(submission.Layers) == 0 {
		return f.rt.SubmitFrame(session, submission)
	}

	scratch := f.arena.get()
	defer f.arena.put(scratch)

	out := Submission{
		FrameNumber: submission.FrameNumber,
		Layers:      scratch.layerList(len(submission.Layers)),
	}
	for _, layer := range submission.Layers {
		proj, ok := layer.(*MultiProjLayer)
		if !ok {
			out.Layers = append(out.Layers, layer)
			continue
		}
		cp := scratch.cloneLayer(proj)
		f.patchFocusViews(session, cp)
		out.Layers = append(out.Layers, cp)
	}
	return f.rt.SubmitFrame(session, &out)
}

// patchFocusViews rewrites the placeholder focus views of a copied layer
// in place. Views before index 2 are full views and are left alone, as
// is any focus view whose viewport the application has already placed.
// Only the full views are read, so patching order cannot feed a patched
// view back into a later computation.
func (f *Foveator) patchFocusViews(session Session, layer *MultiProjLayer) {
	for k := 2; k < len(layer.Views); k++ {
		view := &layer.Views[k]
		if !view.Viewport.IsPlaceholder() {
			continue
		}
		ref := &layer.Views[k%2]
		refFov := f.rt.AlignedView(ref.Projection)

		focusFov, err := f.ResolveFovTangents(session, ViewIndex(k))
		if err != nil {
			Logger().Warn("fovea: focus tangents unavailable, view left unpatched",
				"view", k, "err", err)
			continue
		}

		vp, ok := FocusViewport(ref.Viewport, refFov, focusFov)
		if !ok {
			Logger().Warn("fovea: degenerate reference frustum, view left unpatched",
				"view", k,
				"ref_width", ref.Viewport.Width, "ref_height", ref.Viewport.Height)
			continue
		}

		view.Viewport = vp
		view.Projection = f.rt.ProjectionMatrix(focusFov)
		if f.opts.foveatedTangents {
			layer.Header.Flags |= LayerFoveated
		}

		Logger().Debug("fovea: patched focus view",
			"view", k,
			"x", vp.X, "y", vp.Y, "width", vp.Width, "height", vp.Height,
			"left_deg", Degrees(focusFov.Left), "right_deg", Degrees(focusFov.Right),
			"top_deg", Degrees(focusFov.Top), "bottom_deg", Degrees(focusFov.Bottom))
	}
}
