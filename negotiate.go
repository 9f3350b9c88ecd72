// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fovea

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFullView is returned by [Foveator.NegotiateTextureSize] when the
// requested view is a focus view. Negotiation derives a full view's size
// from its paired focus view; the reverse direction has no meaning.
var ErrNotFullView = errors.New("fovea: negotiation applies to full views only")

// minFovExtent is the smallest focus extent accepted as a density-ratio
// denominator. Anything below it means the tangent source is broken, and
// the multiplier for that axis degrades to 1.
const minFovExtent = 1e-6

// NegotiateTextureSize computes the render-target resolution for a full
// view: the paired focus view's base resolution scaled up by the ratio of
// full to focus angular extent per axis, aligned to even.
//
// The base resolution comes from the host's dynamic-foveation query when
// foveated tangents are enabled and from the quad-layer query otherwise,
// both addressed at the focus view. Degenerate extents leave the affected
// axis unscaled rather than failing the call.
func (f *Foveator) NegotiateTextureSize(session Session, view ViewIndex) (Size, error) {
	if !view.IsFull() {
		return Size{}, fmt.Errorf("%w: %v", ErrNotFullView, view)
	}

	kind := TextureSizeQuad
	if f.opts.foveatedTangents {
		kind = TextureSizeDynamicFoveation
	}
	base, err := f.rt.TextureSize(session, kind, view.Focus())
	if err != nil {
		return Size{}, fmt.Errorf("fovea: %v base size for %v: %w", kind, view.Focus(), err)
	}

	full, err := f.ResolveFovTangents(session, view)
	if err != nil {
		return Size{}, fmt.Errorf("fovea: full tangents for %v: %w", view, err)
	}
	focus, err := f.ResolveFovTangents(session, view.Focus())
	if err != nil {
		return Size{}, fmt.Errorf("fovea: focus tangents for %v: %w", view.Focus(), err)
	}

	hMult, hOK := densityMultiplier(full.HorizontalExtent(), focus.HorizontalExtent())
	vMult, vOK := densityMultiplier(full.VerticalExtent(), focus.VerticalExtent())
	if !hOK || !vOK {
		Logger().Warn("fovea: degenerate fov extents, axis left unscaled",
			"view", view,
			"full_h", full.HorizontalExtent(), "focus_h", focus.HorizontalExtent(),
			"full_v", full.VerticalExtent(), "focus_v", focus.VerticalExtent())
	}

	size := Size{
		Width:  AlignUp(int32(math.Round(float64(base.Width)*hMult)), 2),
		Height: AlignUp(int32(math.Round(float64(base.Height)*vMult)), 2),
	}

	Logger().Debug("fovea: negotiated full view size",
		"view", view, "kind", kind,
		"base_width", base.Width, "base_height", base.Height,
		"h_mult", hMult, "v_mult", vMult,
		"width", size.Width, "height", size.Height)
	Logger().Debug("fovea: full fov",
		"view", view,
		"left_deg", Degrees(full.Left), "right_deg", Degrees(full.Right),
		"top_deg", Degrees(full.Top), "bottom_deg", Degrees(full.Bottom))
	Logger().Debug("fovea: focus fov",
		"view", view.Focus(),
		"left_deg", Degrees(focus.Left), "right_deg", Degrees(focus.Right),
		"top_deg", Degrees(focus.Top), "bottom_deg", Degrees(focus.Bottom))
	return size, nil
}

// densityMultiplier returns full/focus, or 1 with ok=false when the
// ratio would be degenerate.
func densityMultiplier(full, focus float64) (mult float64, ok bool) {
	if focus < minFovExtent {
		return 1, false
	}
	m := full / focus
	if !isFinite(m) || m <= 0 {
		return 1, false
	}
	return m, true
}

// TextureSize implements [Runtime]. Stereo queries for full views are
// answered by [Foveator.NegotiateTextureSize]; every other combination
// passes through to the host unchanged. If negotiation fails the host's
// own answer is used so a broken tangent source degrades to the
// unfoveated resolution instead of failing the query.
func (f *Foveator) TextureSize(session Session, kind TextureSizeKind, view ViewIndex) (Size, error) {
	if kind != TextureSizeStereo || !view.IsFull() {
		return f.rt.TextureSize(session, kind, view)
	}
	size, err := f.NegotiateTextureSize(session, view)
	if err != nil {
		Logger().Warn("fovea: negotiation failed, passing stereo query through",
			"view", view, "err", err)
		return f.rt.TextureSize(session, kind, view)
	}
	return size, nil
}

// ViewDescription implements [Runtime]. Full-view descriptions are
// rewritten to carry the negotiated resolution so applications sizing
// render targets from descriptions and applications sizing them from
// texture-size queries agree; focus-view descriptions and host errors
// pass through untouched.
func (f *Foveator) ViewDescription(session Session, view ViewIndex) (ViewDescription, error) {
	desc, err := f.rt.ViewDescription(session, view)
	if err != nil || !view.IsFull() {
		return desc, err
	}
	size, sizeErr := f.TextureSize(session, TextureSizeStereo, view)
	if sizeErr != nil {
		Logger().Warn("fovea: view description keeps host size",
			"view", view, "err", sizeErr)
		return desc, nil
	}
	desc.Width = size.Width
	desc.Height = size.Height
	Logger().Debug("fovea: view description resized",
		"view", view, "width", desc.Width, "height", desc.Height)
	return desc, nil
}
