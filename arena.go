// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fovea

import "sync"

// submissionArena provides pooled per-submission scratch so steady-state
// frame patching reuses the same copy storage instead of allocating every
// frame. Each SubmitFrame call owns one scratch exclusively for its
// duration, which keeps concurrent submissions safe.
type submissionArena struct {
	pool sync.Pool
}

func newSubmissionArena() *submissionArena {
	return &submissionArena{
		pool: sync.Pool{
			New: func() any {
				return &submissionScratch{}
			},
		},
	}
}

// get retrieves a scratch from the pool.
func (a *submissionArena) get() *submissionScratch {
	return a.pool.Get().(*submissionScratch)
}

// put returns a scratch to the pool.
// The scratch is cleared first so pooled storage does not pin the
// caller's layers between frames.
func (a *submissionArena) put(s *submissionScratch) {
	if s != nil {
		s.clear()
		a.pool.Put(s)
	}
}

// submissionScratch holds one in-flight call's rebuilt layer list and
// layer copies. The outgoing submission references this storage, so it
// must stay owned by the call until the forwarded host call returns.
type submissionScratch struct {
	layers []Layer
	copies []*MultiProjLayer
	used   int
}

// layerList returns the reusable outgoing layer slice, empty, with
// capacity for at least n layers.
func (s *submissionScratch) layerList(n int) []Layer {
	if cap(s.layers) < n {
		s.layers = make([]Layer, 0, n)
	}
	return s.layers[:0]
}

// cloneLayer deep-copies src into scratch-owned storage: a fresh header
// and a fresh view slice, with any per-view extensions carried by
// reference.
func (s *submissionScratch) cloneLayer(src *MultiProjLayer) *MultiProjLayer {
	var cp *MultiProjLayer
	if s.used < len(s.copies) {
		cp = s.copies[s.used]
	} else {
		cp = &MultiProjLayer{}
		s.copies = append(s.copies, cp)
	}
	s.used++

	cp.Header = src.Header
	cp.Space = src.Space
	if len(src.Views) == 0 {
		cp.Views = cp.Views[:0]
	} else {
		cp.Views = append(cp.Views[:0], src.Views...)
	}
	return cp
}

// clear drops every reference the scratch holds: forwarded layer
// pointers and, inside each retained copy, the view extensions.
func (s *submissionScratch) clear() {
	clear(s.layers[:cap(s.layers)])
	for _, cp := range s.copies {
		cp.Header = LayerHeader{}
		cp.Space = 0
		clear(cp.Views[:cap(cp.Views)])
		cp.Views = cp.Views[:0]
	}
	s.used = 0
}
