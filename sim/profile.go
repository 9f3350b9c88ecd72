// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/gogpu/fovea"
)

// Tangents is one frustum edge set in profile form, using the signed
// convention: Left and Bottom are negative for frustums crossing the
// view axis.
type Tangents struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

func (t Tangents) fov() fovea.FovTangents {
	return fovea.FovTangents{Left: t.Left, Right: t.Right, Top: t.Top, Bottom: t.Bottom}
}

// ViewProfile scripts one view's frustums. A missing foveated frustum
// falls back to the static one, which models a headset without
// gaze-dependent optics.
type ViewProfile struct {
	View     int32     `yaml:"view"`
	Static   Tangents  `yaml:"static"`
	Foveated *Tangents `yaml:"foveated,omitempty"`
}

// SizeProfile scripts one texture-size answer. Kind is one of "stereo",
// "quad", or "dynamic".
type SizeProfile struct {
	Kind   string `yaml:"kind"`
	View   int32  `yaml:"view"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
}

// GazeSample is one scripted combined-gaze forward direction.
type GazeSample struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// GazeProfile scripts the eye tracker. With Tracked false every gaze
// query fails, the way a headset without eye tracking behaves. Samples
// are served in order and repeat from the start; with none scripted the
// tracker looks straight ahead.
type GazeProfile struct {
	Tracked   bool         `yaml:"tracked"`
	Stability float64      `yaml:"stability,omitempty"`
	Samples   []GazeSample `yaml:"samples,omitempty"`
}

// Profile scripts a complete simulated headset.
type Profile struct {
	Name  string        `yaml:"name"`
	Views []ViewProfile `yaml:"views"`
	Sizes []SizeProfile `yaml:"sizes"`
	Gaze  GazeProfile   `yaml:"gaze,omitempty"`
}

// ParseProfile decodes a YAML profile.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("sim: could not decode profile: %w", err)
	}
	return p, nil
}

// LoadProfile reads and decodes a YAML profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("sim: could not read profile %q: %w", path, err)
	}
	return ParseProfile(data)
}

// DefaultProfile returns the built-in reference headset: symmetric full
// views spanning tangent 1 on every edge, focus views spanning tangent
// 0.5, a tracked straight-ahead gaze, and base resolutions of 1400
// (stereo), 1000 (dynamic foveation), and 800 (quadrant) per axis.
func DefaultProfile() Profile {
	full := Tangents{Left: -1, Right: 1, Top: 1, Bottom: -1}
	focus := Tangents{Left: -0.5, Right: 0.5, Top: 0.5, Bottom: -0.5}
	p := Profile{
		Name: "reference",
		Views: []ViewProfile{
			{View: 0, Static: full},
			{View: 1, Static: full},
			{View: 2, Static: focus},
			{View: 3, Static: focus},
		},
		Gaze: GazeProfile{Tracked: true, Stability: 1},
	}
	for view := int32(0); view < 4; view++ {
		size := SizeProfile{Kind: "stereo", View: view, Width: 1400, Height: 1400}
		if view >= 2 {
			size.Width, size.Height = 1000, 1000
		}
		p.Sizes = append(p.Sizes, size)
	}
	for view := int32(2); view < 4; view++ {
		p.Sizes = append(p.Sizes,
			SizeProfile{Kind: "dynamic", View: view, Width: 1000, Height: 1000},
			SizeProfile{Kind: "quad", View: view, Width: 800, Height: 800},
		)
	}
	return p
}

func parseSizeKind(s string) (fovea.TextureSizeKind, error) {
	switch s {
	case "stereo":
		return fovea.TextureSizeStereo, nil
	case "quad":
		return fovea.TextureSizeQuad, nil
	case "dynamic":
		return fovea.TextureSizeDynamicFoveation, nil
	}
	return 0, fmt.Errorf("sim: unknown texture size kind %q", s)
}
