package fovea

// Option configures a Foveator during creation.
// Use functional options to customize Foveator behavior.
//
// The configuration is fixed at construction: a Foveator never changes
// behavior mid-session, mirroring runtimes whose feature switches are
// baked in before any frame is processed.
//
// Example:
//
//	// Gaze-following foveation (needs working eye tracking):
//	fv := fovea.New(rt,
//	    fovea.WithFoveatedTangents(true),
//	    fovea.WithFoveatedGaze(true))
//
//	// Fixed foveation with the synthetic forward gaze:
//	fv := fovea.New(rt, fovea.WithFoveatedTangents(true))
type Option func(*options)

// options holds optional configuration for Foveator creation.
type options struct {
	foveatedTangents bool
	foveatedGaze     bool
}

// defaultOptions returns the default foveator options: foveated tangents
// on, real gaze queries off.
func defaultOptions() options {
	return options{
		foveatedTangents: true,
		foveatedGaze:     false,
	}
}

// WithFoveatedTangents selects which tangent set FOV resolution uses.
//
// Enabled, the resolver asks the host for gaze-conditioned (foveated)
// tangents and the negotiator bases densities on the host's
// dynamic-foveation resolution. Disabled, the resolver uses each view's
// static tangents and the negotiator bases densities on the quadrant
// resolution. Default: enabled.
func WithFoveatedTangents(enabled bool) Option {
	return func(o *options) {
		o.foveatedTangents = enabled
	}
}

// WithFoveatedGaze selects where gaze samples come from.
//
// Enabled, gaze queries delegate to the host's eye tracking, including
// its failures — a failed query makes the resolver fall back to static
// tangents for that call. Disabled, every gaze query returns the fixed
// neutral forward gaze from [NeutralGaze], which keeps FOV resolution
// deterministic on systems without eye tracking. Default: disabled.
func WithFoveatedGaze(enabled bool) Option {
	return func(o *options) {
		o.foveatedGaze = enabled
	}
}
