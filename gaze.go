package fovea

// Vector3 is a direction or position in the runtime's tracking space.
type Vector3 struct {
	X, Y, Z float64
}

// Ray is an eye-tracking ray: an origin and a unit forward direction.
type Ray struct {
	Origin  Vector3
	Forward Vector3
}

// EyeStatus reports the tracking quality of a single eye.
type EyeStatus int32

// Eye status values, ordered from no signal to full tracking.
const (
	EyeInvalid EyeStatus = iota
	EyeVisible
	EyeCompensated
	EyeTracked
)

// String returns a human-readable name for the eye status.
func (s EyeStatus) String() string {
	switch s {
	case EyeInvalid:
		return "Invalid"
	case EyeVisible:
		return "Visible"
	case EyeCompensated:
		return "Compensated"
	case EyeTracked:
		return "Tracked"
	default:
		return "Unknown"
	}
}

// GazeStatus reports the overall validity of a gaze sample.
type GazeStatus int32

// Gaze status values.
const (
	GazeInvalid GazeStatus = iota
	GazeAdjusting
	GazeValid
)

// String returns a human-readable name for the gaze status.
func (s GazeStatus) String() string {
	switch s {
	case GazeInvalid:
		return "Invalid"
	case GazeAdjusting:
		return "Adjusting"
	case GazeValid:
		return "Valid"
	default:
		return "Unknown"
	}
}

// Gaze is one eye-tracking sample: per-eye rays, the combined (cyclopean)
// ray, validity, and stability. Hosts with real eye tracking fill every
// field; the synthetic sample from [NeutralGaze] fills only what the
// foveated tangent query consumes.
type Gaze struct {
	// LeftEye and RightEye are the per-eye gaze rays.
	LeftEye  Ray
	RightEye Ray

	// Combined is the cyclopean gaze ray.
	Combined Ray

	// FocusDistance is the estimated fixation distance in meters.
	FocusDistance float64

	// Stability is the sample's stability in [0, 1]; 1 means steady.
	Stability float64

	// CaptureTime is the host timestamp of the sample, in host ticks.
	CaptureTime int64

	// LeftStatus and RightStatus report per-eye tracking quality.
	LeftStatus  EyeStatus
	RightStatus EyeStatus

	// Status reports overall sample validity.
	Status GazeStatus

	// FrameNumber is the host frame the sample was captured for.
	FrameNumber int64
}

// NeutralGaze returns the fixed synthetic gaze used when gaze tracking is
// disabled: every ray looks straight ahead (0, 0, 1), both eyes report
// Tracked, the sample is Valid, and stability is 1. Deterministic and
// session-independent, so FOV resolution behaves identically on systems
// without eye tracking.
func NeutralGaze() Gaze {
	forward := Vector3{Z: 1}
	return Gaze{
		LeftEye:     Ray{Forward: forward},
		RightEye:    Ray{Forward: forward},
		Combined:    Ray{Forward: forward},
		Stability:   1,
		LeftStatus:  EyeTracked,
		RightStatus: EyeTracked,
		Status:      GazeValid,
	}
}
