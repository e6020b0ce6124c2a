package display

import (
	"fmt"
)

// Rotation represents the cardinal rotation of a display.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// ParseRotation converts an angle in degrees to a Rotation.
func ParseRotation(degrees int) (Rotation, error) {
	switch degrees {
	case 0:
		return Rotation0, nil
	case 90:
		return Rotation90, nil
	case 180:
		return Rotation180, nil
	case 270:
		return Rotation270, nil
	default:
		return Rotation0, fmt.Errorf("invalid rotation %d", degrees)
	}
}

// Degrees returns the rotation angle in degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

func (r Rotation) String() string {
	return fmt.Sprintf("ROTATION_%d", r.Degrees())
}

// RotateDelta transforms a relative motion from device space into display space.
func RotateDelta(r Rotation, dx, dy float32) (float32, float32) {
	switch r {
	case Rotation90:
		return dy, -dx
	case Rotation180:
		return -dx, -dy
	case Rotation270:
		return -dy, dx
	default:
		return dx, dy
	}
}
