package display

import (
	"sync"
)

// Display holds the state of a logical display that input devices are associated with.
// It is safe for concurrent use.
type Display struct {
	mu       sync.Mutex
	id       int32
	width    int
	height   int
	rotation Rotation
}

func New(id int32, width int, height int, rotation Rotation) *Display {
	return &Display{
		id:       id,
		width:    width,
		height:   height,
		rotation: rotation,
	}
}

func (d *Display) ID() int32 {
	return d.id
}

// Size returns the size of the display in its natural orientation.
func (d *Display) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.width, d.height
}

// LogicalSize returns the size of the display as seen by applications in its current orientation.
func (d *Display) LogicalSize() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.rotation == Rotation90 || d.rotation == Rotation270 {
		return d.height, d.width
	}

	return d.width, d.height
}

func (d *Display) Orientation() Rotation {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.rotation
}

func (d *Display) SetOrientation(rotation Rotation) {
	d.mu.Lock()
	d.rotation = rotation
	d.mu.Unlock()
}
