package pointer

import (
	"sync"
)

// Bounds is the inclusive rectangle the cursor is confined to.
type Bounds struct {
	MinX float32
	MinY float32
	MaxX float32
	MaxY float32
}

// BoundsForSize returns the bounds of a display of the given size in pixels.
func BoundsForSize(width int, height int) Bounds {
	return Bounds{
		MaxX: float32(width - 1),
		MaxY: float32(height - 1),
	}
}

// Controller is the authority over the absolute cursor position. Every device moves the same cursor, so all
// updates are serialized through the controller.
type Controller struct {
	mu     sync.Mutex
	bounds Bounds
	x      float32
	y      float32
}

// New creates a controller with the cursor centered within bounds.
func New(bounds Bounds) *Controller {
	return &Controller{
		bounds: bounds,
		x:      (bounds.MinX + bounds.MaxX) / 2,
		y:      (bounds.MinY + bounds.MaxY) / 2,
	}
}

func (c *Controller) Bounds() Bounds {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.bounds
}

// SetBounds replaces the bounds, clamping the current position into them.
func (c *Controller) SetBounds(bounds Bounds) {
	c.mu.Lock()
	c.bounds = bounds
	c.x, c.y = c.clamp(c.x, c.y)
	c.mu.Unlock()
}

func (c *Controller) Position() (float32, float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.x, c.y
}

func (c *Controller) SetPosition(x float32, y float32) {
	c.mu.Lock()
	c.x, c.y = c.clamp(x, y)
	c.mu.Unlock()
}

// Move moves the cursor by a relative amount and returns the resulting position.
func (c *Controller) Move(dx float32, dy float32) (float32, float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.x, c.y = c.clamp(c.x+dx, c.y+dy)

	return c.x, c.y
}

// mu must be held
func (c *Controller) clamp(x float32, y float32) (float32, float32) {
	if x < c.bounds.MinX {
		x = c.bounds.MinX
	} else if x > c.bounds.MaxX {
		x = c.bounds.MaxX
	}

	if y < c.bounds.MinY {
		y = c.bounds.MinY
	} else if y > c.bounds.MaxY {
		y = c.bounds.MaxY
	}

	return x, y
}
