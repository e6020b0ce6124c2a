package display

import (
	"github.com/matryer/is"
	"testing"
)

func TestRotateDelta(t *testing.T) {
	is := is.New(t)

	cases := []struct {
		rotation Rotation
		dx, dy   float32
	}{
		{Rotation0, -5, 10},
		{Rotation90, 10, 5},
		{Rotation180, 5, -10},
		{Rotation270, -10, -5},
	}

	for _, c := range cases {
		dx, dy := RotateDelta(c.rotation, -5, 10)
		is.Equal(dx, c.dx) // x
		is.Equal(dy, c.dy) // y
	}
}

func TestParseRotation(t *testing.T) {
	is := is.New(t)

	r, err := ParseRotation(270)
	is.NoErr(err)
	is.Equal(r, Rotation270)
	is.Equal(r.String(), "ROTATION_270")

	_, err = ParseRotation(45)
	is.True(err != nil)
}

func TestDisplay_LogicalSize(t *testing.T) {
	is := is.New(t)

	d := New(0, 800, 480, Rotation0)
	w, h := d.LogicalSize()
	is.Equal(w, 800)
	is.Equal(h, 480)

	d.SetOrientation(Rotation90)
	is.Equal(d.Orientation(), Rotation90)
	w, h = d.LogicalSize()
	is.Equal(w, 480)
	is.Equal(h, 800)
}
