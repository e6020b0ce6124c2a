package converter

import (
	"github.com/The-PhoenixOS/frameworks-native/gestures"
	"github.com/The-PhoenixOS/frameworks-native/motion"
	"sort"
)

type buttonMapping struct {
	gesture gestures.Button
	button  motion.Button
	rank    int
}

// buttonMap is ordered by rank. Simultaneous transitions are reported in this order.
var buttonMap = []buttonMapping{
	{gestures.ButtonLeft, motion.ButtonPrimary, 0},
	{gestures.ButtonMiddle, motion.ButtonTertiary, 1},
	{gestures.ButtonRight, motion.ButtonSecondary, 2},
	{gestures.ButtonBack, motion.ButtonBack, 3},
	{gestures.ButtonForward, motion.ButtonForward, 4},
}

func init() {
	sort.SliceStable(buttonMap, func(i, j int) bool {
		return buttonMap[i].rank < buttonMap[j].rank
	})
}

func (c *GestureConverter) handleButtonsChange(when int64, readTime int64, g gestures.ButtonsChange) []motion.NotifyMotionArgs {
	var out []motion.NotifyMotionArgs

	x, y := c.pointer.Position()

	emit := func(action motion.Action, actionButton motion.Button, buttonState motion.Button) {
		coords := motion.PointerCoords{
			X: x,
			Y: y,
		}
		if buttonState != 0 {
			coords.Pressure = 1
		}

		out = append(out, c.makeMotionArgs(when, readTime, action, actionButton, buttonState,
			motion.ClassificationNone, singlePointer(), []motion.PointerCoords{coords}))
	}

	// Buttons already held are not pressed again, so the pointer only goes down once
	pressed := motion.Button(0)
	for _, m := range buttonMap {
		if g.Down&m.gesture != 0 && c.buttonState&m.button == 0 {
			pressed |= m.button
		}
	}

	// The fake fingers of a swipe own the pointer until it is lifted
	if pressed != 0 && c.swipe.inProgress() {
		c.log.Debugf("Ignoring button press %s during swipe on device %d", pressed, c.deviceID)
		pressed = 0
	}

	if pressed != 0 {
		if c.buttonState == 0 {
			c.downTime = when
			emit(motion.ActionDown, 0, pressed)
		}

		for _, m := range buttonMap {
			if pressed&m.button == 0 {
				continue
			}

			c.buttonState |= m.button
			emit(motion.ActionButtonPress, m.button, c.buttonState)
		}
	}

	released := false
	for _, m := range buttonMap {
		if g.Up&m.gesture == 0 || c.buttonState&m.button == 0 {
			continue
		}

		c.buttonState &^= m.button
		released = true
		emit(motion.ActionButtonRelease, m.button, c.buttonState)
	}

	if released && c.buttonState == 0 {
		emit(motion.ActionUp, 0, 0)
	}

	return out
}
