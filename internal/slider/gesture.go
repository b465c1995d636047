package slider

// Direction is the outcome of normalizing one raw input gesture.
type Direction int

const (
	None     Direction = iota
	Forward            // advance to the next slide
	Backward           // retreat to the previous slide
)

// Drag normalizes a completed pointer drag given the total deltas.
//
// Horizontal travel must exceed [DragThreshold]; a leftward drag moves
// forward. Vertical-dominant motion is page scroll, not navigation.
func Drag(deltaX, deltaY float64) Direction {
	if abs(deltaY) > abs(deltaX) {
		return None
	}
	switch {
	case deltaX < -DragThreshold:
		return Forward
	case deltaX > DragThreshold:
		return Backward
	default:
		return None
	}
}

// Swipe normalizes a completed touch swipe. Same shape as [Drag] with the
// swipe threshold.
func Swipe(deltaX, deltaY float64) Direction {
	if abs(deltaY) > abs(deltaX) {
		return None
	}
	switch {
	case deltaX < -SwipeThreshold:
		return Forward
	case deltaX > SwipeThreshold:
		return Backward
	default:
		return None
	}
}

// Wheel normalizes a wheel event. Only horizontal-dominant deltas past
// [WheelSensitivity] navigate; mobile agents ignore wheel input entirely.
func Wheel(deltaX, deltaY float64, mobile bool) Direction {
	if mobile {
		return None
	}
	if abs(deltaY) >= abs(deltaX) {
		return None
	}
	switch {
	case deltaX > WheelSensitivity:
		return Forward
	case deltaX < -WheelSensitivity:
		return Backward
	default:
		return None
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
