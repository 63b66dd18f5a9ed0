package components

// Heading is the direction the snake head travels in
type Heading int

const (
	HeadingRight Heading = iota
	HeadingUp
	HeadingLeft
	HeadingDown
)

// Headings lists every heading in angle order
var Headings = [...]Heading{HeadingRight, HeadingUp, HeadingLeft, HeadingDown}

// String returns the heading name for logs
func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "right"
	case HeadingUp:
		return "up"
	case HeadingLeft:
		return "left"
	case HeadingDown:
		return "down"
	default:
		return "unknown"
	}
}

// Reverse returns the opposite heading
func (h Heading) Reverse() Heading {
	switch h {
	case HeadingRight:
		return HeadingLeft
	case HeadingLeft:
		return HeadingRight
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	default:
		return h
	}
}

// Angle returns the sprite rotation in degrees (Right=0, Up=90, Left=180, Down=270)
func (h Heading) Angle() int {
	switch h {
	case HeadingRight:
		return 0
	case HeadingUp:
		return 90
	case HeadingLeft:
		return 180
	case HeadingDown:
		return 270
	default:
		return 0
	}
}

// Delta returns the unit movement vector in screen space (y grows downward)
func (h Heading) Delta() (dx, dy float64) {
	switch h {
	case HeadingRight:
		return 1, 0
	case HeadingLeft:
		return -1, 0
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// TurnDelta returns the rotation in degrees applied to the head when turning from -> to
// Reversals yield 180; callers reject them before applying
func TurnDelta(from, to Heading) int {
	switch to {
	case HeadingRight:
		switch from {
		case HeadingLeft:
			return 180
		case HeadingUp:
			return -90
		case HeadingDown:
			return 90
		}
	case HeadingLeft:
		switch from {
		case HeadingRight:
			return 180
		case HeadingUp:
			return 90
		case HeadingDown:
			return -90
		}
	case HeadingUp:
		switch from {
		case HeadingRight:
			return 90
		case HeadingLeft:
			return -90
		case HeadingDown:
			return 180
		}
	case HeadingDown:
		switch from {
		case HeadingRight:
			return -90
		case HeadingLeft:
			return 90
		case HeadingUp:
			return 180
		}
	}
	return 0
}

// NormalizeAngle folds an angle in degrees into [0, 360)
func NormalizeAngle(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
