package components

// SpriteKind identifies what a sprite depicts
type SpriteKind int

const (
	SpriteHead SpriteKind = iota
	SpriteSegment
	SpriteFood
	SpriteText
)

// String returns the sprite kind name for logs
func (k SpriteKind) String() string {
	switch k {
	case SpriteHead:
		return "head"
	case SpriteSegment:
		return "segment"
	case SpriteFood:
		return "food"
	case SpriteText:
		return "text"
	default:
		return "unknown"
	}
}

// Sprite is a positioned scene object. X, Y is the box center
type Sprite struct {
	Kind SpriteKind

	// Placement
	X, Y  float64
	Angle int // Degrees, [0, 360)

	// Bounding box, zero for text
	Width, Height float64

	// Text content (SpriteText only)
	Text string
}

// CopyPlacement copies position and angle from another sprite
func (s *Sprite) CopyPlacement(from *Sprite) {
	s.X = from.X
	s.Y = from.Y
	s.Angle = from.Angle
}

// Collidable reports whether the sprite takes part in box overlap tests
func (s *Sprite) Collidable() bool {
	return s.Kind != SpriteText && s.Width > 0 && s.Height > 0
}
