package engine

import (
	"github.com/Lihanq/snake-game/components"
	"github.com/Lihanq/snake-game/constants"
	"github.com/Lihanq/snake-game/vmath"
)

// Scene creates sprites and answers geometry queries about the playfield
type Scene interface {
	// CreateImage places a new sprite of the given kind at the scene's spawn point
	CreateImage(kind components.SpriteKind) *components.Sprite
	// CreateImageAt places a new sprite of the given kind at x, y
	CreateImageAt(kind components.SpriteKind, x, y float64) *components.Sprite
	// CreateText places a text sprite at x, y
	CreateText(text string, x, y float64) *components.Sprite
	// Overlap reports whether two collidable sprites' boxes intersect
	Overlap(a, b *components.Sprite) bool
	Width() float64
	Height() float64
	// SpawnPoint is where sprites created without a position appear
	SpawnPoint() (x, y float64)
}

// Rand supplies the random integers used by food placement
type Rand interface {
	// Range returns a value in [min, max]
	Range(min, max int) int
}

// Field is the in-process Scene: a fixed-size plane
type Field struct {
	width, height float64
}

// NewField creates an empty field of the given size
func NewField(width, height float64) *Field {
	return &Field{width: width, height: height}
}

func (f *Field) CreateImage(kind components.SpriteKind) *components.Sprite {
	x, y := f.SpawnPoint()
	return f.CreateImageAt(kind, x, y)
}

func (f *Field) CreateImageAt(kind components.SpriteKind, x, y float64) *components.Sprite {
	w, h := spriteSize(kind)
	return &components.Sprite{
		Kind:   kind,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
}

func (f *Field) CreateText(text string, x, y float64) *components.Sprite {
	return &components.Sprite{
		Kind: components.SpriteText,
		X:    x,
		Y:    y,
		Text: text,
	}
}

func (f *Field) Overlap(a, b *components.Sprite) bool {
	if a == nil || b == nil || !a.Collidable() || !b.Collidable() {
		return false
	}
	return vmath.BoxesOverlap(
		vmath.Box{CX: a.X, CY: a.Y, Width: a.Width, Height: a.Height},
		vmath.Box{CX: b.X, CY: b.Y, Width: b.Width, Height: b.Height},
	)
}

func (f *Field) Width() float64  { return f.width }
func (f *Field) Height() float64 { return f.height }

func (f *Field) SpawnPoint() (float64, float64) {
	return f.width / 2, f.height / 2
}

// spriteSize returns the bounding box for a sprite kind
func spriteSize(kind components.SpriteKind) (float64, float64) {
	switch kind {
	case components.SpriteHead:
		return constants.HeadSize, constants.HeadSize
	case components.SpriteSegment:
		return constants.SegmentSize, constants.SegmentSize
	case components.SpriteFood:
		return constants.FoodSize, constants.FoodSize
	case components.SpriteText:
		return 0, 0
	default:
		return 0, 0
	}
}
