package constants

// Field Defaults (world units)
const (
	// DefaultFieldWidth is the playfield width when no -width flag is given
	DefaultFieldWidth = 600

	// DefaultFieldHeight is the playfield height when no -height flag is given
	DefaultFieldHeight = 600
)

// Snake Movement
const (
	// SnakeStep is the distance the head travels per frame
	SnakeStep = 2

	// SegmentAttachOffset keeps segment 0 flush behind the head on straight frames
	SegmentAttachOffset = 14

	// SegmentBatchSize is the number of segments appended per food
	SegmentBatchSize = 6

	// BodyCollisionSkip is the number of leading segments ignored by self collision
	BodyCollisionSkip = 2
)

// Sprite Bounding Boxes (world units, center anchored)
const (
	HeadSize    = 16
	SegmentSize = 16
	FoodSize    = 16
)

// Boundary Rules
const (
	// WallMargin is the distance from any edge at which the head dies
	WallMargin = 16

	// FoodEdgeMargin keeps food away from the field edges
	FoodEdgeMargin = 15
)

// Food Relocation
const (
	// FoodJumpMin and FoodJumpMax bound the per-axis relocation offset
	FoodJumpMin = 50
	FoodJumpMax = 300

	// FoodNudgeMin and FoodNudgeMax bound the re-randomized offset after a wrap lands near the edge
	FoodNudgeMin = 15
	FoodNudgeMax = 60
)

// Scoring
const (
	// FoodScore is the score gained per food
	FoodScore = 1
)
