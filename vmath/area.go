package vmath

// Box is an axis-aligned rectangle anchored at its center
type Box struct {
	CX, CY        float64
	Width, Height float64
}

// BoxesOverlap reports whether two center-anchored boxes intersect
// Touching edges do not count as overlap
func BoxesOverlap(a, b Box) bool {
	return abs(a.CX-b.CX)*2 < a.Width+b.Width &&
		abs(a.CY-b.CY)*2 < a.Height+b.Height
}

// InsetContains checks if point lies at least margin away from every edge of [0,w]x[0,h]
func InsetContains(x, y, w, h, margin float64) bool {
	return x >= margin && x <= w-margin && y >= margin && y <= h-margin
}

// Scale maps v from [0, from] onto cell index [0, to)
func Scale(v, from float64, to int) int {
	if from <= 0 || to <= 0 {
		return 0
	}
	i := int(v * float64(to) / from)
	if i < 0 {
		return 0
	}
	if i >= to {
		return to - 1
	}
	return i
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
