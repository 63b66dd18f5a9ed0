package engine

// ScriptedRand replays fixed values, clamped into the requested range
// Used by tests that need exact food placement
type ScriptedRand struct {
	Values []int
	next   int
}

// NewScriptedRand creates a scripted source cycling through values
func NewScriptedRand(values ...int) *ScriptedRand {
	return &ScriptedRand{Values: values}
}

// Range returns the next scripted value clamped to [min, max]
// With no values it returns min
func (r *ScriptedRand) Range(min, max int) int {
	if len(r.Values) == 0 {
		return min
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
