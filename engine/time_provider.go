package engine

import "time"

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the system time with its monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a provider backed by time.Now
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
