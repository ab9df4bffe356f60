package starfall

// ScoreCounter counts collected stars. It only ever goes up.
type ScoreCounter struct {
	value int
}

// Increment adds one point and returns the new value.
func (s *ScoreCounter) Increment() int {
	s.value++
	return s.value
}

// Value returns the current score.
func (s *ScoreCounter) Value() int {
	return s.value
}
