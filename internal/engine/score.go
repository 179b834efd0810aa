package engine

// Score is a monotonically non-decreasing counter, reset only by a new game.
type Score struct {
	value int
}

// Add increases the score. Non-positive amounts are ignored.
func (s *Score) Add(n int) {
	if n > 0 {
		s.value += n
	}
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.value = 0
}
