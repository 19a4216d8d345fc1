package dice

import "fmt"

// Scripted replays a fixed list of draws. Each draw is reduced modulo n into [0, n), so
// scripts can be written in terms of the outcome they want (e.g. 2 for the
// third of three events). It panics when the script runs out, which in tests
// means the code under test drew more often than expected.
type Scripted struct {
	draws []int
	pos   int
}

// NewScripted returns a Source that yields draws in order.
func NewScripted(draws ...int) *Scripted {
	return &Scripted{draws: draws}
}

func (s *Scripted) Intn(n int) int {
	if s.pos >= len(s.draws) {
		panic(fmt.Sprintf("dice: scripted source exhausted after %d draws", s.pos))
	}
	v := s.draws[s.pos]
	s.pos++
	// Negative draws wrap around so the result stays in [0, n).
	return ((v % n) + n) % n
}

// Remaining reports how many draws are left.
func (s *Scripted) Remaining() int {
	return len(s.draws) - s.pos
}
