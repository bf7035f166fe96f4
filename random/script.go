package random

import (
	"fmt"
	"sync"
)

// Script is a Source that replays a fixed queue of values, used in tests to
// force specific draws. Each queued value must fall inside the range the
// caller requests or IntN panics, which catches tests scripting the wrong
// draw order.
type Script struct {
	mu     sync.Mutex
	values []int
}

// NewScript returns a Script that yields the given values in order.
func NewScript(values ...int) *Script {
	return &Script{values: values}
}

// Push appends further values to the queue.
func (s *Script) Push(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Remaining reports how many scripted values are left unconsumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

func (s *Script) IntN(low, high int) int {
	if low >= high {
		panic("random: invalid range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		panic("random: script exhausted")
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < low || v >= high {
		panic(fmt.Sprintf("random: scripted value %d outside [%d,%d)", v, low, high))
	}
	return v
}
