package transform

import (
	"errors"
	"fmt"
)

var errStackUnderflow = errors.New("matrix stack underflow")

// Stack is an explicit replacement for the fixed-function pipeline's current matrix stack (glPushMatrix/glPopMatrix).
// The zero value is not usable: create it with NewStack. It is not safe for concurrent use; each render owns one.
type Stack struct {
	ms []Matrix
}

// NewStack returns a stack holding only the identity.
func NewStack() *Stack {
	return &Stack{ms: []Matrix{Identity()}}
}

// Top is the current matrix.
func (s *Stack) Top() Matrix {
	return s.ms[len(s.ms)-1]
}

// Len is the number of saved matrices, including the current one.
func (s *Stack) Len() int {
	return len(s.ms)
}

// Push duplicates the current matrix.
func (s *Stack) Push() {
	s.ms = append(s.ms, s.Top())
}

// Pop restores the previously pushed matrix. The bottom matrix can never be popped.
func (s *Stack) Pop() error {
	if len(s.ms) == 1 {
		return fmt.Errorf("transform: pop: %w", errStackUnderflow)
	}
	s.ms = s.ms[:len(s.ms)-1]
	return nil
}

// Load replaces the current matrix.
func (s *Stack) Load(m Matrix) {
	s.ms[len(s.ms)-1] = m
}

// Mul post-multiplies the current matrix (current = current * m), so m applies to vertices first.
func (s *Stack) Mul(m Matrix) {
	s.ms[len(s.ms)-1] = s.Top().Mul(m)
}
