package transform

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	s.Mul(Translation(0, 0, -5))
	s.Push()
	s.Mul(Scaling(2, 2, 2))
	if got := s.Top().MulPosition(v3.Vec{X: 1}); got != (v3.Vec{X: 2, Z: -5}) {
		t.Fatalf("expected scaled then translated point, got %v", got)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 matrices, got %d", s.Len())
	}
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if s.Top() != Translation(0, 0, -5) {
		t.Fatalf("pop did not restore the saved matrix: %v", s.Top())
	}
	if err := s.Pop(); err == nil {
		t.Fatal("expected an underflow error when popping the last matrix")
	}
	s.Load(Identity())
	if s.Top() != Identity() {
		t.Fatalf("load did not replace the current matrix")
	}
}
