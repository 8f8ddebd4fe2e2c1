package space

import (
	"errors"
	"testing"
)

func TestNewRN(t *testing.T) {
	s, err := NewRN(3)
	if err != nil {
		t.Fatal(err)
	} else if s.N() != 3 {
		t.Fatalf("expected dimension 3, got %d", s.N())
	} else if s.Field() != RealNumbers {
		t.Fatalf("unexpected field %v", s.Field())
	} else if s.String() != "RN(3)" {
		t.Fatalf("unexpected representation %s", s.String())
	}
}

func TestNewRNWithInvalidDimension(t *testing.T) {
	for _, n := range []int{0, -1, -666} {
		if _, err := NewRN(n); err == nil {
			t.Fatalf("expected an error for dimension %d", n)
		} else if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected an invalid argument error, got %v", err)
		}
	}
}

func TestZero(t *testing.T) {
	s, err := NewRN(3)
	if err != nil {
		t.Fatal(err)
	}

	x := s.Zero()
	if x.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", x.Len())
	}
	for i := 0; i < x.Len(); i++ {
		if x.Get(i) != 0 {
			t.Fatalf("expected 0 at index %d, got %f", i, x.Get(i))
		}
	}

	// every call must return a fresh, non aliased buffer
	if x.Is(s.Zero()) {
		t.Fatal("expected a fresh buffer on every call")
	}
}

func TestEmpty(t *testing.T) {
	s, err := NewRN(3)
	if err != nil {
		t.Fatal(err)
	}

	// contents are unspecified and deliberately not asserted, only shape
	// and membership are
	x := s.Empty()
	if x.Len() != s.N() {
		t.Fatalf("expected %d elements, got %d", s.N(), x.Len())
	} else if x.Is(s.Empty()) {
		t.Fatal("expected a fresh buffer on every call")
	}
}

func TestWrap(t *testing.T) {
	s, err := NewRN(3)
	if err != nil {
		t.Fatal(err)
	}

	buf := []float64{1, 2, 3}
	x, err := s.Wrap(buf)
	if err != nil {
		t.Fatal(err)
	}

	// wrapping adopts the buffer instead of copying it
	buf[0] = 666
	if x.Get(0) != 666 {
		t.Fatal("expected the wrapped buffer to be shared")
	}

	// two handles over one buffer identity alias each other
	y, err := s.Wrap(buf)
	if err != nil {
		t.Fatal(err)
	} else if !x.Is(y) {
		t.Fatal("expected aliased handles")
	}

	if _, err = s.Wrap([]float64{1, 2}); err == nil {
		t.Fatal("expected an error")
	} else if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected a shape mismatch, got %v", err)
	}
}

func TestFromValues(t *testing.T) {
	s, err := NewRN(3)
	if err != nil {
		t.Fatal(err)
	}

	values := []float64{1, 2, 3}
	x, err := s.FromValues(values...)
	if err != nil {
		t.Fatal(err)
	}

	// FromValues copies
	values[0] = 666
	if x.Get(0) != 1 {
		t.Fatal("expected the values to be copied")
	}

	if _, err = s.FromValues(1, 2, 3, 4); err == nil {
		t.Fatal("expected an error")
	} else if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected a shape mismatch, got %v", err)
	}
}

func TestConvert(t *testing.T) {
	s, err := NewRN(3)
	if err != nil {
		t.Fatal(err)
	}

	for _, value := range []interface{}{
		[]float64{1, 2, 3},
		[]float32{1, 2, 3},
		[]int{1, 2, 3},
		[]int64{1, 2, 3},
	} {
		x, err := s.Convert(value)
		if err != nil {
			t.Fatalf("%T: %v", value, err)
		}
		for i, want := range []float64{1, 2, 3} {
			if x.Get(i) != want {
				t.Fatalf("%T: expected %f at index %d, got %f", value, want, i, x.Get(i))
			}
		}
	}

	if _, err = s.Convert("nope"); err == nil {
		t.Fatal("expected an error")
	} else if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected a type mismatch, got %v", err)
	}

	if _, err = s.Convert([]int{1, 2}); err == nil {
		t.Fatal("expected an error")
	} else if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected a shape mismatch, got %v", err)
	}
}

func TestVectorSetGet(t *testing.T) {
	s, err := NewRN(3)
	if err != nil {
		t.Fatal(err)
	}

	x := s.Zero()
	for i := 0; i < x.Len(); i++ {
		x.Set(i, float64(i)*3.14)
	}
	for i := 0; i < x.Len(); i++ {
		if x.Get(i) != float64(i)*3.14 {
			t.Fatalf("unexpected value at index %d: %f", i, x.Get(i))
		}
	}

	values := x.Values()
	values[0] = 666
	if x.Get(0) == 666 {
		t.Fatal("Values must return a copy")
	}
}

func TestSpaceEquality(t *testing.T) {
	r3a, _ := NewRN(3)
	r3b, _ := NewRN(3)
	r4, _ := NewRN(4)
	n3, _ := NewNormed(3)
	e3, _ := NewEuclidean(3)

	if !r3a.Equals(r3a) {
		t.Fatal("a space must equal itself")
	} else if !r3a.Equals(r3b) {
		t.Fatal("spaces of the same kind and dimension must be equal")
	} else if r3a.Equals(r4) {
		t.Fatal("spaces of different dimension must not be equal")
	} else if r3a.Equals(n3) || n3.Equals(r3a) {
		t.Fatal("different capability sets must not be equal")
	} else if e3.Equals(n3) || n3.Equals(e3) {
		t.Fatal("different capability sets must not be equal")
	}

	e3b, _ := NewEuclidean(3)
	if !e3.Equals(e3b) {
		t.Fatal("euclidean spaces of the same dimension must be equal")
	}
}
