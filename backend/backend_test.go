package backend

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func randomBuffer(r *rand.Rand, size int) []float64 {
	data := make([]float64, size)
	for i := range data {
		data[i] = r.Float64()*2 - 1
	}
	return data
}

func eq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// every implementation must agree with the naive reference on every primitive
func TestImplementationsAgree(t *testing.T) {
	ref := naive{}
	r := rand.New(rand.NewSource(666))

	for _, size := range []int{1, 3, 128, 1000} {
		xdata := randomBuffer(r, size)
		ydata := randomBuffer(r, size)

		for _, sub := range []Implementation{blas{}} {
			xref := append([]float64(nil), xdata...)
			yref := append([]float64(nil), ydata...)
			xgot := append([]float64(nil), xdata...)
			ygot := append([]float64(nil), ydata...)

			if got, want := sub.Dot(sub.Wrap(size, xgot), sub.Wrap(size, ygot)), ref.Dot(xref, yref); !eq(got, want) {
				t.Fatalf("%s: expected dot %f, got %f", sub.Name(), want, got)
			} else if got, want = sub.Nrm2(sub.Wrap(size, xgot)), ref.Nrm2(xref); !eq(got, want) {
				t.Fatalf("%s: expected nrm2 %f, got %f", sub.Name(), want, got)
			} else if got, want = sub.Asum(sub.Wrap(size, xgot)), ref.Asum(xref); !eq(got, want) {
				t.Fatalf("%s: expected asum %f, got %f", sub.Name(), want, got)
			}

			sub.Scal(3.14, sub.Wrap(size, xgot))
			ref.Scal(3.14, xref)
			for i := range xref {
				if !eq(xgot[i], xref[i]) {
					t.Fatalf("%s: scal mismatch at %d: %f != %f", sub.Name(), i, xgot[i], xref[i])
				}
			}

			sub.Axpy(-0.5, sub.Wrap(size, xgot), sub.Wrap(size, ygot))
			ref.Axpy(-0.5, xref, yref)
			for i := range yref {
				if !eq(ygot[i], yref[i]) {
					t.Fatalf("%s: axpy mismatch at %d: %f != %f", sub.Name(), i, ygot[i], yref[i])
				}
			}

			sub.Copy(sub.Wrap(size, xgot), sub.Wrap(size, ygot))
			for i := range xgot {
				if ygot[i] != xgot[i] {
					t.Fatalf("%s: copy mismatch at %d: %f != %f", sub.Name(), i, ygot[i], xgot[i])
				}
			}
		}
	}
}

func TestDefaultIsUsable(t *testing.T) {
	if Name() == "" {
		t.Fatal("expected a backend name")
	} else if Space() == 0 {
		t.Fatal("expected a non zero memory space")
	}

	v := Wrap(3, []float64{1, 2, 3})
	if got := Dot(v, v); !eq(got, 14) {
		t.Fatalf("expected dot 14, got %f", got)
	}
}
