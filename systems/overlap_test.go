package systems

import (
	"testing"

	"github.com/keias1108/hyd-u/field"
)

func TestStepCIsProduct(t *testing.T) {
	b := field.NewBuffers(4, 4)
	r := b.R.Current()
	o := b.O.Current()
	for i := range r {
		r[i] = float32(i) * 0.1
		o[i] = 0.5
	}

	StepC(b)

	for i := range b.C {
		want := r[i] * o[i]
		if b.C[i] != want {
			t.Fatalf("C[%d] = %v, want %v", i, b.C[i], want)
		}
	}
}
