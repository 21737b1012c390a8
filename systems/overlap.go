package systems

import "github.com/keias1108/hyd-u/field"

// StepC recomputes the derived overlap field C = R·O. C is not
// ping-ponged: it is a pure read of the (already updated) R and O
// current buffers (spec §4.5).
func StepC(b *field.Buffers) {
	r := b.R.Current()
	o := b.O.Current()
	for i := range b.C {
		b.C[i] = r[i] * o[i]
	}
}
