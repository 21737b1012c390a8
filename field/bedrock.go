package field

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenerateBedrock seeds Z_rock with a gentle procedural base using 2D
// tiled OpenSimplex fractal noise, the same torus-mapping trick the
// teacher's resource potential field uses to tile seamlessly at the
// grid's wrap boundary (systems/resource_field.go fbmTiled). Spec
// §4.2/§4.8 only require Z_rock to be "static" and a floor for Z; a
// dead-flat floor is the degenerate case used by the talus scenario in
// spec §8 scenario 6 (set flat=true there), but an interesting terrain
// kernel needs uneven bedrock to erode against.
//
// base and amplitude together bound the output to
// [base, base+amplitude].
func GenerateBedrock(b *Buffers, seed int64, base, amplitude float32, flat bool) {
	if flat || amplitude <= 0 {
		for i := range b.ZRock {
			b.ZRock[i] = base
		}
		b.Z.FillFrom(b.ZRock)
		return
	}

	noise := opensimplex.New(seed)
	const scale = 2.3
	const octaves = 4
	const lacunarity = 2.0
	const gain = 0.5

	for y := 0; y < b.H; y++ {
		v := (float64(y) + 0.5) / float64(b.H)
		angleV := v * 2 * 3.14159265358979
		for x := 0; x < b.W; x++ {
			u := (float64(x) + 0.5) / float64(b.W)
			angleU := u * 2 * 3.14159265358979

			// Map (u, v) onto a 2-torus in 4D so the field tiles at the
			// grid boundary, same construction as fbmTiled.
			nx, ny := math.Cos(angleU), math.Sin(angleU)
			nz, nw := math.Cos(angleV), math.Sin(angleV)

			sum, amp, freq := 0.0, 0.5, scale
			for o := 0; o < octaves; o++ {
				n := (noise.Eval4(nx*freq, ny*freq, nz*freq, nw*freq) + 1) * 0.5
				sum += amp * n
				freq *= lacunarity
				amp *= gain
			}
			if sum > 1 {
				sum = 1
			}
			if sum < 0 {
				sum = 0
			}
			b.ZRock[y*b.W+x] = base + float32(sum)*amplitude
		}
	}
	b.Z.FillFrom(b.ZRock)
}
