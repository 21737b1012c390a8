package rngx

import "testing"

func TestClamp01(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v, want 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5,0,10) = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15,0,10) = %v, want 10", got)
	}
}

func TestSmoothstepEndpoints(t *testing.T) {
	if got := Smoothstep(0, 1, -1); got != 0 {
		t.Errorf("Smoothstep below edge0 = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 2); got != 1 {
		t.Errorf("Smoothstep above edge1 = %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Errorf("Smoothstep(0,1,0.5) = %v, want 0.5", got)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	x, y := Normalize(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Normalize(0,0) = (%v,%v), want (0,0)", x, y)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	x, y := Normalize(3, 4)
	if got := Length(x, y); got < 0.999 || got > 1.001 {
		t.Errorf("Normalize(3,4) length = %v, want ~1", got)
	}
}

func TestWrapIndexClampsToBounds(t *testing.T) {
	if got := WrapIndex(-5, 10); got != 0 {
		t.Errorf("WrapIndex(-5,10) = %v, want 0", got)
	}
	if got := WrapIndex(15, 10); got != 9 {
		t.Errorf("WrapIndex(15,10) = %v, want 9", got)
	}
	if got := WrapIndex(5, 10); got != 5 {
		t.Errorf("WrapIndex(5,10) = %v, want 5", got)
	}
}
