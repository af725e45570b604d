package world

import (
	"math"
	"math/rand"
	"testing"
)

// TestHash3Deterministic verifies hash3 produces identical results for same inputs
func TestHash3Deterministic(t *testing.T) {
	first := hash3(10, 20, 30, 42)
	for i := 0; i < 100; i++ {
		if h := hash3(10, 20, 30, 42); h != first {
			t.Fatalf("hash3 not deterministic: got %d, want %d", h, first)
		}
	}
}

// TestHashDifferentInputs verifies the hashes separate axes and seeds
func TestHashDifferentInputs(t *testing.T) {
	seed := int64(42)
	pairs := []struct {
		name   string
		h1, h2 uint64
	}{
		{"hash3 x", hash3(1, 0, 0, seed), hash3(2, 0, 0, seed)},
		{"hash3 y", hash3(0, 1, 0, seed), hash3(0, 2, 0, seed)},
		{"hash3 z", hash3(0, 0, 1, seed), hash3(0, 0, 2, seed)},
		{"hash3 seed", hash3(1, 1, 1, 100), hash3(1, 1, 1, 200)},
		{"hash3 axis swap", hash3(1, 2, 3, seed), hash3(3, 2, 1, seed)},
		{"hash2 axis swap", hash2(1, 2, seed), hash2(2, 1, seed)},
		{"hash2 seed", hash2(5, 5, 1), hash2(5, 5, 2)},
	}
	for _, p := range pairs {
		if p.h1 == p.h2 {
			t.Errorf("%s: hashes collide (%d)", p.name, p.h1)
		}
	}
}

// TestValueNoiseRange verifies samples stay in [-1,1]
func TestValueNoiseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for _, n := range []*ValueNoise{DefaultNoise(), NewValueNoise(7, 0.5, 4)} {
		for i := 0; i < 1000; i++ {
			x := rng.Float64()*200 - 100
			y := rng.Float64()*200 - 100
			z := rng.Float64()*200 - 100
			if v := n.Noise3D(x, y, z); v < -1 || v > 1 {
				t.Fatalf("Noise3D(%f,%f,%f) = %f, want [-1,1]", x, y, z, v)
			}
			if v := n.Noise2D(x, z); v < -1 || v > 1 {
				t.Fatalf("Noise2D(%f,%f) = %f, want [-1,1]", x, z, v)
			}
		}
	}
}

// TestValueNoiseDeterministic verifies two sources with the same seed agree
func TestValueNoiseDeterministic(t *testing.T) {
	a := NewValueNoise(1111, 6, 3)
	b := NewValueNoise(1111, 6, 3)
	for i := 0; i < 100; i++ {
		x, y, z := float64(i)*0.37, float64(i)*-1.3, float64(i)*2.1
		if a.Noise3D(x, y, z) != b.Noise3D(x, y, z) {
			t.Fatalf("Noise3D differs at %d", i)
		}
		if a.Noise2D(x, z) != b.Noise2D(x, z) {
			t.Fatalf("Noise2D differs at %d", i)
		}
	}
}

// TestValueNoiseContinuity verifies smooth interpolation (no random jumps)
func TestValueNoiseContinuity(t *testing.T) {
	n := NewValueNoise(42, 1, 1)
	v1 := n.Noise3D(1.0, 1.0, 1.0)
	v2 := n.Noise3D(1.01, 1.0, 1.0)
	if diff := math.Abs(v1 - v2); diff >= 0.2 {
		t.Errorf("Noise3D not continuous: %f vs %f (diff %f)", v1, v2, diff)
	}
}

func TestNoiseAdapters(t *testing.T) {
	var c NoiseSource = ConstantNoise(-0.5)
	if c.Noise3D(1, 2, 3) != -0.5 || c.Noise2D(4, 5) != -0.5 {
		t.Errorf("ConstantNoise did not return its value")
	}
	f := NoiseFuncs{F3: func(x, y, z float64) float64 { return x + y + z }}
	if got := f.Noise3D(1, 2, 3); got != 6 {
		t.Errorf("NoiseFuncs.Noise3D: got %f, want 6", got)
	}
	if got := f.Noise2D(1, 2); got != 0 {
		t.Errorf("NoiseFuncs.Noise2D with nil func: got %f, want 0", got)
	}
}
