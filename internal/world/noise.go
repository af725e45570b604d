package world

import (
	"math"
)

// NoiseSource is a seeded coherent-noise function. Samples lie in [-1,1]
// and depend only on the input position and the source's own parameters.
type NoiseSource interface {
	Noise3D(x, y, z float64) float64
	Noise2D(x, z float64) float64
}

// ConstantNoise returns the same value everywhere. Useful for flat
// terrain and fixtures.
type ConstantNoise float64

func (c ConstantNoise) Noise3D(x, y, z float64) float64 { return float64(c) }
func (c ConstantNoise) Noise2D(x, z float64) float64    { return float64(c) }

// NoiseFuncs adapts plain functions to NoiseSource. A nil function samples 0.
type NoiseFuncs struct {
	F3 func(x, y, z float64) float64
	F2 func(x, z float64) float64
}

func (f NoiseFuncs) Noise3D(x, y, z float64) float64 {
	if f.F3 == nil {
		return 0
	}
	return f.F3(x, y, z)
}

func (f NoiseFuncs) Noise2D(x, z float64) float64 {
	if f.F2 == nil {
		return 0
	}
	return f.F2(x, z)
}

// ValueNoise is a lattice value noise with quintic smoothing and optional
// octaves. The input position is multiplied by Frequency before sampling.
type ValueNoise struct {
	seed        int64
	frequency   float64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewValueNoise creates a noise source. frequency <= 0 means 1 and
// octaves < 1 means a single octave.
func NewValueNoise(seed int64, frequency float64, octaves int) *ValueNoise {
	if frequency <= 0 {
		frequency = 1
	}
	if octaves < 1 {
		octaves = 1
	}
	return &ValueNoise{
		seed:        seed,
		frequency:   frequency,
		octaves:     octaves,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

// DefaultNoise is the oracle used by Generate: seed 1111, frequency 6.
func DefaultNoise() *ValueNoise {
	return NewValueNoise(DefaultSeed, DefaultFrequency, 1)
}

func (n *ValueNoise) Noise3D(x, y, z float64) float64 {
	f := n.frequency
	v := octaveNoise3D(x*f, y*f, z*f, n.seed, n.octaves, n.persistence, n.lacunarity)
	return toSigned(v)
}

func (n *ValueNoise) Noise2D(x, z float64) float64 {
	f := n.frequency
	v := octaveNoise2D(x*f, z*f, n.seed, n.octaves, n.persistence, n.lacunarity)
	return toSigned(v)
}

// toSigned maps [0,1] to [-1,1], absorbing rounding drift at the ends.
func toSigned(v float64) float64 {
	return max(-1, min(1, v*2-1))
}

// fade is the 6t^5 - 15t^4 + 10t^3 smoothstep.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SplitMix64 finalizer over per-axis multiplied inputs.
func mix64(v uint64) uint64 {
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func hash2(x, z, seed int64) uint64 {
	return mix64(uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x6C62272E07BB0142 + uint64(seed))
}

func hash3(x, y, z, seed int64) uint64 {
	return mix64(uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed))
}

// unit maps the low 32 bits of a hash to [0,1].
func unit(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	fx := fade(x - x0)
	fz := fade(z - z0)
	ix, iz := int64(x0), int64(z0)

	v00 := unit(hash2(ix, iz, seed))
	v10 := unit(hash2(ix+1, iz, seed))
	v01 := unit(hash2(ix, iz+1, seed))
	v11 := unit(hash2(ix+1, iz+1, seed))

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz) // [0,1]
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	v000 := unit(hash3(ix, iy, iz, seed))
	v100 := unit(hash3(ix+1, iy, iz, seed))
	v010 := unit(hash3(ix, iy+1, iz, seed))
	v110 := unit(hash3(ix+1, iy+1, iz, seed))
	v001 := unit(hash3(ix, iy, iz+1, seed))
	v101 := unit(hash3(ix+1, iy, iz+1, seed))
	v011 := unit(hash3(ix, iy+1, iz+1, seed))
	v111 := unit(hash3(ix+1, iy+1, iz+1, seed))

	// x, then y, then z
	i00 := lerp(v000, v100, fx)
	i10 := lerp(v010, v110, fx)
	i01 := lerp(v001, v101, fx)
	i11 := lerp(v011, v111, fx)
	return lerp(lerp(i00, i10, fy), lerp(i01, i11, fy), fz) // [0,1]
}

func octaveNoise2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude, frequency := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := range octaves {
		sum += valueNoise2D(x*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func octaveNoise3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude, frequency := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := range octaves {
		sum += valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
