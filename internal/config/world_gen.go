package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid world generation settings")

// WorldGen describes one generation run: the noise, the density rule and
// the inclusive box of chunk coordinates to populate.
type WorldGen struct {
	Seed         int64   `yaml:"seed"`
	Policy       string  `yaml:"policy"`
	Frequency    float64 `yaml:"frequency"`
	Octaves      int     `yaml:"octaves"`
	Divisor      float64 `yaml:"divisor"`
	VerticalBias float64 `yaml:"vertical_bias"`
	SealFloor    bool    `yaml:"seal_floor"`
	RegionMin    [3]int  `yaml:"region_min"`
	RegionMax    [3]int  `yaml:"region_max"`
	Workers      int     `yaml:"workers"`
}

// Defaults describes a 16x4x16 chunk heightmap region.
func Defaults() WorldGen {
	return WorldGen{
		Seed:      1111,
		Policy:    "heightmap",
		Frequency: 6,
		Octaves:   1,
		Divisor:   100,
		SealFloor: true,
		RegionMin: [3]int{0, 0, 0},
		RegionMax: [3]int{15, 3, 15},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (WorldGen, error) {
	if strings.TrimSpace(path) == "" {
		cfg := Defaults()
		cfg.Normalize()
		return cfg, cfg.Validate()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return WorldGen{}, fmt.Errorf("read world config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return WorldGen{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, normalizes and validates it.
func Parse(raw []byte) (WorldGen, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return WorldGen{}, fmt.Errorf("world config yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return WorldGen{}, err
	}
	return cfg, nil
}

// Normalize fills zero values with defaults.
func (c *WorldGen) Normalize() {
	d := Defaults()
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	if c.Policy == "" {
		c.Policy = d.Policy
	}
	if c.Frequency <= 0 {
		c.Frequency = d.Frequency
	}
	if c.Octaves < 1 {
		c.Octaves = d.Octaves
	}
	if c.Divisor <= 0 {
		c.Divisor = d.Divisor
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
}

// Validate checks the policy name and region bounds.
func (c WorldGen) Validate() error {
	switch c.Policy {
	case "volumetric", "heightmap":
	default:
		return fmt.Errorf("%w: policy %q (want volumetric or heightmap)", ErrInvalid, c.Policy)
	}
	for i, axis := range [3]string{"x", "y", "z"} {
		if c.RegionMin[i] > c.RegionMax[i] {
			return fmt.Errorf("%w: region_min.%s %d > region_max.%s %d", ErrInvalid, axis, c.RegionMin[i], axis, c.RegionMax[i])
		}
	}
	return nil
}

// ChunkCount returns the number of chunks in the configured region.
func (c WorldGen) ChunkCount() int {
	n := 1
	for i := range 3 {
		n *= c.RegionMax[i] - c.RegionMin[i] + 1
	}
	return n
}
