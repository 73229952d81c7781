// Package config loads and validates run configuration for the satellite
// population generator.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all generator configuration.
type Config struct {
	// Seed for the realization sampler (0 = derive from the clock).
	Seed uint64 `yaml:"seed"`

	// Realizations is the number of populations to generate.
	Realizations int `yaml:"realizations"`

	Host       HostConfig       `yaml:"host"`
	DarkMatter DarkMatterConfig `yaml:"dark_matter"`
	Relations  RelationsConfig  `yaml:"relations"`
	Population PopulationConfig `yaml:"population"`
	Output     OutputConfig     `yaml:"output"`
}

// HostConfig describes the host halo.
type HostConfig struct {
	Name    string  `yaml:"name"`
	Mass    float64 `yaml:"mass"`     // [Msun]
	MassDef string  `yaml:"mass_def"` // 200c, 200m, vir
}

// DarkMatterConfig selects the dark matter model.
type DarkMatterConfig struct {
	Model   string  `yaml:"model"`    // cdm, wdm, sidm
	MWDM    float64 `yaml:"m_wdm"`    // [keV], wdm only
	SigmaSI float64 `yaml:"sigma_si"` // [cm^2/g], sidm only
}

// RelationsConfig selects relation models by their short codes and the
// per-relation scatter toggles.
type RelationsConfig struct {
	Concentration string  `yaml:"concentration"` // d19, d14
	SMHM          string  `yaml:"smhm"`          // m13, b13, b14, d17
	GalaxySize    string  `yaml:"galaxy_size"`   // r17
	ZReion        float64 `yaml:"z_reion"`

	Scatter map[string]bool `yaml:"scatter"`
}

// PopulationConfig holds the pipeline's scalar parameters.
type PopulationConfig struct {
	ZInfall        float64 `yaml:"z_infall"`
	MinMass        float64 `yaml:"min_mass"`        // [Msun]
	MLeft          float64 `yaml:"mleft"`           // (0, 1]
	DensityProfile string  `yaml:"density_profile"` // nfw, corenfw, sidm, mix
	MSwitchProfile float64 `yaml:"mswitch_profile"` // [Msun]
}

// OutputConfig selects where realizations are written.
type OutputConfig struct {
	Database string `yaml:"database"` // SQLite catalog path, empty = skip
	CSV      string `yaml:"csv"`      // CSV path, empty = skip
}

// Default returns the Milky Way defaults.
func Default() *Config {
	return &Config{
		Realizations: 1,
		Host: HostConfig{
			Name:    "MilkyWay",
			Mass:    1.4e12,
			MassDef: "200c",
		},
		DarkMatter: DarkMatterConfig{Model: "cdm"},
		Relations: RelationsConfig{
			Concentration: "d19",
			SMHM:          "m13",
			GalaxySize:    "r17",
			ZReion:        9.3,
		},
		Population: PopulationConfig{
			ZInfall:        1.0,
			MinMass:        1e7,
			MLeft:          1.0,
			DensityProfile: "mix",
			MSwitchProfile: 5e8,
		},
		Output: OutputConfig{Database: "data/dissat.db"},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parameter ranges the pipeline depends on.
func (c *Config) Validate() error {
	if c.Realizations < 1 {
		return fmt.Errorf("config: realizations must be >= 1, got %d", c.Realizations)
	}
	if c.Host.Mass <= 0 {
		return fmt.Errorf("config: host mass must be positive, got %g", c.Host.Mass)
	}
	if c.Population.MinMass <= 0 || c.Population.MinMass >= c.Host.Mass {
		return fmt.Errorf("config: min mass %g outside (0, host mass)", c.Population.MinMass)
	}
	if c.Population.MLeft <= 0 || c.Population.MLeft > 1 {
		return fmt.Errorf("config: mleft %g outside (0, 1]", c.Population.MLeft)
	}
	switch c.DarkMatter.Model {
	case "cdm":
	case "wdm":
		if c.DarkMatter.MWDM <= 0 {
			return fmt.Errorf("config: wdm model requires m_wdm > 0")
		}
	case "sidm":
		if c.DarkMatter.SigmaSI <= 0 {
			return fmt.Errorf("config: sidm model requires sigma_si > 0")
		}
	default:
		return fmt.Errorf("config: unknown dark matter model %q", c.DarkMatter.Model)
	}
	if c.Output.Database == "" && c.Output.CSV == "" {
		return fmt.Errorf("config: no output configured")
	}
	return nil
}
