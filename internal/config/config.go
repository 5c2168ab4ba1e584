package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CYCLEQUBO_ENCODER_EPSILON.
const EnvPrefix = "CYCLEQUBO"

// DefaultEnvFile is the dotenv file read when no other path is given.
const DefaultEnvFile = ".env"

// Config represents the complete cyclequbo configuration
type Config struct {
	Encoder   EncoderConfig   `mapstructure:"encoder"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Report    ReportConfig    `mapstructure:"report"`
}

// EncoderConfig controls the QUBO encoding
type EncoderConfig struct {
	// Epsilon is the margin by which every penalty exceeds the reward it guards
	Epsilon float64 `mapstructure:"epsilon"`
}

// GeneratorConfig controls test graph generation
type GeneratorConfig struct {
	// Cycles is the number of disjoint cycles in the generated graph
	Cycles int `mapstructure:"cycles"`
	// CycleLength is the number of vertices on each cycle (min 3)
	CycleLength int `mapstructure:"cycle_length"`
	// NoiseEdges is an absolute number of noise edges to add
	NoiseEdges int `mapstructure:"noise_edges"`
	// NoiseFraction is the share of absent edges to add as noise, in [0,1].
	// Mutually exclusive with NoiseEdges.
	NoiseFraction float64 `mapstructure:"noise_fraction"`
	// Seed drives the noise RNG (0 selects a fixed default seed)
	Seed int64 `mapstructure:"seed"`
}

// ReportConfig controls sample summarization
type ReportConfig struct {
	// Confidence is the target probability for the runs-to-solution estimate
	Confidence float64 `mapstructure:"confidence"`
	// EnergyTolerance is the window within which states tie with the lowest
	EnergyTolerance float64 `mapstructure:"energy_tolerance"`
	// NumReads is the number of sampler reads when the samples file omits it
	NumReads int `mapstructure:"num_reads"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Encoder: EncoderConfig{
			Epsilon: 0.01,
		},
		Generator: GeneratorConfig{
			Cycles:        2,
			CycleLength:   3,
			NoiseEdges:    0,
			NoiseFraction: 0,
			Seed:          1,
		},
		Report: ReportConfig{
			Confidence:      0.99,
			EnergyTolerance: 1e-9,
			NumReads:        100,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// Encoder defaults
	v.SetDefault("encoder.epsilon", defaults.Encoder.Epsilon)

	// Generator defaults
	v.SetDefault("generator.cycles", defaults.Generator.Cycles)
	v.SetDefault("generator.cycle_length", defaults.Generator.CycleLength)
	v.SetDefault("generator.noise_edges", defaults.Generator.NoiseEdges)
	v.SetDefault("generator.noise_fraction", defaults.Generator.NoiseFraction)
	v.SetDefault("generator.seed", defaults.Generator.Seed)

	// Report defaults
	v.SetDefault("report.confidence", defaults.Report.Confidence)
	v.SetDefault("report.energy_tolerance", defaults.Report.EnergyTolerance)
	v.SetDefault("report.num_reads", defaults.Report.NumReads)
}

// NewViper returns a viper instance with defaults, environment overrides
// and, when present, a config file. An explicit file must exist; without
// one, "cyclequbo.yaml" is looked up in the working directory and silently
// skipped if absent.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	// e.g., CYCLEQUBO_GENERATOR_CYCLE_LENGTH for generator.cycle_length
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
		return v, nil
	}

	v.SetConfigName("cyclequbo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// LoadEnv loads variables from a dotenv file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "loading env file %s", path)
	}

	return nil
}
