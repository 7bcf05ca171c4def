package ga

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration of an experiment.
type Config struct {
	GA         GAConfig
	Network    NetworkConfig
	Experiment ExperimentConfig
}

// GAConfig holds the parameters of the genetic optimizer.
type GAConfig struct {
	PopulationSize   int     `ini:"population_size"`
	MaxGenerations   int     `ini:"max_generations"`
	CrossoverRate    float64 `ini:"crossover_rate"`
	MutationRate     float64 `ini:"mutation_rate"`
	MutationStrength float64 `ini:"mutation_strength"`
	ElitismRate      float64 `ini:"elitism_rate"`
	TournamentSize   int     `ini:"tournament_size"`
	Verbose          bool    `ini:"verbose"` // Progress output only, never changes results.
	Workers          int     `ini:"workers"` // Parallel fitness evaluations; <= 1 evaluates sequentially.

	InitMin float64 `ini:"init_min"` // Range of the initial genes.
	InitMax float64 `ini:"init_max"`
	GeneMin float64 `ini:"gene_min"` // Mutated genes are clamped to this range.
	GeneMax float64 `ini:"gene_max"`
}

// NetworkConfig describes the networks trained by an experiment.
type NetworkConfig struct {
	Activation    string   `ini:"activation"`
	Architectures []string `ini:"architectures" delim:" "` // e.g. "30-10-1 30-15-5-1"
}

// ExperimentConfig holds the parameters of the cross-validation driver.
type ExperimentConfig struct {
	DataPath     string `ini:"data_path"`
	NumFeatures  int    `ini:"num_features"`
	Folds        int    `ini:"folds"`
	Seed         int64  `ini:"seed"`
	Runs         int    `ini:"runs"`
	ResultsDir   string `ini:"results_dir"`
	Store        string `ini:"store"` // memory|sqlite
	DBPath       string `ini:"db_path"`
	SnapshotPath string `ini:"snapshot_path"`
}

// DefaultGAConfig returns the optimizer defaults.
func DefaultGAConfig() GAConfig {
	return GAConfig{
		PopulationSize:   50,
		MaxGenerations:   100,
		CrossoverRate:    0.8,
		MutationRate:     0.15,
		MutationStrength: 0.3,
		ElitismRate:      0.1,
		TournamentSize:   3,
		Verbose:          false,
		Workers:          1,
		InitMin:          -1.0,
		InitMax:          1.0,
		GeneMin:          -5.0,
		GeneMax:          5.0,
	}
}

// DefaultConfig returns a complete configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GA: DefaultGAConfig(),
		Network: NetworkConfig{
			Activation:    "logistic",
			Architectures: []string{"30-10-1"},
		},
		Experiment: ExperimentConfig{
			DataPath:    "data/wdbc.data",
			NumFeatures: 30,
			Folds:       10,
			Seed:        42,
			Runs:        1,
			ResultsDir:  ".",
			Store:       "memory",
			DBPath:      "results.db",
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(filePath string) (*Config, error) {
	config, err := loadConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// ParseConfig reads a configuration from INI text.
func ParseConfig(data []byte) (*Config, error) {
	return loadConfig(data)
}

func loadConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, source)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("Network").MapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}
	if err := cfg.Section("Experiment").MapTo(&config.Experiment); err != nil {
		return nil, fmt.Errorf("failed to map [Experiment] section: %w", err)
	}

	config.Network.Activation = cleanIniString(config.Network.Activation)
	config.Experiment.Store = cleanIniString(config.Experiment.Store)
	archs := config.Network.Architectures[:0]
	for _, a := range config.Network.Architectures {
		if a = strings.TrimSpace(a); a != "" {
			archs = append(archs, a)
		}
	}
	config.Network.Architectures = archs

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.GA.Validate(); err != nil {
		return err
	}
	if _, err := ParseActivation(c.Network.Activation); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if len(c.Network.Architectures) == 0 {
		return fmt.Errorf("config error: architectures must be specified")
	}
	for _, a := range c.Network.Architectures {
		if _, err := ParseArchitecture(a); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.Experiment.Folds < 1 {
		return fmt.Errorf("config error: folds must be positive")
	}
	if c.Experiment.Runs < 1 {
		return fmt.Errorf("config error: runs must be positive")
	}
	if c.Experiment.NumFeatures < 1 {
		return fmt.Errorf("config error: num_features must be positive")
	}
	switch c.Experiment.Store {
	case "", "memory", "sqlite":
	default:
		return fmt.Errorf("config error: invalid store '%s', must be one of 'memory', 'sqlite'", c.Experiment.Store)
	}
	return nil
}

// Validate checks the optimizer parameters.
func (c GAConfig) Validate() error {
	if c.PopulationSize < 1 {
		return fmt.Errorf("config error: population_size must be positive")
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("config error: max_generations cannot be negative")
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf("config error: crossover_rate must be between 0 and 1")
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("config error: mutation_rate must be between 0 and 1")
	}
	if c.MutationStrength < 0 {
		return fmt.Errorf("config error: mutation_strength cannot be negative")
	}
	if c.ElitismRate < 0 || c.ElitismRate > 1 {
		return fmt.Errorf("config error: elitism_rate must be between 0 and 1")
	}
	if c.TournamentSize < 1 {
		return fmt.Errorf("config error: tournament_size must be positive")
	}
	if c.InitMax < c.InitMin {
		return fmt.Errorf("config error: init_max cannot be less than init_min")
	}
	if c.GeneMax < c.GeneMin {
		return fmt.Errorf("config error: gene_max cannot be less than gene_min")
	}
	return nil
}

// Elites returns floor(PopulationSize * ElitismRate), the number of individuals
// copied unchanged into the next generation.
func (c GAConfig) Elites() int {
	return int(float64(c.PopulationSize) * c.ElitismRate)
}

// ParseArchitecture parses a layer list such as "30-10-1".
func ParseArchitecture(s string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	layers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid architecture '%s': %w", s, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid architecture '%s': layer sizes must be positive", s)
		}
		layers = append(layers, n)
	}
	if len(layers) < 2 {
		return nil, fmt.Errorf("invalid architecture '%s': %w", s, ErrInvalidTopology)
	}
	return layers, nil
}

// FormatArchitecture renders layer sizes as "30-10-1".
func FormatArchitecture(layers []int) string {
	parts := make([]string, len(layers))
	for i, n := range layers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
