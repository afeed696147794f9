package bconfig

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the bisbm tool.
type Config struct {
	Search    SearchConfig    `mapstructure:"search"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Log       LogConfig       `mapstructure:"log"`
}

// SearchConfig mirrors search.Config's tuning parameters (§4.6).
type SearchConfig struct {
	Rho             float64 `mapstructure:"rho"`
	Kappa           int     `mapstructure:"kappa"`
	NM              int     `mapstructure:"nm"`
	InitialKa0      int     `mapstructure:"initial_ka0"`
	InitialKb0      int     `mapstructure:"initial_kb0"`
	UseNaturalMerge bool    `mapstructure:"use_natural_merge"`
}

// EngineConfig mirrors engine.Config's annealing/sweep parameters (§4.5).
type EngineConfig struct {
	NSweeps     int     `mapstructure:"n_sweeps"`
	CoolingKind string  `mapstructure:"cooling_kind"` // exponential, logarithmic, linear, constant, abrupt_cool
	CoolingP1   float64 `mapstructure:"cooling_p1"`
	CoolingP2   float64 `mapstructure:"cooling_p2"`
	Epsilon     float64 `mapstructure:"epsilon"`
	BinaryPath  string  `mapstructure:"binary_path"` // external engine binary, for the Exec adapter
}

// DatabaseConfig holds checkpoint-store connection configuration.
type DatabaseConfig struct {
	Type     string `mapstructure:"type"` // sqlite, postgres, or mysql
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	MaxConns int    `mapstructure:"max_conns"`
	DSN      string `mapstructure:"dsn"` // sqlite file path, or a full DSN override
}

// StorageConfig holds artifact-export storage configuration.
type StorageConfig struct {
	Type      string `mapstructure:"type"` // cos or local
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Domain    string `mapstructure:"domain"`
	Scheme    string `mapstructure:"scheme"`
	LocalPath string `mapstructure:"local_path"`
}

// TelemetryConfig holds OpenTelemetry trace export configuration.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"` // json or console
}

// Load reads configuration from configPath, falling back to the standard
// search locations and then defaults when no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("bisbm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/bisbm")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("bconfig: no config file found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("bconfig: config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("bconfig: failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("BISBM")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("bconfig: failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bconfig: config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration from in-memory content, for tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("bconfig: failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("bconfig: failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.rho", 0.9)
	v.SetDefault("search.kappa", 2)
	v.SetDefault("search.nm", 10)
	v.SetDefault("search.initial_ka0", 1)
	v.SetDefault("search.initial_kb0", 1)
	v.SetDefault("search.use_natural_merge", true)

	v.SetDefault("engine.n_sweeps", 4)
	v.SetDefault("engine.cooling_kind", "exponential")
	v.SetDefault("engine.cooling_p1", 0.99)
	v.SetDefault("engine.cooling_p2", 0.0)
	v.SetDefault("engine.epsilon", 0.1)

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.dsn", "./bisbm.db")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./artifacts")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "bisbm")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	switch c.Database.Type {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("bconfig: unsupported database type: %s", c.Database.Type)
	}
	switch c.Storage.Type {
	case "local", "cos":
	default:
		return fmt.Errorf("bconfig: unsupported storage type: %s", c.Storage.Type)
	}
	if c.Search.Rho <= 0 || c.Search.Rho >= 1 {
		return fmt.Errorf("bconfig: search.rho must be in (0,1), got %v", c.Search.Rho)
	}
	if c.Search.Kappa < 1 {
		return fmt.Errorf("bconfig: search.kappa must be >= 1, got %d", c.Search.Kappa)
	}
	if c.Engine.NSweeps < 1 {
		return fmt.Errorf("bconfig: engine.n_sweeps must be >= 1, got %d", c.Engine.NSweeps)
	}
	return nil
}
