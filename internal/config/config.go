package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Scoring    ScoringConfig    `yaml:"scoring" mapstructure:"scoring"`
	Classify   ClassifyConfig   `yaml:"classify" mapstructure:"classify"`
	Risk       RiskConfig       `yaml:"risk" mapstructure:"risk"`
	Investment InvestmentCosts  `yaml:"investment" mapstructure:"investment"`
	Simulation SimulationConfig `yaml:"simulation" mapstructure:"simulation"`
	Benchmark  BenchmarkConfig  `yaml:"benchmark" mapstructure:"benchmark"`
}

// StoreConfig configures the results database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // "sqlite" or "postgres"
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	Path        string `yaml:"path" mapstructure:"path"` // sqlite file path
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// DSN returns the connection string for the configured driver.
func (c StoreConfig) DSN() string {
	if c.Driver == "postgres" {
		return c.DatabaseURL
	}
	return c.Path
}

// ServerConfig configures the public API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ScoringConfig holds the category weight vectors for the maturity scoring
// services. Weights must sum to 1 per variant; defaults are supplied by the
// scoring package when a vector is absent.
type ScoringConfig struct {
	DataWeights map[string]float64 `yaml:"data_weights" mapstructure:"data_weights"`
	AIWeights   map[string]float64 `yaml:"ai_weights" mapstructure:"ai_weights"`
}

// ClassifyConfig configures the classification engine.
type ClassifyConfig struct {
	RuleTablePath string `yaml:"rule_table_path" mapstructure:"rule_table_path"`
}

// RiskConfig holds the per-category weights for the risk assessment engine.
// Absent entries fall back to equal weights.
type RiskConfig struct {
	Weights map[string]float64 `yaml:"weights" mapstructure:"weights"`
}

// InvestmentCosts holds the cost-per-maturity-point constants. Data and AI
// carry different unit costs (infrastructure vs talent cost profiles).
type InvestmentCosts struct {
	DataCostPerPoint float64 `yaml:"data_cost_per_point" mapstructure:"data_cost_per_point"`
	AICostPerPoint   float64 `yaml:"ai_cost_per_point" mapstructure:"ai_cost_per_point"`
}

// SimulationConfig holds cross-scenario simulation tunables.
type SimulationConfig struct {
	Smoothing           float64 `yaml:"smoothing" mapstructure:"smoothing"`
	DefaultHorizonYears int     `yaml:"default_horizon_years" mapstructure:"default_horizon_years"`
}

// BenchmarkConfig selects the default industry benchmark.
type BenchmarkConfig struct {
	DefaultID string `yaml:"default_id" mapstructure:"default_id"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MATURITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "maturity.db")
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 2)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("investment.data_cost_per_point", 25_000)
	v.SetDefault("investment.ai_cost_per_point", 40_000)
	v.SetDefault("simulation.smoothing", 0.4)
	v.SetDefault("simulation.default_horizon_years", 5)
	v.SetDefault("benchmark.default_id", "default")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
