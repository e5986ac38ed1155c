// Package config loads typed configuration for the optimizer library's
// embedders and for cmd/optiqctl via viper, the way the teacher's
// pkg/common/config loads per-component configs.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// OptimizerConfig overrides the RulesExecutor's defaults. It is constructed
// by the caller and passed to optimizer.Option values; the optimizer package
// itself never reads a file or an environment variable.
type OptimizerConfig struct {
	MaxIterations int
	LogLevel      string
	MetricsPort   int
}

// CLIConfig configures cmd/optiqctl.
type CLIConfig struct {
	PlanFile      string
	MaxIterations int
	LogLevel      string
	MetricsPort   int
	PrettyDiff    bool
}

// LoadOptimizerConfig loads an OptimizerConfig from cfgFile (or the usual
// search path when cfgFile is empty), with environment overrides under the
// OPTIQ_ prefix.
func LoadOptimizerConfig(cfgFile string) (*OptimizerConfig, error) {
	v := viper.New()

	v.SetDefault("max_iterations", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_port", 9500)

	if err := readInto(v, cfgFile, "optimizer"); err != nil {
		return nil, err
	}

	return &OptimizerConfig{
		MaxIterations: v.GetInt("max_iterations"),
		LogLevel:      v.GetString("log_level"),
		MetricsPort:   v.GetInt("metrics_port"),
	}, nil
}

// LoadCLIConfig loads a CLIConfig the same way.
func LoadCLIConfig(cfgFile string) (*CLIConfig, error) {
	v := viper.New()

	v.SetDefault("plan_file", "")
	v.SetDefault("max_iterations", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_port", 9500)
	v.SetDefault("pretty_diff", true)

	if err := readInto(v, cfgFile, "optiqctl"); err != nil {
		return nil, err
	}

	return &CLIConfig{
		PlanFile:      v.GetString("plan_file"),
		MaxIterations: v.GetInt("max_iterations"),
		LogLevel:      v.GetString("log_level"),
		MetricsPort:   v.GetInt("metrics_port"),
		PrettyDiff:    v.GetBool("pretty_diff"),
	}, nil
}

func readInto(v *viper.Viper, cfgFile, name string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(name)
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/optiq/")
		v.AddConfigPath("$HOME/.optiq/")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("OPTIQ")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// IterationTimeout derives a time budget from cfg: 50ms per allowed
// iteration, or 0 when MaxIterations is not positive.
func IterationTimeout(cfg *CLIConfig) time.Duration {
	if cfg.MaxIterations <= 0 {
		return 0
	}
	return time.Duration(cfg.MaxIterations) * 50 * time.Millisecond
}
