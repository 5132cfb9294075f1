/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the RoughRules commands. Provides configuration
loading, logging setup and the induction configuration built from viper.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/roughrules/pkg/engine"
	"github.com/kleascm/roughrules/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	setDefaults()

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// ROUGHRULES_LOG_LEVEL, ROUGHRULES_ALGORITHM, ...
	viper.SetEnvPrefix("ROUGHRULES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return nil
}

func setDefaults() {
	viper.SetDefault("log_level", string(logging.LogLevelInfo))
	viper.SetDefault("log_format", string(logging.LogFormatInduction))
	viper.SetDefault("log_max_files", 10)
	viper.SetDefault("algorithm", "covering")
	viper.SetDefault("format", "text")
	viper.SetDefault("title", "Decision rules")
}

// SetupLogging configures the logging system
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(strings.ToLower(viper.GetString("log_level"))),
		Format:    logging.LogFormat(strings.ToLower(viper.GetString("log_format"))),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Colors:    !viper.GetBool("no_color"),
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}
	return logger, nil
}

// createInductionConfig builds the engine configuration from viper
func createInductionConfig() *engine.Config {
	return &engine.Config{
		InputPath: viper.GetString("input"),
		Algorithm: viper.GetString("algorithm"),
		Strict:    viper.GetBool("strict"),
	}
}
