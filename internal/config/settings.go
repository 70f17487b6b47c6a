package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings are app-level preferences for the CLI, loaded from an optional
// finutil.yaml and FINUTIL_* environment variables. A missing config file is
// not an error; defaults apply.
type Settings struct {
	OutputFormat string
	ReportDir    string
}

// LoadSettings reads settings from the working directory or
// $HOME/.config/finutil, with environment overrides.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.SetDefault("output_format", "console")
	v.SetDefault("report_dir", ".")

	v.SetConfigName("finutil")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/finutil")

	v.SetEnvPrefix("FINUTIL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	// Read keys individually: Get honors environment overrides where a
	// struct unmarshal would not.
	return &Settings{
		OutputFormat: v.GetString("output_format"),
		ReportDir:    v.GetString("report_dir"),
	}, nil
}
