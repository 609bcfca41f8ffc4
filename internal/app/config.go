package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs       []string // .zip archives or directories holding them
	ConfigPath   string   // hcl report settings
	OutputPath   string
	TemplatePath string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("Inputs is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
