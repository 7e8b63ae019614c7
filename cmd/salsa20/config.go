package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's optional settings, loaded from a YAML file so a
// user doesn't have to pass the history log and trace output paths on
// every invocation. All fields are optional.
type Config struct {
	// HistoryLogPath, if set, is where --history appends NDJSON records.
	// If empty, --history records nothing.
	HistoryLogPath string `yaml:"history_log_path"`

	// TraceOutputPath, if set, is the file the trace subcommand writes its
	// report to (NDJSON with --ndjson, formatted text otherwise). If empty,
	// the report goes to standard output.
	TraceOutputPath string `yaml:"trace_output_path"`
}

// loadConfig reads a YAML config file. A missing file is not an error -
// it just means every field defaults to its zero value.
func loadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
