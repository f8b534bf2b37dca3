package scheduler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a schedule file:
//
//	times:
//	  - "10:00"
//	  - "20:00"
//	interval_hours: 6
//	style: suprematist
//	format: portrait
type fileConfig struct {
	Times         []string `yaml:"times"`
	IntervalHours int      `yaml:"interval_hours"`
	Style         string   `yaml:"style"`
	Format        string   `yaml:"format"`
}

// LoadConfig reads a schedule from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scheduler: read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("scheduler: parse config: %w", err)
	}

	times, err := ParseTimes(fc.Times)
	if err != nil {
		return Config{}, err
	}
	if fc.IntervalHours < 0 {
		return Config{}, fmt.Errorf("scheduler: interval_hours must not be negative")
	}

	return Config{
		Times:         times,
		IntervalHours: fc.IntervalHours,
		Style:         fc.Style,
		Format:        fc.Format,
	}, nil
}
