package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile describes a stress run. Every field can be overridden by a flag.
type Profile struct {
	Duration      time.Duration `yaml:"duration"`
	Scopes        int           `yaml:"scopes"`
	HooksPerScope int           `yaml:"hooks_per_scope"`
	// Churn is the fraction of scopes unmounted and remounted every frame.
	Churn          float64 `yaml:"churn"`
	GCPauseMetrics bool    `yaml:"gc_pause_metrics"`
}

// DefaultProfile returns the profile used when no file is given.
func DefaultProfile() Profile {
	return Profile{
		Duration:      10 * time.Second,
		Scopes:        1000,
		HooksPerScope: 8,
		Churn:         0.01,
	}
}

// LoadProfile reads a YAML profile on top of the defaults. A missing file
// yields the defaults.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profile, nil
		}
		return profile, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return profile, profile.Validate()
}

// Validate reports the first invalid field.
func (p Profile) Validate() error {
	switch {
	case p.Duration <= 0:
		return fmt.Errorf("duration must be positive, got %s", p.Duration)
	case p.Scopes <= 0:
		return fmt.Errorf("scopes must be positive, got %d", p.Scopes)
	case p.HooksPerScope <= 0:
		return fmt.Errorf("hooks_per_scope must be positive, got %d", p.HooksPerScope)
	case p.Churn < 0 || p.Churn > 1:
		return fmt.Errorf("churn must be between 0 and 1, got %g", p.Churn)
	}
	return nil
}
