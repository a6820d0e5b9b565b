package config

import (
	"fmt"
	"sort"
	"strings"
)

var (
	supportedLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	supportedFormats = map[string]bool{"console": true, "json": true}
)

// Validate checks the configuration for unsupported values.
func (fc *FileConfig) Validate() error {
	if err := fc.Logging.Validate(); err != nil {
		return err
	}
	return fc.Input.Validate()
}

// Validate checks the logging level and format.
func (l *Logging) Validate() error {
	if !supportedLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("invalid logging level '%s'. Supported levels are: %s", l.Level, keys(supportedLevels))
	}
	if !supportedFormats[strings.ToLower(l.Format)] {
		return fmt.Errorf("invalid logging format '%s'. Supported formats are: %s", l.Format, keys(supportedFormats))
	}
	return nil
}

// Validate checks the throttling parameters.
func (in *Input) Validate() error {
	if in.RatePerSecond < 0 {
		return fmt.Errorf("input.rate_per_second must not be negative, got %v", in.RatePerSecond)
	}
	if in.RatePerSecond > 0 && in.Burst < 1 {
		return fmt.Errorf("input.burst must be at least 1 when throttling is enabled, got %d", in.Burst)
	}
	return nil
}

func keys(m map[string]bool) string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
