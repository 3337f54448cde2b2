// Package config loads rule-level overrides for the validator from a
// YAML file, adapted from the teacher's package.yml manifest loader
// (§4.4, §4.8): open, strict-decode, normalize, validate.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"wollokvalidate/pkg/validator"
)

// ValidationError aggregates every problem found while loading a rule
// config file, mirroring the manifest loader's all-issues-at-once shape
// rather than failing on the first bad entry.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid rule configuration"
	}
	var b strings.Builder
	b.WriteString("rule configuration is invalid:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type ruleOverrideYAML struct {
	Disabled bool   `yaml:"disabled"`
	Level    string `yaml:"level"`
}

type ruleConfigFile struct {
	Rules map[string]ruleOverrideYAML `yaml:"rules"`
}

// Load parses a rule-overrides YAML file into a validator.Overrides map
// keyed by rule code. An empty or missing "level" leaves the rule's
// own default Level untouched by the driver (§4.4).
func Load(path string) (validator.Overrides, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw ruleConfigFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return validator.Overrides{}, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	overrides, verr := raw.toOverrides()
	if verr != nil {
		return nil, verr
	}
	return overrides, nil
}

func (rf ruleConfigFile) toOverrides() (validator.Overrides, *ValidationError) {
	var errs ValidationError
	out := make(validator.Overrides, len(rf.Rules))
	for code, entry := range rf.Rules {
		code = strings.TrimSpace(code)
		if code == "" {
			errs.Issues = append(errs.Issues, "rule codes must not be empty")
			continue
		}
		override := validator.Override{Disabled: entry.Disabled}
		level := strings.TrimSpace(strings.ToLower(entry.Level))
		switch level {
		case "":
			// Level left unset: the driver keeps the rule's own default.
		case "warning":
			override.Level = validator.Warning
		case "error":
			override.Level = validator.Error
		default:
			errs.Issues = append(errs.Issues, fmt.Sprintf("rules.%s: unsupported level %q (want \"warning\" or \"error\")", code, entry.Level))
			continue
		}
		out[code] = override
	}
	if len(errs.Issues) > 0 {
		return nil, &errs
	}
	return out, nil
}
