package system

import (
	"context"
	"os"
	"strings"
)

// EnvVar overrides the detected system preference when set.
const EnvVar = "DARKTHEME_PREFERS_DARK"

// EnvDetector reads the preference from an environment variable.
type EnvDetector struct {
	name   string
	lookup func(string) (string, bool)
}

// NewEnvDetector creates a detector reading the named variable.
func NewEnvDetector(name string) *EnvDetector {
	return &EnvDetector{name: name, lookup: os.LookupEnv}
}

// Name implements Detector.
func (e *EnvDetector) Name() string {
	return "env"
}

// Detect implements Detector. Unset or unrecognised values give no answer.
func (e *EnvDetector) Detect(context.Context) (bool, bool) {
	v, ok := e.lookup(e.name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "dark":
		return true, true
	case "0", "false", "no", "light":
		return false, true
	default:
		return false, false
	}
}
