package system

import (
	"context"
	"os/exec"
	"strings"
)

// GSettingsDetector reads the GNOME color-scheme key via gsettings.
type GSettingsDetector struct {
	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewGSettingsDetector creates a detector that shells out to gsettings.
func NewGSettingsDetector() *GSettingsDetector {
	return &GSettingsDetector{
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Name implements Detector.
func (g *GSettingsDetector) Name() string {
	return "gsettings"
}

// Detect implements Detector.
func (g *GSettingsDetector) Detect(ctx context.Context) (bool, bool) {
	out, err := g.run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, false
	}
	return parseGSettingsColorScheme(string(out))
}

// parseGSettingsColorScheme maps 'prefer-dark', 'prefer-light' and 'default'.
// 'default' counts as an answer: GNOME's default scheme is light.
func parseGSettingsColorScheme(out string) (bool, bool) {
	value := strings.Trim(strings.TrimSpace(out), "'\"")
	switch value {
	case "prefer-dark":
		return true, true
	case "prefer-light", "default":
		return false, true
	default:
		return false, false
	}
}
