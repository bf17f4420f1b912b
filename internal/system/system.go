package system

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout bounds each detector call.
const DefaultTimeout = 2 * time.Second

// Detector reports the system color-scheme preference.
type Detector interface {
	// Name returns a short identifier used in logs and status output.
	Name() string

	// Detect returns whether dark is preferred and whether the detector
	// could answer at all.
	Detect(ctx context.Context) (prefersDark bool, ok bool)
}

// Preference is the resolved system preference.
type Preference struct {
	PrefersDark bool   `json:"prefers_dark" yaml:"prefers_dark"`
	Source      string `json:"source" yaml:"source"` // Empty when no detector answered
}

// Querier runs detectors in order.
type Querier struct {
	detectors []Detector
	timeout   time.Duration
	logger    *slog.Logger
}

// NewQuerier creates a querier over the given detectors.
func NewQuerier(logger *slog.Logger, timeout time.Duration, detectors ...Detector) *Querier {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Querier{
		detectors: detectors,
		timeout:   timeout,
		logger:    logger,
	}
}

// Query returns the first answer from the configured detectors.
// When none answers, dark is not preferred.
func (q *Querier) Query(ctx context.Context) Preference {
	for _, d := range q.detectors {
		dctx, cancel := context.WithTimeout(ctx, q.timeout)
		prefersDark, ok := d.Detect(dctx)
		cancel()

		if !ok {
			q.logger.Debug("system preference detector gave no answer", "detector", d.Name())
			continue
		}
		q.logger.Debug("system preference detected", "detector", d.Name(), "prefers_dark", prefersDark)
		return Preference{PrefersDark: prefersDark, Source: d.Name()}
	}
	return Preference{}
}

// Names returns the detector names in query order.
func (q *Querier) Names() []string {
	names := make([]string, 0, len(q.detectors))
	for _, d := range q.detectors {
		names = append(names, d.Name())
	}
	return names
}

// DefaultDetectorNames is the detector order used when none is configured.
var DefaultDetectorNames = []string{"env", "portal", "gsettings"}

// NewDetector creates a detector by name.
func NewDetector(name string, logger *slog.Logger) (Detector, error) {
	switch name {
	case "env":
		return NewEnvDetector(EnvVar), nil
	case "portal":
		return NewPortalDetector(logger), nil
	case "gsettings":
		return NewGSettingsDetector(), nil
	case "terminal":
		return NewTerminalDetector(), nil
	default:
		return nil, fmt.Errorf("unknown system preference detector: %q", name)
	}
}

// NewDetectors creates detectors for the given names, in order.
func NewDetectors(names []string, logger *slog.Logger) ([]Detector, error) {
	detectors := make([]Detector, 0, len(names))
	for _, name := range names {
		d, err := NewDetector(name, logger)
		if err != nil {
			return nil, err
		}
		detectors = append(detectors, d)
	}
	return detectors, nil
}

// StaticDetector always returns a fixed preference.
type StaticDetector struct {
	PrefersDark bool
	Label       string
}

// NewStaticDetector creates a detector that always answers prefersDark.
func NewStaticDetector(prefersDark bool) *StaticDetector {
	return &StaticDetector{PrefersDark: prefersDark, Label: "static"}
}

// Name implements Detector.
func (s *StaticDetector) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

// Detect implements Detector.
func (s *StaticDetector) Detect(context.Context) (bool, bool) {
	return s.PrefersDark, true
}
