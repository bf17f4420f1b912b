// Package output provides output formatters for theme status.
package output

import (
	"io"

	"github.com/jmylchreest/darktheme/internal/model"
	"github.com/jmylchreest/darktheme/internal/store"
	"github.com/jmylchreest/darktheme/internal/system"
)

// Status is a snapshot of the stored, detected and applied theme.
type Status struct {
	Stored         model.Theme
	System         system.Preference
	Applied        model.Theme
	StatePath      string
	LastTransition *store.Transition
}

// Formatter formats a status for output.
type Formatter interface {
	Format(w io.Writer, status Status) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatPlain:
		fallthrough
	default:
		return &PlainFormatter{}
	}
}

// record is the serialised form shared by the JSON and YAML formatters.
type record struct {
	Stored         string            `json:"stored" yaml:"stored"`
	Applied        string            `json:"applied" yaml:"applied"`
	System         system.Preference `json:"system" yaml:"system"`
	StatePath      string            `json:"state_path,omitempty" yaml:"state_path,omitempty"`
	LastTransition *transitionRecord `json:"last_transition,omitempty" yaml:"last_transition,omitempty"`
}

type transitionRecord struct {
	ID        string `json:"id" yaml:"id"`
	From      string `json:"from,omitempty" yaml:"from,omitempty"`
	To        string `json:"to" yaml:"to"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
}

func toRecord(s Status) record {
	r := record{
		Stored:    s.Stored.String(),
		Applied:   s.Applied.String(),
		System:    s.System,
		StatePath: s.StatePath,
	}
	if t := s.LastTransition; t != nil {
		r.LastTransition = &transitionRecord{
			ID:        t.ID,
			From:      t.From,
			To:        t.To,
			Source:    t.Source,
			Timestamp: t.Timestamp,
		}
	}
	return r
}
