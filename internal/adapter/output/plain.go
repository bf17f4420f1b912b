package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PlainFormatter formats status as human-readable lines.
type PlainFormatter struct {
	// Now is used for relative times; defaults to time.Now.
	Now func() time.Time
}

// Format writes one "label: value" line per field.
func (f *PlainFormatter) Format(w io.Writer, status Status) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Theme: %s\n", status.Applied)
	fmt.Fprintf(&sb, "  Stored: %s\n", status.Stored)

	source := status.System.Source
	if source == "" {
		source = "none"
	}
	fmt.Fprintf(&sb, "  System prefers dark: %t (source: %s)\n", status.System.PrefersDark, source)

	if status.StatePath != "" {
		fmt.Fprintf(&sb, "  State file: %s\n", status.StatePath)
	}

	if t := status.LastTransition; t != nil {
		from := t.From
		if from == "" {
			from = "unset"
		}
		fmt.Fprintf(&sb, "  Last change: %s -> %s, %s\n", from, t.To, f.relative(t.Timestamp))
		if t.Source != "" {
			fmt.Fprintf(&sb, "  Source: %s\n", t.Source)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *PlainFormatter) relative(timestamp int64) string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	return humanize.RelTime(time.Unix(timestamp, 0), now(), "ago", "from now")
}
