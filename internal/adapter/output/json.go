package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats status as JSON.
type JSONFormatter struct{}

// Format writes the status as an indented JSON object.
func (f *JSONFormatter) Format(w io.Writer, status Status) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toRecord(status))
}
