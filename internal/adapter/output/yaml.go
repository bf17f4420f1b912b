package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats status as YAML.
type YAMLFormatter struct{}

// Format writes the status as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, status Status) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRecord(status)); err != nil {
		return err
	}
	return encoder.Close()
}
