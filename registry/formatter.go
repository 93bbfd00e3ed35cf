package registry

import "fmt"

// OutputFormat represents a manifest output format.
type OutputFormat string

const (
	OutputFormatTOML OutputFormat = "toml"
	OutputFormatJSON OutputFormat = "json"
)

func (f OutputFormat) String() string {
	return string(f)
}

// Formatter renders a manifest for output.
type Formatter interface {
	Format(m Manifest) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "toml", "json"
func NewFormatter(format string) (Formatter, error) {
	switch OutputFormat(format) {
	case OutputFormatTOML:
		return &TOMLFormatter{}, nil
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: %s, %s)", format, OutputFormatTOML, OutputFormatJSON)
	}
}
