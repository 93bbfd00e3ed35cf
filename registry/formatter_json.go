package registry

import "encoding/json"

// JSONFormatter renders manifests as JSON.
type JSONFormatter struct{}

// Format converts the manifest to indented JSON.
func (f *JSONFormatter) Format(m Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
