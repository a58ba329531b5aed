package version

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ReadManifestVersion returns the top-level "version" field of a JSON
// (package.json) or YAML (Chart.yaml, pubspec.yaml) manifest.
func ReadManifestVersion(data []byte) (string, error) {
	var doc map[string]any

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return "", fmt.Errorf("parsing json manifest: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return "", fmt.Errorf("parsing yaml manifest: %w", err)
		}
	}

	raw, ok := doc["version"]
	if !ok || raw == nil {
		return "", ErrNoVersion
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			return "", ErrNoVersion
		}
		return v, nil
	case map[string]any, []any:
		return "", fmt.Errorf("%w: version field is not a scalar", ErrNoVersion)
	default:
		// YAML decodes an unquoted `version: 1.2` as a float.
		return fmt.Sprint(v), nil
	}
}
