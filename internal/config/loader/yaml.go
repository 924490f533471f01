package loader

import (
	"gopkg.in/yaml.v3"
)

// parseYAML parses YAML data into a map. An empty document yields an empty
// map.
func parseYAML(source string, data []byte) (map[string]any, error) {
	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	if config == nil {
		config = map[string]any{}
	}

	return config, nil
}
