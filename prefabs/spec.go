package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpecInto decodes a prefab file over dst. Keys missing from the file
// keep whatever dst already holds.
func LoadSpecInto[T any](filename string, dst *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}
