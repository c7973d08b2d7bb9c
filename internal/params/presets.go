package params

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Presets maps a preset name to the parameter values it applies. Presets
// are partial: keys not named by a preset keep their current value.
type Presets map[string]map[string]string

// LoadPresets reads named parameter presets from a YAML file. A missing
// file yields an empty set; a malformed file is an error the caller can
// report at startup.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Presets{}, nil
		}
		return nil, fmt.Errorf("params: read presets: %w", err)
	}

	var presets Presets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("params: parse presets: %w", err)
	}
	if presets == nil {
		presets = Presets{}
	}
	return presets, nil
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply merges the named preset into the store through its mutation path.
// An unknown preset name is a no-op.
func (p Presets) Apply(name string, store *Store) {
	values, ok := p[name]
	if !ok {
		return
	}
	store.Merge(values)
}
