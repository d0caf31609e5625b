package shimconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"scriptshim/internal/core/domain/profile"
	"scriptshim/internal/core/ports"
)

// YAMLProvider implements the ProfileProvider interface by reading the
// launcher profile from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file holding profile overrides.
func NewYAMLProvider(filePath string) (ports.ProfileProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// Profile reads and parses the profile from the configured YAML file.
// A missing or empty file yields the default profile and no error; the
// file only needs to state the fields it overrides.
func (p *YAMLProvider) Profile() (profile.Profile, error) {
	prof := profile.Default()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No file means stock behavior, not a broken launcher.
			return prof, nil
		}
		return prof, fmt.Errorf("failed to read profile file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return prof, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	err = decoder.Decode(&prof)
	if err != nil {
		// A file with only comments or a bare document marker decodes
		// to EOF; treat it like an empty file.
		if errors.Is(err, io.EOF) {
			return prof, nil
		}
		return profile.Default(), fmt.Errorf("failed to unmarshal profile from %s: %w", p.filePath, err)
	}

	return prof, nil
}
