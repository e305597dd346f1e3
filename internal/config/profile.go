// Package config loads the originator profile and the daemon settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wirasentana/aba-export-service/internal/domain"
)

// originatorProfile mirrors the YAML layout of a profile file
type originatorProfile struct {
	Name        string `yaml:"name"`
	UserID      int    `yaml:"user_id"`
	Bank        string `yaml:"bank"`
	Description string `yaml:"description"`
	Remitter    string `yaml:"remitter"`
}

// LoadProfile reads and validates the originator profile that exported
// documents are stamped with
func LoadProfile(path string) (domain.Originator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Originator{}, fmt.Errorf("reading profile: %w", err)
	}

	var profile originatorProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return domain.Originator{}, fmt.Errorf("parsing profile: %w", err)
	}

	originator := domain.Originator{
		Name:        profile.Name,
		UserID:      profile.UserID,
		Bank:        profile.Bank,
		Description: profile.Description,
		Remitter:    profile.Remitter,
	}

	if err := originator.Validate(); err != nil {
		return domain.Originator{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return originator, nil
}
