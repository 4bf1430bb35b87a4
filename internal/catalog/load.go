package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// File is the on-disk catalog layout.
type File struct {
	Items       []domain.Item               `yaml:"items"`
	RarityRates map[string]float64          `yaml:"rarity_rates"`
	Species     map[string][]domain.Species `yaml:"species"`
}

// Load reads a YAML catalog. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing catalog: %w", domain.ErrInvalidCatalog, err)
	}

	rates := make(map[domain.Rarity]float64, len(f.RarityRates))
	for name, w := range f.RarityRates {
		r, err := domain.ParseRarity(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		rates[r] = w
	}

	species := make(map[domain.Rarity][]domain.Species, len(f.Species))
	for name, list := range f.Species {
		r, err := domain.ParseRarity(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		species[r] = list
	}

	return New(f.Items, rates, species)
}
