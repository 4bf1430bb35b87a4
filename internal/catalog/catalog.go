// Package catalog holds the static game data: shop equipment, the base
// rarity table, and the species that live in each tier. A Catalog is
// read-only after construction and safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// Catalog is the immutable equipment, rarity and species table.
type Catalog struct {
	items      map[string]domain.Item
	order      []string
	byNorm     map[string]string
	starter    string
	rates      map[domain.Rarity]float64
	species    map[domain.Rarity][]domain.Species
	bySpecies  map[string]domain.Species
	consumable []string
}

var validate = validator.New()

// New validates and assembles a catalog. Rarity rates are normalized so the
// at-rest table sums to exactly 1.0; ratios between tiers are preserved.
func New(items []domain.Item, rates map[domain.Rarity]float64, species map[domain.Rarity][]domain.Species) (*Catalog, error) {
	c := &Catalog{
		items:     make(map[string]domain.Item, len(items)),
		byNorm:    make(map[string]string, len(items)),
		rates:     make(map[domain.Rarity]float64, len(domain.Rarities)),
		species:   make(map[domain.Rarity][]domain.Species, len(domain.Rarities)),
		bySpecies: make(map[string]domain.Species),
	}

	var errs []error
	for idx, it := range items {
		if err := validate.Struct(it); err != nil {
			errs = append(errs, fmt.Errorf("item %d (%q): %w", idx, it.Name, err))
			continue
		}
		norm := NormalizeName(it.Name)
		if _, dup := c.byNorm[norm]; dup {
			errs = append(errs, fmt.Errorf("duplicate item name %q", it.Name))
			continue
		}
		if it.Starter {
			if !it.IsRod() {
				errs = append(errs, fmt.Errorf("starter item %q must be a rod", it.Name))
				continue
			}
			if c.starter != "" {
				errs = append(errs, fmt.Errorf("more than one starter rod: %q and %q", c.starter, it.Name))
				continue
			}
			c.starter = it.Name
		}
		c.items[it.Name] = it
		c.byNorm[norm] = it.Name
		c.order = append(c.order, it.Name)
		if it.IsConsumable() {
			c.consumable = append(c.consumable, it.Name)
		}
	}
	if c.starter == "" {
		errs = append(errs, errors.New("catalog needs exactly one starter rod"))
	}

	total := 0.0
	for r, w := range rates {
		if !r.Valid() {
			errs = append(errs, fmt.Errorf("unknown rarity %q", r))
			continue
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			errs = append(errs, fmt.Errorf("rarity %q has invalid weight %v", r, w))
			continue
		}
		total += w
	}
	if total <= 0 {
		errs = append(errs, errors.New("rarity weights must sum to more than zero"))
	}

	for r, list := range species {
		if !r.Valid() {
			errs = append(errs, fmt.Errorf("species listed under unknown rarity %q", r))
			continue
		}
		for _, sp := range list {
			sp.Rarity = r
			if err := validate.Struct(sp); err != nil {
				errs = append(errs, fmt.Errorf("species %q: %w", sp.Name, err))
				continue
			}
			if _, dup := c.bySpecies[sp.Name]; dup {
				errs = append(errs, fmt.Errorf("species %q belongs to more than one tier", sp.Name))
				continue
			}
			c.bySpecies[sp.Name] = sp
			c.species[r] = append(c.species[r], sp)
		}
	}
	if len(c.species[domain.RarityCommon]) == 0 {
		errs = append(errs, errors.New("common tier needs at least one species"))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
	}

	for _, r := range domain.Rarities {
		c.rates[r] = rates[r] / total
	}
	return c, nil
}

// Item returns an item by its canonical name.
func (c *Catalog) Item(name string) (domain.Item, bool) {
	it, ok := c.items[name]
	return it, ok
}

// Lookup resolves free-form player input to a catalog item by normalized
// exact match. The error carries a spelling suggestion when one is close.
func (c *Catalog) Lookup(input string) (domain.Item, error) {
	if name, ok := c.byNorm[NormalizeName(input)]; ok {
		return c.items[name], nil
	}
	if s := closest(input, c.order); s != "" {
		return domain.Item{}, fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrItemNotFound, input, s)
	}
	return domain.Item{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, input)
}

// Suggest returns the item name closest to input, or "".
func (c *Catalog) Suggest(input string) string {
	return closest(input, c.order)
}

// Starter returns the free rod every new player receives.
func (c *Catalog) Starter() domain.Item {
	return c.items[c.starter]
}

// Items returns every item in declaration order.
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

// Shop returns the purchasable items (everything except the starter rod).
func (c *Catalog) Shop() []domain.Item {
	out := make([]domain.Item, 0, len(c.order))
	for _, name := range c.order {
		if it := c.items[name]; !it.Starter {
			out = append(out, it)
		}
	}
	return out
}

// Consumables lists consumable item names in declaration order.
func (c *Catalog) Consumables() []string {
	out := make([]string, len(c.consumable))
	copy(out, c.consumable)
	return out
}

// BaseRates returns a copy of the normalized base rarity table.
func (c *Catalog) BaseRates() map[domain.Rarity]float64 {
	out := make(map[domain.Rarity]float64, len(c.rates))
	for r, w := range c.rates {
		out[r] = w
	}
	return out
}

// Species returns the species of a tier.
func (c *Catalog) Species(r domain.Rarity) []domain.Species {
	list := c.species[r]
	out := make([]domain.Species, len(list))
	copy(out, list)
	return out
}

// SpeciesByName finds a species and its tier.
func (c *Catalog) SpeciesByName(name string) (domain.Species, bool) {
	sp, ok := c.bySpecies[name]
	return sp, ok
}
