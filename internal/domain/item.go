package domain

// ItemCategory distinguishes rods, which stay equipped, from consumables,
// which are spent one unit per cast.
type ItemCategory string

const (
	CategoryRod        ItemCategory = "rod"
	CategoryConsumable ItemCategory = "consumable"
)

// Item is a piece of fishing equipment from the shop catalog.
// Items are immutable after the catalog is loaded and shared by every player.
type Item struct {
	Name        string       `json:"name" yaml:"name" validate:"required"`
	Price       int          `json:"price" yaml:"price" validate:"min=0"`
	CatchBonus  float64      `json:"catch_bonus" yaml:"catch_bonus" validate:"min=0"` // multiplier, 1.0 is neutral
	RareBonus   float64      `json:"rare_bonus" yaml:"rare_bonus" validate:"min=0"`   // additive
	Description string       `json:"description" yaml:"description"`
	Category    ItemCategory `json:"category" yaml:"category" validate:"required,oneof=rod consumable"`
	Starter     bool         `json:"starter,omitempty" yaml:"starter"` // free rod every player begins with; never sold
}

// IsRod reports whether the item can be equipped.
func (i Item) IsRod() bool {
	return i.Category == CategoryRod
}

// IsConsumable reports whether the item is spent on use.
func (i Item) IsConsumable() bool {
	return i.Category == CategoryConsumable
}
