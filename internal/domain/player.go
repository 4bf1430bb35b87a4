package domain

// Player is the per-player ledger record. The JSON field names are the save
// file format, so they must stay stable.
type Player struct {
	ID           string         `json:"-"`
	Money        int            `json:"money"`
	Items        map[string]int `json:"items"`
	CurrentRod   string         `json:"current_rod"`
	FishCaught   map[string]int `json:"fish_caught"`
	TotalCatches int            `json:"total_catches"`
	TotalCasts   int            `json:"total_casts,omitempty"`
}

// NewPlayer returns a record in the fresh-start state.
func NewPlayer(id, starterRod string) *Player {
	return &Player{
		ID:         id,
		Money:      StartingMoney,
		Items:      map[string]int{starterRod: 1},
		CurrentRod: starterRod,
		FishCaught: map[string]int{},
	}
}

// Clone returns a deep copy so callers never share maps with a store.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Items = make(map[string]int, len(p.Items))
	for k, v := range p.Items {
		out.Items[k] = v
	}
	out.FishCaught = make(map[string]int, len(p.FishCaught))
	for k, v := range p.FishCaught {
		out.FishCaught[k] = v
	}
	return &out
}

// Count returns how many of an item the player holds (absence is zero).
func (p *Player) Count(item string) int {
	return p.Items[item]
}

// HasEquippedRod reports whether the equipped rod is actually in the inventory.
func (p *Player) HasEquippedRod() bool {
	return p.CurrentRod != "" && p.Items[p.CurrentRod] >= 1
}

// AddItem increments an inventory count.
func (p *Player) AddItem(item string, n int) {
	if p.Items == nil {
		p.Items = map[string]int{}
	}
	p.Items[item] += n
}

// ConsumeItem removes one unit of item, deleting the entry when it hits zero.
// It reports false and changes nothing if none are held.
func (p *Player) ConsumeItem(item string) bool {
	if p.Items[item] <= 0 {
		return false
	}
	p.Items[item]--
	if p.Items[item] <= 0 {
		delete(p.Items, item)
	}
	return true
}

// ItemTotal is the sum of every inventory count.
func (p *Player) ItemTotal() int {
	total := 0
	for _, n := range p.Items {
		total += n
	}
	return total
}
