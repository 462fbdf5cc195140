package domain

import "time"

// RarityRate is one tier's configured emission probability. Rate is kept
// as the decimal string supplied by the administrator (e.g. "0.0300");
// parsing and range checks happen at validation time.
type RarityRate struct {
	Rarity Rarity `json:"rarity"`
	Rate   string `json:"rate"`
}

// PoolEntry associates a character with a campaign's draw pool. Pickup
// entries receive a boosted share of their tier's weight.
type PoolEntry struct {
	CharacterID int64
	Rarity      Rarity
	IsPickup    bool
}

// Gacha is the mutable campaign definition as persisted. It is the input
// to validation; the engine never reads it directly, only the compiled
// snapshot derived from it.
type Gacha struct {
	ID          int64
	Name        string
	Description string
	StartDate   *time.Time // nil means no lower bound
	EndDate     *time.Time // nil means no upper bound
	Rates       []RarityRate
	Pool        []PoolEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActiveAt reports whether the campaign may be pulled at t.
func (g *Gacha) ActiveAt(t time.Time) bool {
	if g.StartDate != nil && t.Before(*g.StartDate) {
		return false
	}
	if g.EndDate != nil && t.After(*g.EndDate) {
		return false
	}
	return true
}
