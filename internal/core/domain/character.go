package domain

import "time"

// Rarity is the ordinal tier of a character, from common to ultra rare.
// Tier ordering is total: a higher value is rarer.
type Rarity int

const (
	RarityN   Rarity = 1
	RarityR   Rarity = 2
	RaritySR  Rarity = 3
	RaritySSR Rarity = 4
	RarityUR  Rarity = 5
)

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool {
	return r >= RarityN && r <= RarityUR
}

// Character is a catalog entry. The draw engine only reads ID and Rarity;
// the remaining fields exist for the catalog CRUD surface.
type Character struct {
	ID          int64
	Name        string
	Description string
	Rarity      Rarity
	Attribute   string // fire, water, wind, light, dark, none
	HP          int
	ATK         int
	AGI         int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
