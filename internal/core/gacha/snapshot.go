package gacha

import (
	"time"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

// Snapshot is the immutable compiled form of a campaign definition. It
// holds the tier rate table as cumulative [lo,hi) bounds over [0,1) and
// one weighted pool per tier. Snapshots are safe to share across
// concurrent draws; an edited campaign compiles to a new snapshot and
// in-flight draws keep the one they were handed.
type Snapshot struct {
	gachaID int64
	version time.Time // UpdatedAt of the definition this was compiled from
	tiers   []tierSlot
}

type tierSlot struct {
	rarity domain.Rarity
	rate   float64
	hi     float64 // cumulative upper bound of this tier's interval
	pool   []poolSlot
}

type poolSlot struct {
	characterID int64
	pickup      bool
	hi          float64 // cumulative upper bound within the tier, in (0,1]
}

// GachaID returns the id of the campaign this snapshot was compiled from.
func (s *Snapshot) GachaID() int64 { return s.gachaID }

// Version returns the definition UpdatedAt captured at compile time.
// A campaign edit bumps UpdatedAt, so (GachaID, Version) identifies one
// compiled generation.
func (s *Snapshot) Version() time.Time { return s.version }

// TierRate returns the configured rate for a tier, or 0 if the tier is
// not drawable in this snapshot.
func (s *Snapshot) TierRate(r domain.Rarity) float64 {
	for i := range s.tiers {
		if s.tiers[i].rarity == r {
			return s.tiers[i].rate
		}
	}
	return 0
}

// PoolSize returns the number of entries in a tier's pool.
func (s *Snapshot) PoolSize(r domain.Rarity) int {
	for i := range s.tiers {
		if s.tiers[i].rarity == r {
			return len(s.tiers[i].pool)
		}
	}
	return 0
}
