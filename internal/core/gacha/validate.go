package gacha

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

// Validation failures. Handlers match these with errors.Is to map them
// to client responses; all of them mean the definition must be re-edited
// before any draw can happen.
var (
	ErrInvalidRate        = errors.New("rate must be a decimal in [0,1]")
	ErrRateSumMismatch    = errors.New("rates must sum to 1.0")
	ErrOrphanPoolEntry    = errors.New("pool entry references a tier with zero rate")
	ErrEmptyTierPool      = errors.New("tier with nonzero rate has no pool entries")
	ErrDuplicatePoolEntry = errors.New("duplicate character in tier pool")
)

const (
	// DefaultRateEpsilon is the tolerance for the rate-sum check.
	DefaultRateEpsilon = 1e-4
	// DefaultFeaturedShare is the aggregate weight share pickup entries
	// split within their tier.
	DefaultFeaturedShare = 0.5
)

// Validator compiles campaign definitions into snapshots. Epsilon bounds
// the rate-sum check; FeaturedShare is the aggregate in-tier weight given
// to pickup entries. Both are game-balance knobs, not constants.
type Validator struct {
	Epsilon       float64
	FeaturedShare float64
}

// NewValidator returns a validator, substituting defaults for
// out-of-range tuning values.
func NewValidator(epsilon, featuredShare float64) *Validator {
	if epsilon <= 0 {
		epsilon = DefaultRateEpsilon
	}
	if featuredShare <= 0 || featuredShare >= 1 {
		featuredShare = DefaultFeaturedShare
	}
	return &Validator{Epsilon: epsilon, FeaturedShare: featuredShare}
}

// Validate checks a campaign definition and compiles it into an
// immutable Snapshot. Checks short-circuit in a fixed order: rate
// parse/range, rate sum, orphaned pool entries, empty tier pools,
// duplicate pool entries. On failure nothing is produced and the
// definition is untouched.
func (v *Validator) Validate(g *domain.Gacha) (*Snapshot, error) {
	rates := make(map[domain.Rarity]float64, len(g.Rates))
	for _, rr := range g.Rates {
		f, err := strconv.ParseFloat(rr.Rate, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > 1 {
			return nil, fmt.Errorf("%w: rarity %d has rate %q", ErrInvalidRate, rr.Rarity, rr.Rate)
		}
		if _, dup := rates[rr.Rarity]; dup {
			return nil, fmt.Errorf("%w: rarity %d configured twice", ErrInvalidRate, rr.Rarity)
		}
		rates[rr.Rarity] = f
	}

	var sum float64
	for _, f := range rates {
		sum += f
	}
	if math.Abs(sum-1.0) > v.Epsilon {
		return nil, fmt.Errorf("%w: got %.6f", ErrRateSumMismatch, sum)
	}

	pools := make(map[domain.Rarity][]domain.PoolEntry)
	for _, e := range g.Pool {
		if rates[e.Rarity] <= 0 {
			return nil, fmt.Errorf("%w: character %d in rarity %d", ErrOrphanPoolEntry, e.CharacterID, e.Rarity)
		}
		pools[e.Rarity] = append(pools[e.Rarity], e)
	}
	for r, f := range rates {
		if f > 0 && len(pools[r]) == 0 {
			return nil, fmt.Errorf("%w: rarity %d", ErrEmptyTierPool, r)
		}
	}
	for r, entries := range pools {
		seen := make(map[int64]bool, len(entries))
		for _, e := range entries {
			if seen[e.CharacterID] {
				return nil, fmt.Errorf("%w: character %d in rarity %d", ErrDuplicatePoolEntry, e.CharacterID, r)
			}
			seen[e.CharacterID] = true
		}
	}

	return v.compile(g, rates, pools), nil
}

// compile builds the cumulative interval tables. Tiers are laid out in
// ascending rarity order; within a tier, pickup entries come first,
// then ascending character id, so the interval layout is deterministic
// for a given definition.
func (v *Validator) compile(g *domain.Gacha, rates map[domain.Rarity]float64, pools map[domain.Rarity][]domain.PoolEntry) *Snapshot {
	order := make([]domain.Rarity, 0, len(rates))
	for r, f := range rates {
		if f > 0 {
			order = append(order, r)
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	snap := &Snapshot{
		gachaID: g.ID,
		version: g.UpdatedAt,
		tiers:   make([]tierSlot, 0, len(order)),
	}
	var cum float64
	for _, r := range order {
		cum += rates[r]
		snap.tiers = append(snap.tiers, tierSlot{
			rarity: r,
			rate:   rates[r],
			hi:     cum,
			pool:   v.compilePool(pools[r]),
		})
	}
	return snap
}

func (v *Validator) compilePool(entries []domain.PoolEntry) []poolSlot {
	sorted := make([]domain.PoolEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].IsPickup != sorted[j].IsPickup {
			return sorted[i].IsPickup
		}
		return sorted[i].CharacterID < sorted[j].CharacterID
	})

	var pickups, others int
	for _, e := range sorted {
		if e.IsPickup {
			pickups++
		} else {
			others++
		}
	}
	// pickup entries split FeaturedShare equally, the rest split the
	// remainder; a tier without one of the groups gives all weight to
	// the other.
	pickupWeight, otherWeight := 0.0, 0.0
	switch {
	case pickups == 0:
		otherWeight = 1.0 / float64(others)
	case others == 0:
		pickupWeight = 1.0 / float64(pickups)
	default:
		pickupWeight = v.FeaturedShare / float64(pickups)
		otherWeight = (1 - v.FeaturedShare) / float64(others)
	}

	pool := make([]poolSlot, 0, len(sorted))
	var cum float64
	for _, e := range sorted {
		if e.IsPickup {
			cum += pickupWeight
		} else {
			cum += otherWeight
		}
		pool = append(pool, poolSlot{characterID: e.CharacterID, pickup: e.IsPickup, hi: cum})
	}
	return pool
}
