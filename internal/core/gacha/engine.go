package gacha

import (
	"errors"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

var (
	// ErrInvalidPullCount is a caller mistake; no draw happens.
	ErrInvalidPullCount = errors.New("pull count must be >= 1")
	// ErrEngineMisconfigured means a snapshot with no drawable tiers
	// reached the engine. The validator makes this unreachable, so it
	// indicates a bug, not bad user input.
	ErrEngineMisconfigured = errors.New("snapshot has no drawable tiers")
)

// Draw performs count independent draws against a compiled snapshot and
// returns the results in draw order. Each draw picks a tier from the
// rate table, then a character from that tier's weighted pool. Both
// picks map a uniform value into contiguous [lo,hi) intervals: a value
// exactly on a boundary belongs to the next interval, so no slot is
// unreachable. Draws are with replacement; the same character may
// repeat within a batch.
//
// Draw is a pure function of its arguments. The caller owns the random
// source, which makes batches replayable with a seeded source.
func Draw(snap *Snapshot, count int, rng RandomSource) ([]domain.DrawResult, error) {
	if count < 1 {
		return nil, ErrInvalidPullCount
	}
	if snap == nil || len(snap.tiers) == 0 {
		return nil, ErrEngineMisconfigured
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	results := make([]domain.DrawResult, 0, count)
	for i := 0; i < count; i++ {
		results = append(results, drawOne(snap, rng))
	}
	return results, nil
}

func drawOne(snap *Snapshot, rng RandomSource) domain.DrawResult {
	tier := &snap.tiers[pickInterval(rng.Float64(), len(snap.tiers), func(i int) float64 {
		return snap.tiers[i].hi
	})]
	slot := &tier.pool[pickInterval(rng.Float64(), len(tier.pool), func(i int) float64 {
		return tier.pool[i].hi
	})]
	return domain.DrawResult{CharacterID: slot.characterID, Rarity: tier.rarity}
}

// pickInterval finds the first slot whose cumulative upper bound exceeds
// u. Bounds are half-open on the right, so u == hi falls through to the
// next slot. A u past the final bound (float slack within the rate-sum
// epsilon) lands in the last slot.
func pickInterval(u float64, n int, hi func(int) float64) int {
	for i := 0; i < n-1; i++ {
		if u < hi(i) {
			return i
		}
	}
	return n - 1
}
