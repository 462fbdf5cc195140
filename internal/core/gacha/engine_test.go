package gacha

import (
	"errors"
	"math"
	"testing"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

// seqRNG replays a fixed sequence of uniforms, one per call.
type seqRNG struct {
	vals []float64
	i    int
}

func (s *seqRNG) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func mustSnapshot(t *testing.T, def *domain.Gacha) *Snapshot {
	t.Helper()
	snap, err := NewValidator(0, 0).Validate(def)
	if err != nil {
		t.Fatalf("compile snapshot: %v", err)
	}
	return snap
}

func TestDrawInvalidPullCount(t *testing.T) {
	snap := mustSnapshot(t, testDefinition())
	for _, n := range []int{0, -1} {
		if _, err := Draw(snap, n, NewSeededRNG(1)); !errors.Is(err, ErrInvalidPullCount) {
			t.Fatalf("count=%d: want ErrInvalidPullCount, got %v", n, err)
		}
	}
}

func TestDrawEmptySnapshot(t *testing.T) {
	if _, err := Draw(&Snapshot{}, 1, NewSeededRNG(1)); !errors.Is(err, ErrEngineMisconfigured) {
		t.Fatalf("want ErrEngineMisconfigured, got %v", err)
	}
	if _, err := Draw(nil, 1, NewSeededRNG(1)); !errors.Is(err, ErrEngineMisconfigured) {
		t.Fatalf("nil snapshot: want ErrEngineMisconfigured, got %v", err)
	}
}

// Tier intervals are [lo,hi): with rates {N:0.5, R:0.5} a uniform of
// exactly 0.5 belongs to R, and 0.0 to N.
func TestDrawTierBoundary(t *testing.T) {
	def := &domain.Gacha{
		Rates: []domain.RarityRate{
			{Rarity: domain.RarityN, Rate: "0.5"},
			{Rarity: domain.RarityR, Rate: "0.5"},
		},
		Pool: []domain.PoolEntry{
			{CharacterID: 1, Rarity: domain.RarityN},
			{CharacterID: 2, Rarity: domain.RarityR},
		},
	}
	snap := mustSnapshot(t, def)

	// one value for the tier pick, one for the in-tier pick
	res, err := Draw(snap, 1, &seqRNG{vals: []float64{0.5, 0.0}})
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Rarity != domain.RarityR {
		t.Fatalf("u=0.5 selected tier %d, want R", res[0].Rarity)
	}

	res, err = Draw(snap, 1, &seqRNG{vals: []float64{0.0, 0.0}})
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Rarity != domain.RarityN {
		t.Fatalf("u=0.0 selected tier %d, want N", res[0].Rarity)
	}
}

func TestDrawNeverHitsZeroRateTier(t *testing.T) {
	def := testDefinition()
	def.Rates = append(def.Rates, domain.RarityRate{Rarity: domain.RarityUR, Rate: "0.0000"})
	snap := mustSnapshot(t, def)

	rng := NewSeededRNG(7)
	res, err := Draw(snap, 10000, rng)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range res {
		if snap.TierRate(r.Rarity) <= 0 {
			t.Fatalf("drew character %d from zero-rate tier %d", r.CharacterID, r.Rarity)
		}
	}
}

func TestDrawTierConvergence(t *testing.T) {
	snap := mustSnapshot(t, testDefinition()) // rates 0.9 / 0.09 / 0.01
	const n = 100000

	rng := NewSeededRNG(42)
	res, err := Draw(snap, n, rng)
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[domain.Rarity]int)
	for _, r := range res {
		counts[r.Rarity]++
	}
	want := map[domain.Rarity]float64{
		domain.RarityN:  0.90,
		domain.RarityR:  0.09,
		domain.RaritySR: 0.01,
	}
	for rarity, p := range want {
		freq := float64(counts[rarity]) / n
		if math.Abs(freq-p) > 0.005 {
			t.Fatalf("tier %d freq %.4f not within 0.5%% of %.2f", rarity, freq, p)
		}
	}
}

func TestDrawFeaturedShare(t *testing.T) {
	// single tier with one pickup and three regular entries: with the
	// default 0.5 share, pickup ~0.5, each regular ~1/6
	def := &domain.Gacha{
		Rates: []domain.RarityRate{{Rarity: domain.RaritySSR, Rate: "1.0"}},
		Pool: []domain.PoolEntry{
			{CharacterID: 1, Rarity: domain.RaritySSR, IsPickup: true},
			{CharacterID: 2, Rarity: domain.RaritySSR},
			{CharacterID: 3, Rarity: domain.RaritySSR},
			{CharacterID: 4, Rarity: domain.RaritySSR},
		},
	}
	snap := mustSnapshot(t, def)

	const n = 50000
	res, err := Draw(snap, n, NewSeededRNG(99))
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[int64]int)
	for _, r := range res {
		counts[r.CharacterID]++
	}
	if freq := float64(counts[1]) / n; math.Abs(freq-0.5) > 0.01 {
		t.Fatalf("pickup freq %.4f not within 1%% of 0.5", freq)
	}
	for id := int64(2); id <= 4; id++ {
		if freq := float64(counts[id]) / n; math.Abs(freq-1.0/6) > 0.01 {
			t.Fatalf("character %d freq %.4f not within 1%% of 1/6", id, freq)
		}
	}
}

func TestDrawAllPickupTier(t *testing.T) {
	// a tier with only pickup entries splits all weight among them
	def := &domain.Gacha{
		Rates: []domain.RarityRate{{Rarity: domain.RarityUR, Rate: "1.0"}},
		Pool: []domain.PoolEntry{
			{CharacterID: 1, Rarity: domain.RarityUR, IsPickup: true},
			{CharacterID: 2, Rarity: domain.RarityUR, IsPickup: true},
		},
	}
	snap := mustSnapshot(t, def)
	res, err := Draw(snap, 20000, NewSeededRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[int64]int)
	for _, r := range res {
		counts[r.CharacterID]++
	}
	for id := int64(1); id <= 2; id++ {
		if freq := float64(counts[id]) / 20000; math.Abs(freq-0.5) > 0.02 {
			t.Fatalf("character %d freq %.4f, want ~0.5", id, freq)
		}
	}
}

// Same seed, same snapshot, same batch: the ten-pull end-to-end scenario
// must replay identically.
func TestDrawDeterministicReplay(t *testing.T) {
	def := &domain.Gacha{
		Rates: []domain.RarityRate{
			{Rarity: domain.RarityN, Rate: "0.97"},
			{Rarity: domain.RaritySSR, Rate: "0.03"},
		},
		Pool: []domain.PoolEntry{
			{CharacterID: 1, Rarity: domain.RarityN},
			{CharacterID: 2, Rarity: domain.RarityN},
			{CharacterID: 3, Rarity: domain.RaritySSR, IsPickup: true},
		},
	}
	snap := mustSnapshot(t, def)

	first, err := Draw(snap, 10, NewSeededRNG(2024))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Draw(snap, 10, NewSeededRNG(2024))
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("batch sizes %d/%d, want 10", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("replay diverged at draw %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
