package gacha

import (
	"errors"
	"testing"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

func testDefinition() *domain.Gacha {
	return &domain.Gacha{
		ID: 1,
		Rates: []domain.RarityRate{
			{Rarity: domain.RarityN, Rate: "0.9000"},
			{Rarity: domain.RarityR, Rate: "0.0900"},
			{Rarity: domain.RaritySR, Rate: "0.0100"},
		},
		Pool: []domain.PoolEntry{
			{CharacterID: 1, Rarity: domain.RarityN},
			{CharacterID: 2, Rarity: domain.RarityN},
			{CharacterID: 3, Rarity: domain.RarityR},
			{CharacterID: 4, Rarity: domain.RaritySR, IsPickup: true},
		},
	}
}

func TestValidateOK(t *testing.T) {
	snap, err := NewValidator(0, 0).Validate(testDefinition())
	if err != nil {
		t.Fatalf("valid definition rejected: %v", err)
	}
	if got := snap.TierRate(domain.RarityN); got != 0.9 {
		t.Fatalf("tier N rate = %v, want 0.9", got)
	}
	if got := snap.PoolSize(domain.RaritySR); got != 1 {
		t.Fatalf("SR pool size = %d, want 1", got)
	}
	// every tier with nonzero rate has a pool
	for _, r := range []domain.Rarity{domain.RarityN, domain.RarityR, domain.RaritySR} {
		if snap.TierRate(r) > 0 && snap.PoolSize(r) == 0 {
			t.Fatalf("tier %d drawable but empty", r)
		}
	}
}

func TestValidateRateSumMismatch(t *testing.T) {
	def := testDefinition()
	def.Rates[0].Rate = "0.8500" // sums to 0.95
	snap, err := NewValidator(0, 0).Validate(def)
	if !errors.Is(err, ErrRateSumMismatch) {
		t.Fatalf("want ErrRateSumMismatch, got %v", err)
	}
	if snap != nil {
		t.Fatal("snapshot produced despite rejection")
	}
}

func TestValidateMalformedRate(t *testing.T) {
	for _, rate := range []string{"abc", "-0.1", "1.5", ""} {
		def := testDefinition()
		def.Rates[0].Rate = rate
		if _, err := NewValidator(0, 0).Validate(def); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("rate %q: want ErrInvalidRate, got %v", rate, err)
		}
	}
}

func TestValidateOrphanPoolEntry(t *testing.T) {
	def := testDefinition()
	def.Pool = append(def.Pool, domain.PoolEntry{CharacterID: 9, Rarity: domain.RarityUR})
	if _, err := NewValidator(0, 0).Validate(def); !errors.Is(err, ErrOrphanPoolEntry) {
		t.Fatalf("want ErrOrphanPoolEntry, got %v", err)
	}
}

func TestValidateEmptyTierPool(t *testing.T) {
	def := testDefinition()
	def.Pool = def.Pool[:3] // drop the only SR entry
	if _, err := NewValidator(0, 0).Validate(def); !errors.Is(err, ErrEmptyTierPool) {
		t.Fatalf("want ErrEmptyTierPool, got %v", err)
	}
}

func TestValidateDuplicatePoolEntry(t *testing.T) {
	def := testDefinition()
	def.Pool = append(def.Pool, domain.PoolEntry{CharacterID: 1, Rarity: domain.RarityN})
	if _, err := NewValidator(0, 0).Validate(def); !errors.Is(err, ErrDuplicatePoolEntry) {
		t.Fatalf("want ErrDuplicatePoolEntry, got %v", err)
	}
}

func TestValidateEpsilonTolerance(t *testing.T) {
	def := testDefinition()
	def.Rates[2].Rate = "0.00995" // sum 0.99995, inside the 1e-4 window
	if _, err := NewValidator(0, 0).Validate(def); err != nil {
		t.Fatalf("sum within epsilon rejected: %v", err)
	}
}
