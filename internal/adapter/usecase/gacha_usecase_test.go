package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/k23002/gacha-simulator/internal/core/domain"
	"github.com/k23002/gacha-simulator/internal/core/gacha"
	"github.com/k23002/gacha-simulator/internal/core/port"
	"github.com/k23002/gacha-simulator/internal/core/port/mocks"
)

func testGacha() *domain.Gacha {
	return &domain.Gacha{
		ID:        1,
		Name:      "pickup festival",
		UpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Rates: []domain.RarityRate{
			{Rarity: domain.RarityN, Rate: "0.9700"},
			{Rarity: domain.RaritySSR, Rate: "0.0300"},
		},
		Pool: []domain.PoolEntry{
			{CharacterID: 1, Rarity: domain.RarityN},
			{CharacterID: 2, Rarity: domain.RarityN},
			{CharacterID: 3, Rarity: domain.RaritySSR, IsPickup: true},
		},
	}
}

// TestPullAppliesExactBatch checks that the ten results handed to
// ApplyDraw are exactly the engine's batch, in draw order, and that the
// same seed reproduces the same batch.
func TestPullAppliesExactBatch(t *testing.T) {
	run := func(seed uint64) []domain.DrawResult {
		repo := mocks.NewMockGachaRepository(t)
		repo.EXPECT().GetGacha(mock.Anything, int64(1)).Return(testGacha(), nil)

		var applied port.ApplyReq
		repo.EXPECT().
			ApplyDraw(mock.Anything, mock.AnythingOfType("port.ApplyReq")).
			Run(func(ctx context.Context, req port.ApplyReq) { applied = req }).
			Return(&domain.PullReceipt{Token: "r", ItemCount: 10}, nil)

		svc := NewGachaUseCase(repo, nil, gacha.NewSeededRNG(seed))
		resp, err := svc.Pull(context.Background(), port.PullReq{
			UserID: "u1", GachaID: 1, PullCount: 10,
		})
		if err != nil {
			t.Fatalf("Pull error: %v", err)
		}
		if len(resp.Results) != 10 {
			t.Fatalf("got %d results, want 10", len(resp.Results))
		}
		if applied.Token == "" {
			t.Fatal("no idempotency token generated")
		}
		if applied.UserID != "u1" || applied.GachaID != 1 {
			t.Fatalf("apply request misaddressed: %+v", applied)
		}
		for i := range resp.Results {
			if applied.Results[i] != resp.Results[i] {
				t.Fatalf("apply batch diverged from draw at %d", i)
			}
		}
		return resp.Results
	}

	first := run(2024)
	second := run(2024)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different batches at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPullCountPolicy(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	svc := NewGachaUseCase(repo, nil, gacha.NewSeededRNG(1))

	for _, n := range []int{0, -1, 5, 11} {
		_, err := svc.Pull(context.Background(), port.PullReq{UserID: "u", GachaID: 1, PullCount: n})
		if !errors.Is(err, port.ErrPullCountNotAllowed) {
			t.Fatalf("count=%d: want ErrPullCountNotAllowed, got %v", n, err)
		}
	}
}

func TestPullRejectsMalformedToken(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	svc := NewGachaUseCase(repo, nil, gacha.NewSeededRNG(1))

	_, err := svc.Pull(context.Background(), port.PullReq{
		UserID: "u", GachaID: 1, PullCount: 1, Token: "not-a-uuid",
	})
	if !errors.Is(err, port.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestPullOutsideActiveWindow(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	def := testGacha()
	ended := time.Now().Add(-time.Hour)
	def.EndDate = &ended
	repo.EXPECT().GetGacha(mock.Anything, int64(1)).Return(def, nil)

	svc := NewGachaUseCase(repo, nil, gacha.NewSeededRNG(1))
	_, err := svc.Pull(context.Background(), port.PullReq{UserID: "u", GachaID: 1, PullCount: 1})
	if !errors.Is(err, port.ErrGachaInactive) {
		t.Fatalf("want ErrGachaInactive, got %v", err)
	}
}

func TestPullUnknownGacha(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	repo.EXPECT().GetGacha(mock.Anything, int64(9)).Return(nil, nil)

	svc := NewGachaUseCase(repo, nil, gacha.NewSeededRNG(1))
	_, err := svc.Pull(context.Background(), port.PullReq{UserID: "u", GachaID: 9, PullCount: 1})
	if !errors.Is(err, port.ErrGachaNotFound) {
		t.Fatalf("want ErrGachaNotFound, got %v", err)
	}
}

// TestConcurrentApplySameToken simulates the repository's idempotency
// guard: two concurrent pulls sharing one token must credit holdings
// exactly once.
func TestConcurrentApplySameToken(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	repo.EXPECT().GetGacha(mock.Anything, int64(1)).Return(testGacha(), nil)

	var (
		mu       sync.Mutex
		applied  int
		receipts = make(map[string]*domain.PullReceipt)
	)
	repo.EXPECT().
		ApplyDraw(mock.Anything, mock.AnythingOfType("port.ApplyReq")).
		RunAndReturn(func(ctx context.Context, req port.ApplyReq) (*domain.PullReceipt, error) {
			mu.Lock()
			defer mu.Unlock()
			if r, ok := receipts[req.Token]; ok {
				dup := *r
				dup.Duplicate = true
				return &dup, nil // duplicate token: stored receipt, no credit
			}
			applied++
			r := &domain.PullReceipt{Token: req.Token, UserID: req.UserID, ItemCount: len(req.Results)}
			receipts[req.Token] = r
			return r, nil
		})

	// crypto default RNG: safe for concurrent draws, unlike a seeded one
	svc := NewGachaUseCase(repo, nil, nil)
	token := uuid.NewString()

	var (
		wg      sync.WaitGroup
		awarded int32
	)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			resp, err := svc.Pull(context.Background(), port.PullReq{
				UserID: "u", GachaID: 1, PullCount: 1, Token: token,
			})
			if err != nil {
				t.Errorf("Pull error: %v", err)
				return
			}
			if len(resp.Results) > 0 {
				atomic.AddInt32(&awarded, 1)
			}
		}()
	}
	wg.Wait()

	if applied != 1 {
		t.Fatalf("holdings credited %d times, want exactly 1", applied)
	}
	if awarded != 1 {
		t.Fatalf("%d responses carried results, want exactly 1", awarded)
	}
}

// expectCatalog registers catalog lookups matching testGacha's pool.
func expectCatalog(repo *mocks.MockGachaRepository, rarities map[int64]domain.Rarity) {
	for id, r := range rarities {
		repo.EXPECT().
			GetCharacter(mock.Anything, id).
			Return(&domain.Character{ID: id, Rarity: r}, nil)
	}
}

func TestCreateGachaRejectsInvalid(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	expectCatalog(repo, map[int64]domain.Rarity{
		1: domain.RarityN, 2: domain.RarityN, 3: domain.RaritySSR,
	})
	svc := NewGachaUseCase(repo, nil, nil)

	def := testGacha()
	def.Rates[0].Rate = "0.9200" // sums to 0.95
	_, err := svc.CreateGacha(context.Background(), def)
	if !errors.Is(err, gacha.ErrRateSumMismatch) {
		t.Fatalf("want ErrRateSumMismatch, got %v", err)
	}
}

// TestCreateGachaRejectsCatalogRarityMismatch checks that the claimed
// rarity of a pool entry is checked against the catalog: a definition
// whose only SSR-tier entry is actually an N character must be rejected
// at edit time, not discovered at pull time.
func TestCreateGachaRejectsCatalogRarityMismatch(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	expectCatalog(repo, map[int64]domain.Rarity{
		1: domain.RarityN, 2: domain.RarityN, 3: domain.RarityN,
	})
	svc := NewGachaUseCase(repo, nil, nil)

	_, err := svc.CreateGacha(context.Background(), testGacha())
	if !errors.Is(err, port.ErrPoolRarityMismatch) {
		t.Fatalf("want ErrPoolRarityMismatch, got %v", err)
	}
}

func TestCreateGachaRejectsUnknownPoolCharacter(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	repo.EXPECT().GetCharacter(mock.Anything, int64(1)).Return(nil, nil)
	svc := NewGachaUseCase(repo, nil, nil)

	_, err := svc.CreateGacha(context.Background(), testGacha())
	if !errors.Is(err, port.ErrPoolCharacterUnknown) {
		t.Fatalf("want ErrPoolCharacterUnknown, got %v", err)
	}
}

// TestCreateGachaFillsRarityFromCatalog checks that entries may omit
// the rarity and still land in the right tier.
func TestCreateGachaFillsRarityFromCatalog(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	expectCatalog(repo, map[int64]domain.Rarity{
		1: domain.RarityN, 2: domain.RarityN, 3: domain.RaritySSR,
	})
	repo.EXPECT().CreateGacha(mock.Anything, mock.AnythingOfType("*domain.Gacha")).Return(int64(1), nil)
	svc := NewGachaUseCase(repo, nil, nil)

	def := testGacha()
	for i := range def.Pool {
		def.Pool[i].Rarity = 0
	}
	if _, err := svc.CreateGacha(context.Background(), def); err != nil {
		t.Fatalf("CreateGacha error: %v", err)
	}
	if def.Pool[2].Rarity != domain.RaritySSR {
		t.Fatalf("pool entry rarity = %d, want SSR", def.Pool[2].Rarity)
	}
}

// TestPullDuplicateTokenReturnsStoredReceipt retries a committed token:
// the second call must hand back the original receipt and no results,
// since its fresh draw was never credited.
func TestPullDuplicateTokenReturnsStoredReceipt(t *testing.T) {
	repo := mocks.NewMockGachaRepository(t)
	repo.EXPECT().GetGacha(mock.Anything, int64(1)).Return(testGacha(), nil)

	var stored *domain.PullReceipt
	repo.EXPECT().
		ApplyDraw(mock.Anything, mock.AnythingOfType("port.ApplyReq")).
		RunAndReturn(func(ctx context.Context, req port.ApplyReq) (*domain.PullReceipt, error) {
			if stored != nil {
				dup := *stored
				dup.Duplicate = true
				return &dup, nil
			}
			stored = &domain.PullReceipt{Token: req.Token, UserID: req.UserID, ItemCount: len(req.Results)}
			return stored, nil
		})

	svc := NewGachaUseCase(repo, nil, gacha.NewSeededRNG(7))
	token := uuid.NewString()
	req := port.PullReq{UserID: "u", GachaID: 1, PullCount: 10, Token: token}

	first, err := svc.Pull(context.Background(), req)
	if err != nil {
		t.Fatalf("first Pull error: %v", err)
	}
	if len(first.Results) != 10 {
		t.Fatalf("first pull got %d results, want 10", len(first.Results))
	}

	second, err := svc.Pull(context.Background(), req)
	if err != nil {
		t.Fatalf("retried Pull error: %v", err)
	}
	if !second.Receipt.Duplicate {
		t.Fatal("retried receipt not marked duplicate")
	}
	if len(second.Results) != 0 {
		t.Fatalf("retry reported %d results that were never awarded", len(second.Results))
	}
	if second.Receipt.Token != token || second.Receipt.ItemCount != first.Receipt.ItemCount {
		t.Fatalf("retry receipt %+v does not match original %+v", second.Receipt, first.Receipt)
	}
}
