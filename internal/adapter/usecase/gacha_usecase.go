package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/k23002/gacha-simulator/internal/core/domain"
	"github.com/k23002/gacha-simulator/internal/core/gacha"
	"github.com/k23002/gacha-simulator/internal/core/port"
)

// multiPullSize is the only batch size offered besides a single pull.
const multiPullSize = 10

// GachaUseCase implements the inbound port. It compiles campaign
// definitions into immutable snapshots, draws against them and hands the
// batch to the repository for atomic application. Snapshots are cached
// per campaign and keyed by the definition's UpdatedAt, so an admin edit
// supersedes the cached snapshot without touching draws already running
// against the old one.
type GachaUseCase struct {
	repo      port.GachaRepository
	validator *gacha.Validator
	rng       gacha.RandomSource

	mu    sync.RWMutex
	snaps map[int64]*gacha.Snapshot
}

// NewGachaUseCase creates a usecase. A nil rng selects the crypto-backed
// default; tests pass a seeded source for deterministic pulls.
func NewGachaUseCase(repo port.GachaRepository, validator *gacha.Validator, rng gacha.RandomSource) *GachaUseCase {
	if validator == nil {
		validator = gacha.NewValidator(0, 0)
	}
	if rng == nil {
		rng = gacha.DefaultRNG()
	}
	return &GachaUseCase{
		repo:      repo,
		validator: validator,
		rng:       rng,
		snaps:     make(map[int64]*gacha.Snapshot),
	}
}

// Pull executes one user action: load the definition, check the active
// window, draw count results against the compiled snapshot and apply
// them under an idempotency token. Nothing is persisted unless ApplyDraw
// commits. A retry with the same token after a transient failure is
// safe: if the original apply did commit, the stored receipt comes back
// with no results and the retry's draw is discarded uncredited.
func (u *GachaUseCase) Pull(ctx context.Context, req port.PullReq) (*port.PullResp, error) {
	if req.PullCount != 1 && req.PullCount != multiPullSize {
		return nil, port.ErrPullCountNotAllowed
	}
	if req.Token != "" {
		if _, err := uuid.Parse(req.Token); err != nil {
			return nil, port.ErrInvalidToken
		}
	}
	def, err := u.repo.GetGacha(ctx, req.GachaID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, port.ErrGachaNotFound
	}
	if !def.ActiveAt(time.Now()) {
		return nil, port.ErrGachaInactive
	}

	snap, err := u.snapshot(def)
	if err != nil {
		return nil, err
	}
	results, err := gacha.Draw(snap, req.PullCount, u.rng)
	if err != nil {
		return nil, err
	}

	token := req.Token
	if token == "" {
		token = uuid.NewString()
	}
	receipt, err := u.repo.ApplyDraw(ctx, port.ApplyReq{
		Token:   token,
		UserID:  req.UserID,
		GachaID: req.GachaID,
		Results: results,
	})
	if err != nil {
		return nil, err
	}
	if receipt.Duplicate {
		// retried token: the batch above was never credited, so only
		// the stored receipt goes back to the caller
		return &port.PullResp{Receipt: receipt}, nil
	}
	return &port.PullResp{Receipt: receipt, Results: results}, nil
}

// resolvePool rewrites each pool entry's rarity from the character
// catalog. The claimed rarity in an admin payload is untrusted: a
// definition whose entries contradict the catalog would pass rate
// validation and then compile to the wrong tiers at pull time.
func (u *GachaUseCase) resolvePool(ctx context.Context, g *domain.Gacha) error {
	for i := range g.Pool {
		e := &g.Pool[i]
		c, err := u.repo.GetCharacter(ctx, e.CharacterID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: character %d", port.ErrPoolCharacterUnknown, e.CharacterID)
		}
		if e.Rarity != 0 && e.Rarity != c.Rarity {
			return fmt.Errorf("%w: character %d is rarity %d, definition says %d",
				port.ErrPoolRarityMismatch, e.CharacterID, c.Rarity, e.Rarity)
		}
		e.Rarity = c.Rarity
	}
	return nil
}

// snapshot returns the cached compiled snapshot for a definition,
// recompiling when the definition generation changed. A validation
// failure here means an invalid definition reached storage, which the
// create/update paths are supposed to prevent.
func (u *GachaUseCase) snapshot(def *domain.Gacha) (*gacha.Snapshot, error) {
	u.mu.RLock()
	snap, ok := u.snaps[def.ID]
	u.mu.RUnlock()
	if ok && snap.Version().Equal(def.UpdatedAt) {
		return snap, nil
	}

	snap, err := u.validator.Validate(def)
	if err != nil {
		return nil, fmt.Errorf("stored definition for gacha %d failed validation: %w", def.ID, err)
	}
	u.mu.Lock()
	u.snaps[def.ID] = snap
	u.mu.Unlock()
	return snap, nil
}

func (u *GachaUseCase) dropSnapshot(id int64) {
	u.mu.Lock()
	delete(u.snaps, id)
	u.mu.Unlock()
}

// ListGachas returns all campaign definitions.
func (u *GachaUseCase) ListGachas(ctx context.Context) ([]domain.Gacha, error) {
	return u.repo.ListGachas(ctx)
}

// GetGacha returns one definition or ErrGachaNotFound.
func (u *GachaUseCase) GetGacha(ctx context.Context, id int64) (*domain.Gacha, error) {
	g, err := u.repo.GetGacha(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, port.ErrGachaNotFound
	}
	return g, nil
}

// CreateGacha resolves the pool against the catalog and validates the
// definition before persisting it, so an unusable campaign is rejected
// at edit time rather than at draw time.
func (u *GachaUseCase) CreateGacha(ctx context.Context, g *domain.Gacha) (int64, error) {
	if err := u.resolvePool(ctx, g); err != nil {
		return 0, err
	}
	if _, err := u.validator.Validate(g); err != nil {
		return 0, err
	}
	return u.repo.CreateGacha(ctx, g)
}

// UpdateGacha resolves, validates and persists an edited definition,
// superseding any cached snapshot.
func (u *GachaUseCase) UpdateGacha(ctx context.Context, g *domain.Gacha) error {
	if err := u.resolvePool(ctx, g); err != nil {
		return err
	}
	if _, err := u.validator.Validate(g); err != nil {
		return err
	}
	if err := u.repo.UpdateGacha(ctx, g); err != nil {
		return err
	}
	u.dropSnapshot(g.ID)
	return nil
}

// DeleteGacha removes a campaign and its cached snapshot.
func (u *GachaUseCase) DeleteGacha(ctx context.Context, id int64) error {
	if err := u.repo.DeleteGacha(ctx, id); err != nil {
		return err
	}
	u.dropSnapshot(id)
	return nil
}

// ListCharacters returns the catalog.
func (u *GachaUseCase) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	return u.repo.ListCharacters(ctx)
}

// GetCharacter returns one catalog entry or ErrCharacterNotFound.
func (u *GachaUseCase) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	c, err := u.repo.GetCharacter(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCharacterNotFound
	}
	return c, nil
}

// CreateCharacter adds a catalog entry.
func (u *GachaUseCase) CreateCharacter(ctx context.Context, c *domain.Character) (int64, error) {
	if !c.Rarity.Valid() {
		return 0, fmt.Errorf("rarity %d out of range", c.Rarity)
	}
	return u.repo.CreateCharacter(ctx, c)
}

// UpdateCharacter updates a catalog entry.
func (u *GachaUseCase) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	if !c.Rarity.Valid() {
		return fmt.Errorf("rarity %d out of range", c.Rarity)
	}
	return u.repo.UpdateCharacter(ctx, c)
}

// DeleteCharacter removes a catalog entry.
func (u *GachaUseCase) DeleteCharacter(ctx context.Context, id int64) error {
	return u.repo.DeleteCharacter(ctx, id)
}

// GetCollection returns a user's holdings with catalog details.
func (u *GachaUseCase) GetCollection(ctx context.Context, userID string) ([]port.CollectionEntry, error) {
	return u.repo.GetCollection(ctx, userID)
}

// GetHistory returns a user's pull history, newest first. Limit is
// clamped to a sane page size.
func (u *GachaUseCase) GetHistory(ctx context.Context, userID string, limit int) ([]port.HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return u.repo.GetHistory(ctx, userID, limit)
}
