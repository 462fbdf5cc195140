package port

import (
	"context"
	"errors"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

// Apply failures surfaced by the repository. Conflict and timeout are
// transient: the caller may retry ApplyDraw with the same token and the
// already-computed results without risk of double-crediting.
var (
	ErrApplyConflict = errors.New("apply conflicted with a concurrent transaction")
	ErrApplyTimeout  = errors.New("apply timed out")
)

// ApplyReq carries one draw batch to be credited atomically. Token is
// the idempotency key for the whole batch: a token seen before is a
// no-op returning the stored receipt.
type ApplyReq struct {
	Token   string
	UserID  string
	GachaID int64
	Results []domain.DrawResult
}

// CollectionEntry joins a holdings row with its catalog character.
type CollectionEntry struct {
	Owned     domain.OwnedCharacter
	Character domain.Character
}

// HistoryEntry joins a history row with its catalog character.
type HistoryEntry struct {
	Record    domain.HistoryRecord
	Character domain.Character
}

// GachaRepository is the outbound persistence port. Implementations must
// apply draw batches atomically per user: two concurrent applies for the
// same user must serialize, never lose an increment, and never expose a
// partial batch. Lookups return (nil, nil) when the row does not exist.
type GachaRepository interface {
	// Campaign definitions.
	ListGachas(ctx context.Context) ([]domain.Gacha, error)
	GetGacha(ctx context.Context, id int64) (*domain.Gacha, error)
	CreateGacha(ctx context.Context, g *domain.Gacha) (int64, error)
	UpdateGacha(ctx context.Context, g *domain.Gacha) error
	DeleteGacha(ctx context.Context, id int64) error

	// Character catalog.
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	CreateCharacter(ctx context.Context, c *domain.Character) (int64, error)
	UpdateCharacter(ctx context.Context, c *domain.Character) error
	DeleteCharacter(ctx context.Context, id int64) error

	// Ledger and history.
	ApplyDraw(ctx context.Context, req ApplyReq) (*domain.PullReceipt, error)
	GetCollection(ctx context.Context, userID string) ([]CollectionEntry, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
}
