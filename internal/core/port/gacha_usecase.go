package port

import (
	"context"
	"errors"

	"github.com/k23002/gacha-simulator/internal/core/domain"
)

var (
	ErrGachaNotFound       = errors.New("gacha not found")
	ErrGachaInactive       = errors.New("gacha is outside its active window")
	ErrCharacterNotFound   = errors.New("character not found")
	ErrPullCountNotAllowed = errors.New("pull count must be 1 or the batch size")
	ErrInvalidToken        = errors.New("idempotency token must be a UUID")

	ErrPoolCharacterUnknown = errors.New("pool entry references an unknown character")
	ErrPoolRarityMismatch   = errors.New("pool entry rarity contradicts the character catalog")
)

// PullReq is one user action against a campaign. Token is optional: an
// empty token gets a fresh idempotency key; callers that retry after a
// transient apply failure should resend the token from the failed
// attempt.
type PullReq struct {
	UserID    string
	GachaID   int64
	PullCount int
	Token     string
}

// PullResp is the outcome of a successful pull: the ordered draw results
// and the receipt proving they were applied. A retried token carries
// only the stored receipt; Results is empty because nothing new was
// awarded.
type PullResp struct {
	Receipt *domain.PullReceipt
	Results []domain.DrawResult
}

// GachaUseCase is the inbound port: the business operations the HTTP
// layer drives. Mock implementations are generated from the repository
// port for testing.
type GachaUseCase interface {
	// Pull validates the campaign window and pull count, draws against
	// the campaign's compiled snapshot and applies the batch atomically.
	Pull(ctx context.Context, req PullReq) (*PullResp, error)

	ListGachas(ctx context.Context) ([]domain.Gacha, error)
	GetGacha(ctx context.Context, id int64) (*domain.Gacha, error)
	CreateGacha(ctx context.Context, g *domain.Gacha) (int64, error)
	UpdateGacha(ctx context.Context, g *domain.Gacha) error
	DeleteGacha(ctx context.Context, id int64) error

	ListCharacters(ctx context.Context) ([]domain.Character, error)
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
	CreateCharacter(ctx context.Context, c *domain.Character) (int64, error)
	UpdateCharacter(ctx context.Context, c *domain.Character) error
	DeleteCharacter(ctx context.Context, id int64) error

	GetCollection(ctx context.Context, userID string) ([]CollectionEntry, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
}
