package domain

import "time"

// DrawResult is one awarded pull. A batch is an ordered slice of these,
// first draw first.
type DrawResult struct {
	CharacterID int64
	Rarity      Rarity
}

// OwnedCharacter is one row of a user's holdings ledger. Quantity only
// ever increases through pulls.
type OwnedCharacter struct {
	UserID      string
	CharacterID int64
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HistoryRecord is an append-only log entry for one awarded pull.
type HistoryRecord struct {
	ID          int64
	UserID      string
	GachaID     int64
	CharacterID int64
	Rarity      Rarity
	PulledAt    time.Time
}

// PullReceipt proves a batch of draw results was applied. Token is the
// caller-supplied idempotency key; applying the same token twice returns
// the original receipt without touching holdings or history.
type PullReceipt struct {
	Token     string
	UserID    string
	GachaID   int64
	ItemCount int
	CreatedAt time.Time

	// Duplicate is set when the token was seen before: the receipt
	// describes the original apply and this call credited nothing.
	// Never persisted.
	Duplicate bool
}
