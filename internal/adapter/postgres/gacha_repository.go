package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/k23002/gacha-simulator/internal/core/domain"
	"github.com/k23002/gacha-simulator/internal/core/port"
)

// GachaRepository implements port.GachaRepository using pgxpool for
// PostgreSQL.
type GachaRepository struct {
	pool *pgxpool.Pool
}

// NewGachaRepository returns a new repository instance.
func NewGachaRepository(pool *pgxpool.Pool) *GachaRepository {
	return &GachaRepository{pool: pool}
}

const gachaColumns = `id, name, description, start_date, end_date, rarity_rates, created_at, updated_at`

func scanGacha(row pgx.Row) (*domain.Gacha, error) {
	var (
		g        domain.Gacha
		ratesRaw []byte
	)
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.StartDate, &g.EndDate, &ratesRaw, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(ratesRaw, &g.Rates); err != nil {
		return nil, fmt.Errorf("malformed rarity_rates for gacha %d: %w", g.ID, err)
	}
	return &g, nil
}

// ListGachas returns all campaign definitions with their pools.
func (r *GachaRepository) ListGachas(ctx context.Context) ([]domain.Gacha, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+gachaColumns+` FROM gachas ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	gachas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Gacha, error) {
		g, err := scanGacha(row)
		if err != nil {
			return domain.Gacha{}, err
		}
		return *g, nil
	})
	if err != nil {
		return nil, err
	}

	pools, err := r.loadPools(ctx, 0)
	if err != nil {
		return nil, err
	}
	for i := range gachas {
		gachas[i].Pool = pools[gachas[i].ID]
	}
	return gachas, nil
}

// GetGacha returns one definition with its pool, or nil when absent.
func (r *GachaRepository) GetGacha(ctx context.Context, id int64) (*domain.Gacha, error) {
	g, err := scanGacha(r.pool.QueryRow(ctx, `SELECT `+gachaColumns+` FROM gachas WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	pools, err := r.loadPools(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Pool = pools[id]
	return g, nil
}

// loadPools fetches pool entries joined with character rarity, grouped
// by gacha id. A zero gachaID loads all pools.
func (r *GachaRepository) loadPools(ctx context.Context, gachaID int64) (map[int64][]domain.PoolEntry, error) {
	query := `
        SELECT p.gacha_id, p.character_id, c.rarity, p.is_pickup
        FROM gacha_character_pool p
        JOIN characters c ON c.id = p.character_id`
	args := []any{}
	if gachaID != 0 {
		query += ` WHERE p.gacha_id = $1`
		args = append(args, gachaID)
	}
	query += ` ORDER BY c.rarity, p.is_pickup DESC, p.character_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	pools := make(map[int64][]domain.PoolEntry)
	for rows.Next() {
		var (
			gid int64
			e   domain.PoolEntry
		)
		if err = rows.Scan(&gid, &e.CharacterID, &e.Rarity, &e.IsPickup); err != nil {
			return nil, err
		}
		pools[gid] = append(pools[gid], e)
	}
	return pools, rows.Err()
}

// CreateGacha inserts a definition and its pool in one transaction.
func (r *GachaRepository) CreateGacha(ctx context.Context, g *domain.Gacha) (id int64, err error) {
	ratesRaw, err := json.Marshal(g.Rates)
	if err != nil {
		return 0, err
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `INSERT INTO gachas (name, description, start_date, end_date, rarity_rates, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$6) RETURNING id`,
		g.Name, g.Description, g.StartDate, g.EndDate, ratesRaw, now).Scan(&id)
	if err != nil {
		return 0, err
	}
	if err = insertPool(ctx, tx, id, g.Pool); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateGacha rewrites a definition. The pool is replaced wholesale,
// matching the edit semantics of the admin form.
func (r *GachaRepository) UpdateGacha(ctx context.Context, g *domain.Gacha) (err error) {
	ratesRaw, err := json.Marshal(g.Rates)
	if err != nil {
		return err
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE gachas SET name=$1, description=$2, start_date=$3, end_date=$4, rarity_rates=$5, updated_at=now()
        WHERE id = $6`,
		g.Name, g.Description, g.StartDate, g.EndDate, ratesRaw, g.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrGachaNotFound
	}
	if _, err = tx.Exec(ctx, `DELETE FROM gacha_character_pool WHERE gacha_id = $1`, g.ID); err != nil {
		return err
	}
	return insertPool(ctx, tx, g.ID, g.Pool)
}

func insertPool(ctx context.Context, tx pgx.Tx, gachaID int64, pool []domain.PoolEntry) error {
	for _, e := range pool {
		_, err := tx.Exec(ctx, `INSERT INTO gacha_character_pool (gacha_id, character_id, is_pickup)
            VALUES ($1,$2,$3)`, gachaID, e.CharacterID, e.IsPickup)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteGacha removes a definition; pool rows cascade.
func (r *GachaRepository) DeleteGacha(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gachas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrGachaNotFound
	}
	return nil
}

const characterColumns = `id, name, description, rarity, attribute, hp, atk, agi, created_at, updated_at`

func scanCharacter(row pgx.Row) (domain.Character, error) {
	var c domain.Character
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Rarity, &c.Attribute, &c.HP, &c.ATK, &c.AGI, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListCharacters returns the catalog, rarest first.
func (r *GachaRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+characterColumns+` FROM characters ORDER BY rarity DESC, name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Character, error) {
		return scanCharacter(row)
	})
}

// GetCharacter returns one catalog entry, or nil when absent.
func (r *GachaRepository) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	c, err := scanCharacter(r.pool.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCharacter inserts a catalog entry.
func (r *GachaRepository) CreateCharacter(ctx context.Context, c *domain.Character) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO characters (name, description, rarity, attribute, hp, atk, agi, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) RETURNING id`,
		c.Name, c.Description, c.Rarity, c.Attribute, c.HP, c.ATK, c.AGI).Scan(&id)
	return id, err
}

// UpdateCharacter updates a catalog entry.
func (r *GachaRepository) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	tag, err := r.pool.Exec(ctx, `UPDATE characters SET name=$1, description=$2, rarity=$3, attribute=$4, hp=$5, atk=$6, agi=$7, updated_at=now()
        WHERE id = $8`,
		c.Name, c.Description, c.Rarity, c.Attribute, c.HP, c.ATK, c.AGI, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCharacterNotFound
	}
	return nil
}

// DeleteCharacter removes a catalog entry.
func (r *GachaRepository) DeleteCharacter(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCharacterNotFound
	}
	return nil
}

// ApplyDraw credits one draw batch atomically: receipt token first (the
// idempotency guard), then holdings upserts, then history rows in draw
// order. A duplicate token returns the stored receipt and changes
// nothing. Holdings rows lock per (user, character), so concurrent
// applies for one user serialize while other users proceed in parallel.
func (r *GachaRepository) ApplyDraw(ctx context.Context, req port.ApplyReq) (receipt *domain.PullReceipt, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, applyErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			err = applyErr(err)
		} else if err = tx.Commit(ctx); err != nil {
			err = applyErr(err)
		}
	}()

	now := time.Now().UTC()
	tag, err := tx.Exec(ctx, `INSERT INTO pull_receipts (token, user_id, gacha_id, item_count, created_at)
        VALUES ($1,$2,$3,$4,$5) ON CONFLICT (token) DO NOTHING`,
		req.Token, req.UserID, req.GachaID, len(req.Results), now)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// duplicate token: this batch was already applied
		var stored domain.PullReceipt
		err = tx.QueryRow(ctx, `SELECT token, user_id, gacha_id, item_count, created_at FROM pull_receipts WHERE token = $1`, req.Token).
			Scan(&stored.Token, &stored.UserID, &stored.GachaID, &stored.ItemCount, &stored.CreatedAt)
		if err != nil {
			return nil, err
		}
		stored.Duplicate = true
		return &stored, nil
	}

	counts := make(map[int64]int, len(req.Results))
	order := make([]int64, 0, len(req.Results))
	for _, res := range req.Results {
		if counts[res.CharacterID] == 0 {
			order = append(order, res.CharacterID)
		}
		counts[res.CharacterID]++
	}
	for _, characterID := range order {
		_, err = tx.Exec(ctx, `INSERT INTO user_characters (user_id, character_id, quantity, created_at, updated_at)
            VALUES ($1,$2,$3,$4,$4)
            ON CONFLICT (user_id, character_id)
            DO UPDATE SET quantity = user_characters.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`,
			req.UserID, characterID, counts[characterID], now)
		if err != nil {
			return nil, err
		}
	}
	for _, res := range req.Results {
		_, err = tx.Exec(ctx, `INSERT INTO gacha_history (user_id, gacha_id, character_id, rarity, pulled_at)
            VALUES ($1,$2,$3,$4,$5)`,
			req.UserID, req.GachaID, res.CharacterID, res.Rarity, now)
		if err != nil {
			return nil, err
		}
	}

	return &domain.PullReceipt{
		Token:     req.Token,
		UserID:    req.UserID,
		GachaID:   req.GachaID,
		ItemCount: len(req.Results),
		CreatedAt: now,
	}, nil
}

// applyErr classifies transaction failures for the caller's retry
// decision: serialization/deadlock conflicts and timeouts are transient,
// anything else is an I/O failure passed through as-is.
func applyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", port.ErrApplyTimeout, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %w", port.ErrApplyConflict, err)
		}
	}
	return err
}

// GetCollection returns a user's holdings joined with the catalog,
// rarest first.
func (r *GachaRepository) GetCollection(ctx context.Context, userID string) ([]port.CollectionEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT u.user_id, u.character_id, u.quantity, u.created_at, u.updated_at,
               c.id, c.name, c.description, c.rarity, c.attribute, c.hp, c.atk, c.agi, c.created_at, c.updated_at
        FROM user_characters u
        JOIN characters c ON c.id = u.character_id
        WHERE u.user_id = $1
        ORDER BY c.rarity DESC, c.name`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CollectionEntry, error) {
		var e port.CollectionEntry
		err := row.Scan(
			&e.Owned.UserID, &e.Owned.CharacterID, &e.Owned.Quantity, &e.Owned.CreatedAt, &e.Owned.UpdatedAt,
			&e.Character.ID, &e.Character.Name, &e.Character.Description, &e.Character.Rarity,
			&e.Character.Attribute, &e.Character.HP, &e.Character.ATK, &e.Character.AGI,
			&e.Character.CreatedAt, &e.Character.UpdatedAt,
		)
		return e, err
	})
}

// GetHistory returns a user's pull history, newest first.
func (r *GachaRepository) GetHistory(ctx context.Context, userID string, limit int) ([]port.HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT h.id, h.user_id, h.gacha_id, h.character_id, h.rarity, h.pulled_at,
               c.id, c.name, c.description, c.rarity, c.attribute, c.hp, c.atk, c.agi, c.created_at, c.updated_at
        FROM gacha_history h
        JOIN characters c ON c.id = h.character_id
        WHERE h.user_id = $1
        ORDER BY h.pulled_at DESC, h.id DESC
        LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.HistoryEntry, error) {
		var e port.HistoryEntry
		err := row.Scan(
			&e.Record.ID, &e.Record.UserID, &e.Record.GachaID, &e.Record.CharacterID, &e.Record.Rarity, &e.Record.PulledAt,
			&e.Character.ID, &e.Character.Name, &e.Character.Description, &e.Character.Rarity,
			&e.Character.Attribute, &e.Character.HP, &e.Character.ATK, &e.Character.AGI,
			&e.Character.CreatedAt, &e.Character.UpdatedAt,
		)
		return e, err
	})
}
