package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"github.com/k23002/gacha-simulator/internal/core/domain"
	"github.com/k23002/gacha-simulator/internal/core/gacha"
)

// Seed fixture schema. Pool entries reference characters by name so the
// fixture stays readable and survives id reassignment.
type seedFile struct {
	Characters []seedCharacter `yaml:"characters"`
	Gachas     []seedGacha     `yaml:"gachas"`
}

type seedCharacter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Rarity      int    `yaml:"rarity"`
	Attribute   string `yaml:"attribute"`
	HP          int    `yaml:"hp"`
	ATK         int    `yaml:"atk"`
	AGI         int    `yaml:"agi"`
}

type seedGacha struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Rates       []struct {
		Rarity int    `yaml:"rarity"`
		Rate   string `yaml:"rate"`
	} `yaml:"rarity_rates"`
	Pool []struct {
		Character string `yaml:"character"`
		IsPickup  bool   `yaml:"is_pickup"`
	} `yaml:"pool"`
}

// Seed inserts demo characters and campaigns from a YAML fixture file.
// Characters are upserted by name; campaigns that already exist are left
// alone. Each campaign definition goes through full validation before it
// is written, so the seed cannot produce an unusable gacha.
func Seed(ctx context.Context, pool *pgxpool.Pool, path string, validator *gacha.Validator) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed fixtures: %w", err)
	}
	var fixtures seedFile
	if err = yaml.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("parse seed fixtures: %w", err)
	}

	ids := make(map[string]int64, len(fixtures.Characters))
	rarities := make(map[string]domain.Rarity, len(fixtures.Characters))
	for _, c := range fixtures.Characters {
		var id int64
		err = pool.QueryRow(ctx, `INSERT INTO characters (name, description, rarity, attribute, hp, atk, agi, created_at, updated_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now())
            ON CONFLICT (name) DO UPDATE SET description=EXCLUDED.description, rarity=EXCLUDED.rarity,
                attribute=EXCLUDED.attribute, hp=EXCLUDED.hp, atk=EXCLUDED.atk, agi=EXCLUDED.agi, updated_at=now()
            RETURNING id`,
			c.Name, c.Description, c.Rarity, c.Attribute, c.HP, c.ATK, c.AGI).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed character %q: %w", c.Name, err)
		}
		ids[c.Name] = id
		rarities[c.Name] = domain.Rarity(c.Rarity)
	}

	for _, g := range fixtures.Gachas {
		def := &domain.Gacha{
			Name:        g.Name,
			Description: g.Description,
			StartDate:   g.StartDate,
			EndDate:     g.EndDate,
		}
		for _, rr := range g.Rates {
			def.Rates = append(def.Rates, domain.RarityRate{Rarity: domain.Rarity(rr.Rarity), Rate: rr.Rate})
		}
		for _, p := range g.Pool {
			id, ok := ids[p.Character]
			if !ok {
				return fmt.Errorf("seed gacha %q: unknown character %q", g.Name, p.Character)
			}
			def.Pool = append(def.Pool, domain.PoolEntry{
				CharacterID: id,
				Rarity:      rarities[p.Character],
				IsPickup:    p.IsPickup,
			})
		}
		if _, err = validator.Validate(def); err != nil {
			return fmt.Errorf("seed gacha %q: %w", g.Name, err)
		}
		if err = insertSeedGacha(ctx, pool, def); err != nil {
			return fmt.Errorf("seed gacha %q: %w", g.Name, err)
		}
	}
	return nil
}

func insertSeedGacha(ctx context.Context, pool *pgxpool.Pool, def *domain.Gacha) error {
	ratesRaw, err := json.Marshal(def.Rates)
	if err != nil {
		return err
	}
	var id int64
	err = pool.QueryRow(ctx, `INSERT INTO gachas (name, description, start_date, end_date, rarity_rates, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT (name) DO NOTHING RETURNING id`,
		def.Name, def.Description, def.StartDate, def.EndDate, ratesRaw).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil // already seeded
	}
	if err != nil {
		return err
	}
	for _, e := range def.Pool {
		_, err = pool.Exec(ctx, `INSERT INTO gacha_character_pool (gacha_id, character_id, is_pickup)
            VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, id, e.CharacterID, e.IsPickup)
		if err != nil {
			return err
		}
	}
	return nil
}
