// README: Tier store backed by PostgreSQL.
package pricing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS service_tiers (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			base_price   DOUBLE PRECISION NOT NULL CHECK (base_price >= 0),
			price_per_km DOUBLE PRECISION NOT NULL CHECK (price_per_km >= 0),
			capacity     INTEGER NOT NULL CHECK (capacity > 0),
			sort_order   INTEGER NOT NULL DEFAULT 0
		)`)
	if err != nil {
		return fmt.Errorf("pricing: ensure schema: %w", err)
	}
	return nil
}

// SeedDefaults inserts tiers that are not present yet; existing rows are left alone.
func (s *Store) SeedDefaults(ctx context.Context, tiers []Tier) error {
	batch := &pgx.Batch{}
	for i, t := range tiers {
		batch.Queue(`
			INSERT INTO service_tiers (id, name, description, base_price, price_per_km, capacity, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			t.ID, t.Name, t.Description, t.BasePrice, t.PricePerKm, t.Capacity, i,
		)
	}
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("pricing: seed tiers: %w", err)
	}
	return nil
}

func (s *Store) ListTiers(ctx context.Context) ([]Tier, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, base_price, price_per_km, capacity
		FROM service_tiers
		ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("pricing: list tiers: %w", err)
	}
	tiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Tier, error) {
		var t Tier
		err := row.Scan(&t.ID, &t.Name, &t.Description, &t.BasePrice, &t.PricePerKm, &t.Capacity)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("pricing: scan tiers: %w", err)
	}
	return tiers, nil
}

// LoadCatalog reads and validates the catalog stored in the database.
func (s *Store) LoadCatalog(ctx context.Context) (*Catalog, error) {
	tiers, err := s.ListTiers(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(tiers)
}
