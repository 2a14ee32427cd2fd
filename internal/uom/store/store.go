package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/stockroom/internal/uom"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListConversions(ctx context.Context, itemID uuid.UUID) ([]*uom.Conversion, error) {
	query := `
		SELECT id, item_id, from_uom, to_uom, factor, created_at
		FROM uom_conversions
		WHERE item_id IS NULL OR item_id = $1
		ORDER BY item_id NULLS FIRST, from_uom, to_uom
	`

	rows, err := s.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing conversions: %w", err)
	}
	defer rows.Close()

	var convs []*uom.Conversion

	for rows.Next() {
		var c uom.Conversion

		var itemID uuid.NullUUID

		if err := rows.Scan(&c.ID, &itemID, &c.FromUOM, &c.ToUOM, &c.Factor, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}

		if itemID.Valid {
			c.ItemID = &itemID.UUID
		}

		convs = append(convs, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversions: %w", err)
	}

	return convs, nil
}

// UpsertConversion inserts the edge or replaces the factor of an existing one.
func (s *Store) UpsertConversion(ctx context.Context, c *uom.Conversion) error {
	query := `
		INSERT INTO uom_conversions (item_id, from_uom, to_uom, factor, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT ((COALESCE(item_id, '00000000-0000-0000-0000-000000000000'::uuid)), from_uom, to_uom)
		DO UPDATE SET factor = EXCLUDED.factor
		RETURNING id, created_at
	`

	var itemID uuid.NullUUID
	if c.ItemID != nil {
		itemID = uuid.NullUUID{UUID: *c.ItemID, Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query, itemID, c.FromUOM, c.ToUOM, c.Factor).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return upsertError(err, c.ItemID)
	}

	return nil
}

func upsertError(err error, itemID *uuid.UUID) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" && itemID != nil {
		return fmt.Errorf("%w: %s", uom.ErrUnknownItem, itemID)
	}

	return fmt.Errorf("upserting conversion: %w", err)
}
