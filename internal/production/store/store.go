package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/production"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) BeginProduction(ctx context.Context) (production.ProductionTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &productionTx{tx: tx}, nil
}

type productionTx struct {
	tx *sql.Tx
}

// GetItemForUpdate row-locks the item so concurrent reports of the same
// item serialize on the monotonicity check.
func (t *productionTx) GetItemForUpdate(ctx context.Context, itemID uuid.UUID) (*production.ItemState, error) {
	query := `
		SELECT i.id, s.recipient_id, i.quantity, i.produced_quantity
		FROM shipment_items i
		JOIN shipments s ON i.shipment_id = s.id
		WHERE i.id = $1
		FOR UPDATE OF i
	`

	var item production.ItemState

	err := t.tx.QueryRowContext(ctx, query, itemID).
		Scan(&item.ID, &item.RecipientID, &item.Quantity, &item.ProducedQuantity)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", production.ErrItemNotFound, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading shipment item: %w", err)
	}

	return &item, nil
}

func (t *productionTx) SetProducedQuantity(ctx context.Context, itemID uuid.UUID, produced decimal.Decimal) error {
	query := `UPDATE shipment_items SET produced_quantity = $2, updated_at = now() WHERE id = $1`

	if _, err := t.tx.ExecContext(ctx, query, itemID, produced); err != nil {
		return fmt.Errorf("updating shipment item: %w", err)
	}

	return nil
}

func (t *productionTx) InsertProduction(ctx context.Context, p *production.Production) error {
	query := `
		INSERT INTO productions (shipment_item_id, seamstress_id, produced_quantity)
		VALUES ($1, $2, $3)
	`

	if _, err := t.tx.ExecContext(ctx, query, p.ShipmentItemID, p.SeamstressID, p.ProducedQuantity); err != nil {
		return fmt.Errorf("inserting production: %w", err)
	}

	return nil
}

func (t *productionTx) Commit() error   { return t.tx.Commit() }
func (t *productionTx) Rollback() error { return t.tx.Rollback() }
