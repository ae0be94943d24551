package production

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=production
type Repository interface {
	BeginProduction(ctx context.Context) (ProductionTx, error)
}

// ProductionTx scopes one batch of progress reports to a single
// transaction so a rejected item rolls back the whole batch.
type ProductionTx interface {
	GetItemForUpdate(ctx context.Context, itemID uuid.UUID) (*ItemState, error)
	SetProducedQuantity(ctx context.Context, itemID uuid.UUID, produced decimal.Decimal) error
	InsertProduction(ctx context.Context, p *Production) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record applies a batch of producedQuantity updates on behalf of one
// seamstress. Each value must be monotone non-decreasing and no greater
// than the item's total quantity; any violation aborts the whole batch.
func (s *Service) Record(ctx context.Context, seamstressID uuid.UUID, updates []Update) error {
	tx, err := s.repo.BeginProduction(ctx)
	if err != nil {
		return fmt.Errorf("beginning production transaction: %w", err)
	}
	defer tx.Rollback()

	for _, update := range updates {
		item, err := tx.GetItemForUpdate(ctx, update.ShipmentItemID)
		if err != nil {
			return err
		}

		if item.RecipientID != seamstressID {
			return fmt.Errorf("%w: %s", ErrItemNotOwned, item.ID)
		}

		if update.ProducedQuantity.LessThan(item.ProducedQuantity) ||
			update.ProducedQuantity.GreaterThan(item.Quantity) {
			return &QuantityError{
				ItemID:   item.ID,
				Produced: update.ProducedQuantity,
				Min:      item.ProducedQuantity,
				Max:      item.Quantity,
			}
		}

		if err := tx.SetProducedQuantity(ctx, item.ID, update.ProducedQuantity); err != nil {
			return fmt.Errorf("updating produced quantity: %w", err)
		}

		if err := tx.InsertProduction(ctx, &Production{
			ShipmentItemID:   item.ID,
			SeamstressID:     seamstressID,
			ProducedQuantity: update.ProducedQuantity,
		}); err != nil {
			return fmt.Errorf("recording production: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing production transaction: %w", err)
	}

	return nil
}
