package interfaces

import (
	"context"

	"atuestampa_api/internal/domain/entities"
)

// OrderUpdater is a pure transform applied to the current order record inside
// Update. Partial merges are expressed as a transform over the snapshot.
type OrderUpdater func(current entities.Order) entities.Order

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Update is a read-modify-write over the full record: the store reads the
// current item, applies the updater and persists the result in one logical
// step. Concurrent updaters of the same id are last-write-wins; callers that
// need stronger ordering must bring their own guard.
//
// GetByID, GetByExternalReference and Update report "not found" through a
// zero-valued Order (empty ID) with a nil error.
type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByExternalReference(ctx context.Context, externalReference string) (entities.Order, error)
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, updater OrderUpdater) (entities.Order, error)
}
