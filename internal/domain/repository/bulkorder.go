package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftlink/marketplace/internal/domain/model"
)

// BulkOrderRepository describes persistence operations with bulk orders.
type BulkOrderRepository interface {
	Create(ctx context.Context, order *model.BulkOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BulkOrder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error)
	ListInFulfillmentByUser(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.BulkOrderStatus) (*model.BulkOrder, error)
	Delete(ctx context.Context, orderID uuid.UUID) error
}
