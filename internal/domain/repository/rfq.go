package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftlink/marketplace/internal/domain/model"
)

// RFQRepository describes persistence operations with RFQs.
type RFQRepository interface {
	// CreateForSellers inserts one pending RFQ per shop. A (bulk order, shop)
	// pair that already exists is skipped, so a retried fan-out never
	// duplicates slots. Returns the RFQs created by this call.
	CreateForSellers(ctx context.Context, bulkOrderID, userID uuid.UUID, shopIDs []uuid.UUID) ([]model.RFQ, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error)
	ListAcceptedByShop(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error)
	ListOffersForBulkOrder(ctx context.Context, bulkOrderID uuid.UUID) ([]model.BuyerOffer, error)
	GetOfferDetails(ctx context.Context, rfqID uuid.UUID) (*model.OfferDetails, error)
	SubmitOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error)
	UpdateOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error)
	DeleteOffer(ctx context.Context, rfqID uuid.UUID) error
	// Accept atomically marks one RFQ accepted, declines its siblings, and
	// moves the parent order to Processing with payment details recorded.
	Accept(ctx context.Context, rfqID uuid.UUID, paymentInfo []byte) (*model.BulkOrder, *model.RFQ, error)
}
