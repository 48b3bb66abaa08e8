package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftlink/marketplace/internal/domain/model"
)

// NegotiationFacade covers the write path of the bulk-order lifecycle.
type NegotiationFacade interface {
	CreateBulkOrder(ctx context.Context, order *model.BulkOrder) ([]model.RFQ, error)
	SubmitOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error)
	UpdateOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error)
	DeleteOffer(ctx context.Context, rfqID uuid.UUID) error
	ConfirmPayment(ctx context.Context, rfqID uuid.UUID, paymentInfo []byte) (*model.BulkOrder, *model.RFQ, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.BulkOrderStatus) (*model.BulkOrder, error)
	DeleteBulkOrder(ctx context.Context, orderID uuid.UUID) error
}

// MarketFacade covers the read views consumed by buyers and sellers.
type MarketFacade interface {
	SellerOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error)
	AcceptedOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error)
	BuyerOrders(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error)
	Offers(ctx context.Context, bulkOrderID uuid.UUID) ([]model.BuyerOffer, error)
	OfferDetails(ctx context.Context, rfqID uuid.UUID) (*model.OfferDetails, error)
	ProcessingOrders(ctx context.Context, userID uuid.UUID) ([]model.ProcessingOrder, error)
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	NegotiationFacade
	MarketFacade
}

// HealthChecker reports storage liveness for the ping endpoint.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
