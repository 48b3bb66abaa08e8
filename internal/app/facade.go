package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftlink/marketplace/internal/domain/model"
	"github.com/craftlink/marketplace/internal/usecase"
)

// MarketplaceFacade is the single entry point the HTTP layer talks to. It
// fronts the negotiation write path and the market read views.
type MarketplaceFacade struct {
	negotiation *usecase.NegotiationUseCase
	market      *usecase.MarketUseCase
}

func NewMarketplaceFacade(negotiation *usecase.NegotiationUseCase, market *usecase.MarketUseCase) *MarketplaceFacade {
	return &MarketplaceFacade{negotiation: negotiation, market: market}
}

func (f *MarketplaceFacade) CreateBulkOrder(ctx context.Context, order *model.BulkOrder) ([]model.RFQ, error) {
	return f.negotiation.CreateBulkOrder(ctx, order)
}

func (f *MarketplaceFacade) SellerOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	return f.market.SellerOrders(ctx, shopID)
}

func (f *MarketplaceFacade) AcceptedOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	return f.market.AcceptedOrders(ctx, shopID)
}

func (f *MarketplaceFacade) SubmitOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	return f.negotiation.SubmitOffer(ctx, rfqID, offer)
}

func (f *MarketplaceFacade) UpdateOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	return f.negotiation.UpdateOffer(ctx, rfqID, offer)
}

func (f *MarketplaceFacade) DeleteOffer(ctx context.Context, rfqID uuid.UUID) error {
	return f.negotiation.DeleteOffer(ctx, rfqID)
}

func (f *MarketplaceFacade) BuyerOrders(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error) {
	return f.market.BuyerOrders(ctx, userID)
}

func (f *MarketplaceFacade) Offers(ctx context.Context, bulkOrderID uuid.UUID) ([]model.BuyerOffer, error) {
	return f.market.Offers(ctx, bulkOrderID)
}

func (f *MarketplaceFacade) OfferDetails(ctx context.Context, rfqID uuid.UUID) (*model.OfferDetails, error) {
	return f.market.OfferDetails(ctx, rfqID)
}

func (f *MarketplaceFacade) ConfirmPayment(ctx context.Context, rfqID uuid.UUID, paymentInfo []byte) (*model.BulkOrder, *model.RFQ, error) {
	return f.negotiation.ConfirmPayment(ctx, rfqID, paymentInfo)
}

func (f *MarketplaceFacade) ProcessingOrders(ctx context.Context, userID uuid.UUID) ([]model.ProcessingOrder, error) {
	return f.market.ProcessingOrders(ctx, userID)
}

func (f *MarketplaceFacade) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.BulkOrderStatus) (*model.BulkOrder, error) {
	return f.negotiation.UpdateOrderStatus(ctx, orderID, status)
}

func (f *MarketplaceFacade) DeleteBulkOrder(ctx context.Context, orderID uuid.UUID) error {
	return f.negotiation.DeleteBulkOrder(ctx, orderID)
}
