package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/domain/model"
	"github.com/craftlink/marketplace/internal/domain/repository"
)

// MarketUseCase serves the read views of the marketplace: seller worklists,
// buyer order lists, and offer detail projections.
type MarketUseCase struct {
	orders  repository.BulkOrderRepository
	rfqs    repository.RFQRepository
	catalog repository.CatalogRepository
}

// NewMarketUseCase constructs MarketUseCase.
func NewMarketUseCase(orders repository.BulkOrderRepository, rfqs repository.RFQRepository, catalog repository.CatalogRepository) *MarketUseCase {
	return &MarketUseCase{orders: orders, rfqs: rfqs, catalog: catalog}
}

// SellerOrders returns all RFQs targeting a shop, each with its bulk order
// and buyer contact.
func (u *MarketUseCase) SellerOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	return u.rfqs.ListByShop(ctx, shopID)
}

// AcceptedOrders returns the shop's won RFQs.
func (u *MarketUseCase) AcceptedOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	return u.rfqs.ListAcceptedByShop(ctx, shopID)
}

// BuyerOrders returns every bulk order a buyer has placed.
func (u *MarketUseCase) BuyerOrders(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Offers returns the submitted offers for a bulk order. RFQs without a
// price are still empty slots and are excluded.
func (u *MarketUseCase) Offers(ctx context.Context, bulkOrderID uuid.UUID) ([]model.BuyerOffer, error) {
	return u.rfqs.ListOffersForBulkOrder(ctx, bulkOrderID)
}

// OfferDetails returns one offer with its bulk order, shop, and the shop's
// average product rating.
func (u *MarketUseCase) OfferDetails(ctx context.Context, rfqID uuid.UUID) (*model.OfferDetails, error) {
	return u.rfqs.GetOfferDetails(ctx, rfqID)
}

// ProcessingOrders returns the buyer's in-flight orders with the accepted
// offer and its shop populated, mirroring the dashboard view.
func (u *MarketUseCase) ProcessingOrders(ctx context.Context, userID uuid.UUID) ([]model.ProcessingOrder, error) {
	orders, err := u.orders.ListInFulfillmentByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.ProcessingOrder, 0, len(orders))
	for _, order := range orders {
		po := model.ProcessingOrder{BulkOrder: order}
		if order.AcceptedOffer != nil {
			rfq, err := u.rfqs.GetByID(ctx, *order.AcceptedOffer)
			switch {
			case err == nil:
				po.Offer = rfq
				shop, err := u.catalog.ShopByID(ctx, rfq.ShopID)
				if err == nil {
					po.Shop = shop
				} else if !errors.Is(err, domainErrors.ErrNotFound) {
					return nil, err
				}
			case errors.Is(err, domainErrors.ErrNotFound):
				// Dangling pointer: present the order without offer detail.
			default:
				return nil, err
			}
		}
		result = append(result, po)
	}
	return result, nil
}
