package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftlink/marketplace/internal/domain/model"
)

// MarketplaceFacadeStub provides controllable behaviour for the HTTP layer.
type MarketplaceFacadeStub struct {
	CreateBulkOrderFn   func(context.Context, *model.BulkOrder) ([]model.RFQ, error)
	SellerOrdersFn      func(context.Context, uuid.UUID) ([]model.SellerOrder, error)
	AcceptedOrdersFn    func(context.Context, uuid.UUID) ([]model.SellerOrder, error)
	SubmitOfferFn       func(context.Context, uuid.UUID, model.Offer) (*model.RFQ, error)
	UpdateOfferFn       func(context.Context, uuid.UUID, model.Offer) (*model.RFQ, error)
	DeleteOfferFn       func(context.Context, uuid.UUID) error
	BuyerOrdersFn       func(context.Context, uuid.UUID) ([]model.BulkOrder, error)
	OffersFn            func(context.Context, uuid.UUID) ([]model.BuyerOffer, error)
	OfferDetailsFn      func(context.Context, uuid.UUID) (*model.OfferDetails, error)
	ConfirmPaymentFn    func(context.Context, uuid.UUID, []byte) (*model.BulkOrder, *model.RFQ, error)
	ProcessingOrdersFn  func(context.Context, uuid.UUID) ([]model.ProcessingOrder, error)
	UpdateOrderStatusFn func(context.Context, uuid.UUID, model.BulkOrderStatus) (*model.BulkOrder, error)
	DeleteBulkOrderFn   func(context.Context, uuid.UUID) error
}

// CreateBulkOrder delegates to the configured function or echoes the order
// with a single fanned-out RFQ.
func (s MarketplaceFacadeStub) CreateBulkOrder(ctx context.Context, order *model.BulkOrder) ([]model.RFQ, error) {
	if s.CreateBulkOrderFn != nil {
		return s.CreateBulkOrderFn(ctx, order)
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return []model.RFQ{{ID: uuid.New(), BulkOrderID: order.ID, Status: model.RFQStatusPending}}, nil
}

// SellerOrders returns configured seller worklist.
func (s MarketplaceFacadeStub) SellerOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	if s.SellerOrdersFn != nil {
		return s.SellerOrdersFn(ctx, shopID)
	}
	return []model.SellerOrder{{RFQ: model.RFQ{ID: uuid.New(), ShopID: shopID}}}, nil
}

// AcceptedOrders returns configured won RFQs.
func (s MarketplaceFacadeStub) AcceptedOrders(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	if s.AcceptedOrdersFn != nil {
		return s.AcceptedOrdersFn(ctx, shopID)
	}
	return nil, nil
}

// SubmitOffer executes configured submission handler.
func (s MarketplaceFacadeStub) SubmitOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	if s.SubmitOfferFn != nil {
		return s.SubmitOfferFn(ctx, rfqID, offer)
	}
	return &model.RFQ{ID: rfqID, Status: model.RFQStatusOfferSubmitted}, nil
}

// UpdateOffer executes configured update handler.
func (s MarketplaceFacadeStub) UpdateOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	if s.UpdateOfferFn != nil {
		return s.UpdateOfferFn(ctx, rfqID, offer)
	}
	return &model.RFQ{ID: rfqID, Status: model.RFQStatusOfferSubmitted}, nil
}

// DeleteOffer executes configured withdrawal handler.
func (s MarketplaceFacadeStub) DeleteOffer(ctx context.Context, rfqID uuid.UUID) error {
	if s.DeleteOfferFn != nil {
		return s.DeleteOfferFn(ctx, rfqID)
	}
	return nil
}

// BuyerOrders returns configured buyer history.
func (s MarketplaceFacadeStub) BuyerOrders(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error) {
	if s.BuyerOrdersFn != nil {
		return s.BuyerOrdersFn(ctx, userID)
	}
	return []model.BulkOrder{{ID: uuid.New(), UserID: userID}}, nil
}

// Offers returns configured offers for a bulk order.
func (s MarketplaceFacadeStub) Offers(ctx context.Context, bulkOrderID uuid.UUID) ([]model.BuyerOffer, error) {
	if s.OffersFn != nil {
		return s.OffersFn(ctx, bulkOrderID)
	}
	return nil, nil
}

// OfferDetails returns configured detail projection.
func (s MarketplaceFacadeStub) OfferDetails(ctx context.Context, rfqID uuid.UUID) (*model.OfferDetails, error) {
	if s.OfferDetailsFn != nil {
		return s.OfferDetailsFn(ctx, rfqID)
	}
	return &model.OfferDetails{RFQ: model.RFQ{ID: rfqID}}, nil
}

// ConfirmPayment executes configured acceptance handler.
func (s MarketplaceFacadeStub) ConfirmPayment(ctx context.Context, rfqID uuid.UUID, paymentInfo []byte) (*model.BulkOrder, *model.RFQ, error) {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, rfqID, paymentInfo)
	}
	order := &model.BulkOrder{ID: uuid.New(), Status: model.BulkOrderStatusProcessing}
	return order, &model.RFQ{ID: rfqID, Status: model.RFQStatusAccepted}, nil
}

// ProcessingOrders returns configured in-flight orders.
func (s MarketplaceFacadeStub) ProcessingOrders(ctx context.Context, userID uuid.UUID) ([]model.ProcessingOrder, error) {
	if s.ProcessingOrdersFn != nil {
		return s.ProcessingOrdersFn(ctx, userID)
	}
	return nil, nil
}

// UpdateOrderStatus executes configured progression handler.
func (s MarketplaceFacadeStub) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.BulkOrderStatus) (*model.BulkOrder, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return &model.BulkOrder{ID: orderID, Status: status}, nil
}

// DeleteBulkOrder executes configured deletion handler.
func (s MarketplaceFacadeStub) DeleteBulkOrder(ctx context.Context, orderID uuid.UUID) error {
	if s.DeleteBulkOrderFn != nil {
		return s.DeleteBulkOrderFn(ctx, orderID)
	}
	return nil
}
