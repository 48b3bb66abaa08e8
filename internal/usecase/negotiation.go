package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/domain/model"
	"github.com/craftlink/marketplace/internal/domain/repository"
	"github.com/craftlink/marketplace/internal/notify"
)

// Notifier accepts lifecycle notifications for background delivery.
type Notifier interface {
	Enqueue(event notify.Event)
}

// NegotiationUseCase orchestrates the bulk-order / RFQ lifecycle: creation
// with fan-out, offer submission and editing, exclusive acceptance, and
// fulfillment progression.
type NegotiationUseCase struct {
	orders   repository.BulkOrderRepository
	rfqs     repository.RFQRepository
	catalog  repository.CatalogRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewNegotiationUseCase constructs NegotiationUseCase.
func NewNegotiationUseCase(orders repository.BulkOrderRepository, rfqs repository.RFQRepository, catalog repository.CatalogRepository, notifier Notifier, logger *slog.Logger) *NegotiationUseCase {
	return &NegotiationUseCase{orders: orders, rfqs: rfqs, catalog: catalog, notifier: notifier, logger: logger}
}

// CreateBulkOrder persists the order and fans out one pending RFQ per shop
// selling in the order's category. Sellers with a contact address get a
// notification; a missing address is a logged skip. Returns every RFQ the
// fan-out created.
func (u *NegotiationUseCase) CreateBulkOrder(ctx context.Context, order *model.BulkOrder) ([]model.RFQ, error) {
	if order.UserID == uuid.Nil {
		return nil, domainErrors.ErrMissingRequester
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	sellers, err := u.catalog.SellersForCategory(ctx, order.Category)
	if err != nil {
		return nil, err
	}

	shopIDs := make([]uuid.UUID, 0, len(sellers))
	for _, shop := range sellers {
		shopIDs = append(shopIDs, shop.ID)
	}

	created, err := u.rfqs.CreateForSellers(ctx, order.ID, order.UserID, shopIDs)
	if err != nil {
		// Earlier RFQs stay in place; the pair constraint keeps a retry safe.
		return created, err
	}

	for _, shop := range sellers {
		if shop.Email == "" {
			u.logger.Warn("shop has no contact address, skipping notification",
				slog.String("shop_id", shop.ID.String()),
			)
			continue
		}
		u.notifier.Enqueue(notify.Event{
			Type:      notify.EventBulkOrderCreated,
			Recipient: shop.Email,
			Data: notify.TemplateData{
				RecipientName:    shop.Name,
				ProductName:      order.ProductName,
				Quantity:         order.Quantity,
				Budget:           order.Budget,
				DeliveryDeadline: order.DeliveryDeadline,
			},
		})
	}

	return created, nil
}

// SubmitOffer records a seller's first offer on an RFQ. A second submission
// is a conflict; sellers edit terms through UpdateOffer instead.
func (u *NegotiationUseCase) SubmitOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	rfq, err := u.rfqs.SubmitOffer(ctx, rfqID, offer)
	if err != nil {
		return nil, err
	}

	// The offer write is already committed; a missing parent or requester is
	// surfaced to the caller regardless.
	order, err := u.orders.GetByID(ctx, rfq.BulkOrderID)
	if err != nil {
		return nil, err
	}
	buyer, err := u.catalog.UserByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	if buyer.Email == "" {
		u.logger.Warn("buyer has no contact address, skipping notification",
			slog.String("user_id", buyer.ID.String()),
		)
		return rfq, nil
	}

	u.notifier.Enqueue(notify.Event{
		Type:      notify.EventOfferSubmitted,
		Recipient: buyer.Email,
		Data: notify.TemplateData{
			RecipientName: buyer.Name,
			ProductName:   order.ProductName,
			Price:         offer.Price,
			DeliveryTime:  offer.DeliveryTime,
			Terms:         offer.Terms,
		},
	})

	return rfq, nil
}

// ConfirmPayment accepts one offer: the bulk order moves to Processing with
// payment recorded, the winning RFQ becomes Accepted, and every sibling is
// declined in the same transaction.
func (u *NegotiationUseCase) ConfirmPayment(ctx context.Context, rfqID uuid.UUID, paymentInfo []byte) (*model.BulkOrder, *model.RFQ, error) {
	order, rfq, err := u.rfqs.Accept(ctx, rfqID, paymentInfo)
	if err != nil {
		return nil, nil, err
	}

	shop, err := u.catalog.ShopByID(ctx, rfq.ShopID)
	if err != nil {
		u.logger.Warn("seller lookup failed after acceptance",
			slog.String("shop_id", rfq.ShopID.String()),
			slog.String("error", err.Error()),
		)
		return order, rfq, nil
	}
	if shop.Email == "" {
		u.logger.Warn("shop has no contact address, skipping notification",
			slog.String("shop_id", shop.ID.String()),
		)
		return order, rfq, nil
	}

	u.notifier.Enqueue(notify.Event{
		Type:      notify.EventOfferAccepted,
		Recipient: shop.Email,
		Data: notify.TemplateData{
			RecipientName:    shop.Name,
			ProductName:      order.ProductName,
			Price:            rfq.Price.Decimal,
			Quantity:         order.Quantity,
			DeliveryDeadline: order.DeliveryDeadline,
		},
	})

	return order, rfq, nil
}

// UpdateOrderStatus advances fulfillment. Only Processing, Shipping, and
// Delivered are admitted; Delivered stamps the delivery time.
func (u *NegotiationUseCase) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.BulkOrderStatus) (*model.BulkOrder, error) {
	if !ValidFulfillmentStatus(status) {
		return nil, domainErrors.ErrInvalidOrderStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// UpdateOffer overwrites offer terms on an RFQ that is not yet accepted.
func (u *NegotiationUseCase) UpdateOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	return u.rfqs.UpdateOffer(ctx, rfqID, offer)
}

// DeleteOffer withdraws an offer that is not yet accepted.
func (u *NegotiationUseCase) DeleteOffer(ctx context.Context, rfqID uuid.UUID) error {
	return u.rfqs.DeleteOffer(ctx, rfqID)
}

// DeleteBulkOrder removes an order and all its RFQs unless one was accepted.
func (u *NegotiationUseCase) DeleteBulkOrder(ctx context.Context, orderID uuid.UUID) error {
	return u.orders.Delete(ctx, orderID)
}
