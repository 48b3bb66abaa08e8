package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/domain/model"
	testhelpers "github.com/craftlink/marketplace/internal/test"
	"github.com/craftlink/marketplace/internal/usecase"
)

func newTestFacade() (*MarketplaceFacade, *testhelpers.CatalogRepositoryStub) {
	orders, rfqs := testhelpers.NewLedgerStubs()
	catalog := testhelpers.NewCatalogStub()
	notifier := &testhelpers.NotifierStub{}
	negotiation := usecase.NewNegotiationUseCase(orders, rfqs, catalog, notifier, discardLogger())
	market := usecase.NewMarketUseCase(orders, rfqs, catalog)
	return NewMarketplaceFacade(negotiation, market), catalog
}

func TestFacadeNegotiationRoundTrip(t *testing.T) {
	facade, catalog := newTestFacade()

	shop := &model.Shop{ID: uuid.New(), Name: "Clayworks", Email: "clay@example.com"}
	catalog.Shops[shop.ID] = shop
	catalog.Products = append(catalog.Products, model.Product{ID: uuid.New(), ShopID: shop.ID, Category: "pottery"})
	buyer := &model.User{ID: uuid.New(), Name: "Dana", Email: "dana@example.com"}
	catalog.Users[buyer.ID] = buyer

	ctx := context.Background()
	order := &model.BulkOrder{
		UserID:           buyer.ID,
		ProductName:      "Ceramic Mug",
		Quantity:         100,
		Category:         "pottery",
		Budget:           decimal.NewFromInt(500),
		DeliveryDeadline: time.Now().Add(14 * 24 * time.Hour),
	}
	rfqs, err := facade.CreateBulkOrder(ctx, order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rfqs) != 1 {
		t.Fatalf("expected one RFQ, got %d", len(rfqs))
	}

	offer := model.Offer{Price: decimal.NewFromInt(450), DeliveryTime: "2 weeks"}
	if _, err := facade.SubmitOffer(ctx, rfqs[0].ID, offer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	offers, err := facade.Offers(ctx, order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected one offer, got %d", len(offers))
	}

	updated, rfq, err := facade.ConfirmPayment(ctx, rfqs[0].ID, []byte(`{"method":"card"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.BulkOrderStatusProcessing || rfq.Status != model.RFQStatusAccepted {
		t.Fatalf("unexpected acceptance state: order %s rfq %s", updated.Status, rfq.Status)
	}

	processing, err := facade.ProcessingOrders(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(processing) != 1 || processing[0].Shop == nil || processing[0].Shop.ID != shop.ID {
		t.Fatalf("processing view must carry the winning shop, got %+v", processing)
	}

	won, err := facade.AcceptedOrders(ctx, shop.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(won) != 1 {
		t.Fatalf("expected one won order, got %d", len(won))
	}

	if err := facade.DeleteBulkOrder(ctx, order.ID); !errors.Is(err, domainErrors.ErrOfferAccepted) {
		t.Fatalf("expected deletion conflict after acceptance, got %v", err)
	}
}

func TestFacadeReadViews(t *testing.T) {
	facade, _ := newTestFacade()
	ctx := context.Background()

	userID := uuid.New()
	orders, err := facade.BuyerOrders(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty history, got %d", len(orders))
	}

	if _, err := facade.OfferDetails(ctx, uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := facade.UpdateOrderStatus(ctx, uuid.New(), "Lost"); !errors.Is(err, domainErrors.ErrInvalidOrderStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}
