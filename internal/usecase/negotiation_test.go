package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/domain/model"
	"github.com/craftlink/marketplace/internal/notify"
	"github.com/craftlink/marketplace/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type negotiationFixture struct {
	orders   *test.BulkOrderRepositoryStub
	rfqs     *test.RFQRepositoryStub
	catalog  *test.CatalogRepositoryStub
	notifier *test.NotifierStub
	uc       *NegotiationUseCase
}

func newNegotiationFixture() *negotiationFixture {
	orders, rfqs := test.NewLedgerStubs()
	catalog := test.NewCatalogStub()
	notifier := &test.NotifierStub{}
	return &negotiationFixture{
		orders:   orders,
		rfqs:     rfqs,
		catalog:  catalog,
		notifier: notifier,
		uc:       NewNegotiationUseCase(orders, rfqs, catalog, notifier, discardLogger()),
	}
}

func (f *negotiationFixture) addShop(name, email, category string) uuid.UUID {
	shop := &model.Shop{ID: uuid.New(), Name: name, Email: email}
	f.catalog.Shops[shop.ID] = shop
	f.catalog.Products = append(f.catalog.Products, model.Product{ID: uuid.New(), ShopID: shop.ID, Category: category})
	return shop.ID
}

func sampleOrder(userID uuid.UUID, category string) *model.BulkOrder {
	return &model.BulkOrder{
		UserID:           userID,
		ProductName:      "Ceramic Mug",
		Quantity:         500,
		Category:         category,
		Budget:           decimal.NewFromInt(2500),
		DeliveryDeadline: time.Now().Add(30 * 24 * time.Hour),
		ShippingAddress:  "12 Harbor Lane",
	}
}

func sampleOffer() model.Offer {
	return model.Offer{
		Price:        decimal.NewFromInt(2100),
		DeliveryTime: "3 weeks",
		Terms:        "50% upfront",
	}
}

func TestCreateBulkOrderRequiresRequester(t *testing.T) {
	f := newNegotiationFixture()

	_, err := f.uc.CreateBulkOrder(context.Background(), sampleOrder(uuid.Nil, "pottery"))
	if !errors.Is(err, domainErrors.ErrMissingRequester) {
		t.Fatalf("expected missing requester error, got %v", err)
	}
	if len(f.orders.Orders) != 0 {
		t.Fatalf("no order should be persisted, got %d", len(f.orders.Orders))
	}
}

func TestCreateBulkOrderFansOutPerCategorySeller(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")
	f.addShop("Kiln & Co", "kiln@example.com", "pottery")
	f.addShop("Woodsmiths", "wood@example.com", "carpentry")

	order := sampleOrder(uuid.New(), "pottery")
	rfqs, err := f.uc.CreateBulkOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rfqs) != 2 {
		t.Fatalf("expected one RFQ per pottery seller, got %d", len(rfqs))
	}
	for _, rfq := range rfqs {
		if rfq.BulkOrderID != order.ID {
			t.Fatalf("RFQ bound to wrong order %s", rfq.BulkOrderID)
		}
		if rfq.Status != model.RFQStatusPending {
			t.Fatalf("fresh RFQ should be pending, got %s", rfq.Status)
		}
		if rfq.UserID != order.UserID {
			t.Fatalf("RFQ should carry requester %s, got %s", order.UserID, rfq.UserID)
		}
	}

	events := f.notifier.Recorded()
	if len(events) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Type != notify.EventBulkOrderCreated {
			t.Fatalf("unexpected event type %s", ev.Type)
		}
	}
}

func TestCreateBulkOrderSkipsSellersWithoutEmail(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Silent Pottery", "", "pottery")
	f.addShop("Clayworks", "clay@example.com", "pottery")

	rfqs, err := f.uc.CreateBulkOrder(context.Background(), sampleOrder(uuid.New(), "pottery"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rfqs) != 2 {
		t.Fatalf("RFQ fan-out must not depend on contact data, got %d RFQs", len(rfqs))
	}
	events := f.notifier.Recorded()
	if len(events) != 1 || events[0].Recipient != "clay@example.com" {
		t.Fatalf("expected single notification to clay@example.com, got %+v", events)
	}
}

func TestCreateBulkOrderWithNoSellers(t *testing.T) {
	f := newNegotiationFixture()

	order := sampleOrder(uuid.New(), "pottery")
	rfqs, err := f.uc.CreateBulkOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rfqs) != 0 {
		t.Fatalf("expected no RFQs without sellers, got %d", len(rfqs))
	}
	if _, ok := f.orders.Orders[order.ID]; !ok {
		t.Fatal("order must persist even when no seller matches")
	}
}

func TestSubmitOfferNotifiesBuyer(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")
	buyer := &model.User{ID: uuid.New(), Name: "Dana", Email: "dana@example.com"}
	f.catalog.Users[buyer.ID] = buyer

	rfqs, err := f.uc.CreateBulkOrder(context.Background(), sampleOrder(buyer.ID, "pottery"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.notifier.Events = nil

	rfq, err := f.uc.SubmitOffer(context.Background(), rfqs[0].ID, sampleOffer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rfq.Status != model.RFQStatusOfferSubmitted {
		t.Fatalf("expected offer submitted status, got %s", rfq.Status)
	}
	if !rfq.HasOffer() {
		t.Fatal("submitted RFQ must carry a price")
	}

	events := f.notifier.Recorded()
	if len(events) != 1 {
		t.Fatalf("expected one notification, got %d", len(events))
	}
	if events[0].Type != notify.EventOfferSubmitted || events[0].Recipient != "dana@example.com" {
		t.Fatalf("unexpected event %+v", events[0])
	}
}

func TestSubmitOfferTwiceConflicts(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")
	buyer := &model.User{ID: uuid.New(), Name: "Dana", Email: "dana@example.com"}
	f.catalog.Users[buyer.ID] = buyer

	rfqs, _ := f.uc.CreateBulkOrder(context.Background(), sampleOrder(buyer.ID, "pottery"))
	if _, err := f.uc.SubmitOffer(context.Background(), rfqs[0].ID, sampleOffer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.uc.SubmitOffer(context.Background(), rfqs[0].ID, sampleOffer()); !errors.Is(err, domainErrors.ErrOfferAlreadySubmitted) {
		t.Fatalf("expected duplicate submission conflict, got %v", err)
	}
}

func TestSubmitOfferUnknownRFQ(t *testing.T) {
	f := newNegotiationFixture()

	if _, err := f.uc.SubmitOffer(context.Background(), uuid.New(), sampleOffer()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestConfirmPaymentAcceptsOneAndDeclinesSiblings(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")
	f.addShop("Kiln & Co", "kiln@example.com", "pottery")
	buyer := &model.User{ID: uuid.New(), Name: "Dana", Email: "dana@example.com"}
	f.catalog.Users[buyer.ID] = buyer

	rfqs, _ := f.uc.CreateBulkOrder(context.Background(), sampleOrder(buyer.ID, "pottery"))
	for _, rfq := range rfqs {
		if _, err := f.uc.SubmitOffer(context.Background(), rfq.ID, sampleOffer()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	f.notifier.Events = nil

	winner := rfqs[0].ID
	payment := []byte(`{"method":"card","last4":"4242"}`)
	order, rfq, err := f.uc.ConfirmPayment(context.Background(), winner, payment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.BulkOrderStatusProcessing {
		t.Fatalf("accepted order should be processing, got %s", order.Status)
	}
	if order.PaidAt == nil || string(order.PaymentInfo) != string(payment) {
		t.Fatal("payment must be recorded on acceptance")
	}
	if order.AcceptedOffer == nil || *order.AcceptedOffer != winner {
		t.Fatal("accepted offer pointer must reference the winner")
	}
	if rfq.Status != model.RFQStatusAccepted {
		t.Fatalf("winner should be accepted, got %s", rfq.Status)
	}

	accepted := 0
	for _, stored := range f.rfqs.Records {
		switch stored.Status {
		case model.RFQStatusAccepted:
			accepted++
		case model.RFQStatusDeclined:
		default:
			t.Fatalf("sibling left in status %s", stored.Status)
		}
	}
	if accepted != 1 {
		t.Fatalf("exactly one RFQ may be accepted, got %d", accepted)
	}

	events := f.notifier.Recorded()
	if len(events) != 1 || events[0].Type != notify.EventOfferAccepted {
		t.Fatalf("expected single acceptance notification, got %+v", events)
	}
}

func TestConfirmPaymentSecondAcceptanceConflicts(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")
	f.addShop("Kiln & Co", "kiln@example.com", "pottery")
	buyer := &model.User{ID: uuid.New(), Email: "dana@example.com"}
	f.catalog.Users[buyer.ID] = buyer

	rfqs, _ := f.uc.CreateBulkOrder(context.Background(), sampleOrder(buyer.ID, "pottery"))
	for _, rfq := range rfqs {
		if _, err := f.uc.SubmitOffer(context.Background(), rfq.ID, sampleOffer()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if _, _, err := f.uc.ConfirmPayment(context.Background(), rfqs[0].ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := f.uc.ConfirmPayment(context.Background(), rfqs[1].ID, nil); !errors.Is(err, domainErrors.ErrOfferAccepted) {
		t.Fatalf("expected acceptance conflict, got %v", err)
	}
}

func TestConfirmPaymentToleratesShopLookupFailure(t *testing.T) {
	f := newNegotiationFixture()
	shopID := f.addShop("Clayworks", "clay@example.com", "pottery")
	buyer := &model.User{ID: uuid.New(), Email: "dana@example.com"}
	f.catalog.Users[buyer.ID] = buyer

	rfqs, _ := f.uc.CreateBulkOrder(context.Background(), sampleOrder(buyer.ID, "pottery"))
	if _, err := f.uc.SubmitOffer(context.Background(), rfqs[0].ID, sampleOffer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	delete(f.catalog.Shops, shopID)
	f.notifier.Events = nil

	order, rfq, err := f.uc.ConfirmPayment(context.Background(), rfqs[0].ID, nil)
	if err != nil {
		t.Fatalf("acceptance must survive a failed seller lookup, got %v", err)
	}
	if order == nil || rfq == nil {
		t.Fatal("acceptance result must be returned")
	}
	if events := f.notifier.Recorded(); len(events) != 0 {
		t.Fatalf("no notification without a recipient, got %+v", events)
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	f := newNegotiationFixture()

	if _, err := f.uc.UpdateOrderStatus(context.Background(), uuid.New(), "Cancelled"); !errors.Is(err, domainErrors.ErrInvalidOrderStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
	if _, err := f.uc.UpdateOrderStatus(context.Background(), uuid.New(), model.BulkOrderStatusPending); !errors.Is(err, domainErrors.ErrInvalidOrderStatus) {
		t.Fatalf("pending must not be reachable via progression, got %v", err)
	}
}

func TestUpdateOrderStatusDeliveredStampsTime(t *testing.T) {
	f := newNegotiationFixture()
	order := sampleOrder(uuid.New(), "pottery")
	if _, err := f.uc.CreateBulkOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := f.uc.UpdateOrderStatus(context.Background(), order.ID, model.BulkOrderStatusDelivered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.BulkOrderStatusDelivered {
		t.Fatalf("expected delivered, got %s", updated.Status)
	}
	if updated.DeliveredAt == nil {
		t.Fatal("delivered orders must carry a delivery timestamp")
	}
}

func TestUpdateOfferOnAcceptedRFQConflicts(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")
	buyer := &model.User{ID: uuid.New(), Email: "dana@example.com"}
	f.catalog.Users[buyer.ID] = buyer

	rfqs, _ := f.uc.CreateBulkOrder(context.Background(), sampleOrder(buyer.ID, "pottery"))
	if _, err := f.uc.SubmitOffer(context.Background(), rfqs[0].ID, sampleOffer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := f.uc.ConfirmPayment(context.Background(), rfqs[0].ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.uc.UpdateOffer(context.Background(), rfqs[0].ID, sampleOffer()); !errors.Is(err, domainErrors.ErrOfferAccepted) {
		t.Fatalf("accepted offers are immutable, got %v", err)
	}
	if err := f.uc.DeleteOffer(context.Background(), rfqs[0].ID); !errors.Is(err, domainErrors.ErrOfferAccepted) {
		t.Fatalf("accepted offers cannot be withdrawn, got %v", err)
	}
}

func TestDeleteBulkOrderBlockedAfterAcceptance(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")
	buyer := &model.User{ID: uuid.New(), Email: "dana@example.com"}
	f.catalog.Users[buyer.ID] = buyer

	order := sampleOrder(buyer.ID, "pottery")
	rfqs, _ := f.uc.CreateBulkOrder(context.Background(), order)
	if _, err := f.uc.SubmitOffer(context.Background(), rfqs[0].ID, sampleOffer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := f.uc.ConfirmPayment(context.Background(), rfqs[0].ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.DeleteBulkOrder(context.Background(), order.ID); !errors.Is(err, domainErrors.ErrOfferAccepted) {
		t.Fatalf("expected deletion conflict, got %v", err)
	}
}

func TestDeleteBulkOrderCascadesRFQs(t *testing.T) {
	f := newNegotiationFixture()
	f.addShop("Clayworks", "clay@example.com", "pottery")

	order := sampleOrder(uuid.New(), "pottery")
	if _, err := f.uc.CreateBulkOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.DeleteBulkOrder(context.Background(), order.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.orders.Orders) != 0 || len(f.rfqs.Records) != 0 {
		t.Fatalf("deletion must cascade, left %d orders %d RFQs", len(f.orders.Orders), len(f.rfqs.Records))
	}
}
