package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/domain/model"
)

// BulkOrderRepositoryStub keeps bulk orders in memory for tests.
type BulkOrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[uuid.UUID]*model.BulkOrder
	RFQs   *RFQRepositoryStub
	Err    error
}

// RFQRepositoryStub keeps RFQs in memory and mirrors the storage layer's
// lifecycle rules so usecase tests can exercise real sequences.
type RFQRepositoryStub struct {
	mu      sync.Mutex
	Records map[uuid.UUID]*model.RFQ
	Orders  *BulkOrderRepositoryStub
	Details map[uuid.UUID]*model.OfferDetails
	Err     error
}

// CatalogRepositoryStub serves shops, users, and products from memory.
type CatalogRepositoryStub struct {
	Shops    map[uuid.UUID]*model.Shop
	Users    map[uuid.UUID]*model.User
	Products []model.Product
	Err      error
}

// NewLedgerStubs constructs cross-linked bulk order and RFQ stubs.
func NewLedgerStubs() (*BulkOrderRepositoryStub, *RFQRepositoryStub) {
	orders := &BulkOrderRepositoryStub{Orders: make(map[uuid.UUID]*model.BulkOrder)}
	rfqs := &RFQRepositoryStub{
		Records: make(map[uuid.UUID]*model.RFQ),
		Details: make(map[uuid.UUID]*model.OfferDetails),
		Orders:  orders,
	}
	orders.RFQs = rfqs
	return orders, rfqs
}

// NewCatalogStub constructs an empty catalog stub.
func NewCatalogStub() *CatalogRepositoryStub {
	return &CatalogRepositoryStub{
		Shops: make(map[uuid.UUID]*model.Shop),
		Users: make(map[uuid.UUID]*model.User),
	}
}

// --- BulkOrderRepositoryStub ---

func (s *BulkOrderRepositoryStub) Create(ctx context.Context, order *model.BulkOrder) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = model.BulkOrderStatusPending
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	stored := *order
	s.Orders[order.ID] = &stored
	return nil
}

func (s *BulkOrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.BulkOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *BulkOrderRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.BulkOrder
	for _, order := range s.Orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (s *BulkOrderRepositoryStub) ListInFulfillmentByUser(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.BulkOrder
	for _, order := range s.Orders {
		if order.UserID != userID {
			continue
		}
		switch order.Status {
		case model.BulkOrderStatusProcessing, model.BulkOrderStatusShipping, model.BulkOrderStatusDelivered:
			result = append(result, *order)
		}
	}
	return result, nil
}

func (s *BulkOrderRepositoryStub) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.BulkOrderStatus) (*model.BulkOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if status == model.BulkOrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}
	copied := *order
	return &copied, nil
}

func (s *BulkOrderRepositoryStub) Delete(ctx context.Context, orderID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[orderID]; !ok {
		return domainErrors.ErrNotFound
	}
	if s.RFQs != nil {
		s.RFQs.mu.Lock()
		defer s.RFQs.mu.Unlock()
		for _, rfq := range s.RFQs.Records {
			if rfq.BulkOrderID == orderID && rfq.Status == model.RFQStatusAccepted {
				return domainErrors.ErrOfferAccepted
			}
		}
		for id, rfq := range s.RFQs.Records {
			if rfq.BulkOrderID == orderID {
				delete(s.RFQs.Records, id)
			}
		}
	}
	delete(s.Orders, orderID)
	return nil
}

// --- RFQRepositoryStub ---

func (s *RFQRepositoryStub) CreateForSellers(ctx context.Context, bulkOrderID, userID uuid.UUID, shopIDs []uuid.UUID) ([]model.RFQ, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var created []model.RFQ
	for _, shopID := range shopIDs {
		exists := false
		for _, rfq := range s.Records {
			if rfq.BulkOrderID == bulkOrderID && rfq.ShopID == shopID {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		now := time.Now()
		rfq := &model.RFQ{
			ID:          uuid.New(),
			BulkOrderID: bulkOrderID,
			ShopID:      shopID,
			UserID:      userID,
			Status:      model.RFQStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		s.Records[rfq.ID] = rfq
		created = append(created, *rfq)
	}
	return created, nil
}

func (s *RFQRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rfq, ok := s.Records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *rfq
	return &copied, nil
}

func (s *RFQRepositoryStub) ListByShop(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	return s.listForShop(shopID, false)
}

func (s *RFQRepositoryStub) ListAcceptedByShop(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	return s.listForShop(shopID, true)
}

func (s *RFQRepositoryStub) listForShop(shopID uuid.UUID, acceptedOnly bool) ([]model.SellerOrder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.SellerOrder
	for _, rfq := range s.Records {
		if rfq.ShopID != shopID {
			continue
		}
		if acceptedOnly && rfq.Status != model.RFQStatusAccepted {
			continue
		}
		so := model.SellerOrder{RFQ: *rfq}
		if s.Orders != nil {
			if order, ok := s.Orders.Orders[rfq.BulkOrderID]; ok {
				so.BulkOrder = *order
			}
		}
		result = append(result, so)
	}
	return result, nil
}

func (s *RFQRepositoryStub) ListOffersForBulkOrder(ctx context.Context, bulkOrderID uuid.UUID) ([]model.BuyerOffer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.BuyerOffer
	for _, rfq := range s.Records {
		if rfq.BulkOrderID == bulkOrderID && rfq.HasOffer() {
			result = append(result, model.BuyerOffer{RFQ: *rfq})
		}
	}
	return result, nil
}

func (s *RFQRepositoryStub) GetOfferDetails(ctx context.Context, rfqID uuid.UUID) (*model.OfferDetails, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if details, ok := s.Details[rfqID]; ok {
		copied := *details
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RFQRepositoryStub) SubmitOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rfq, ok := s.Records[rfqID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if rfq.HasOffer() {
		return nil, domainErrors.ErrOfferAlreadySubmitted
	}
	applyOffer(rfq, offer)
	rfq.Status = model.RFQStatusOfferSubmitted
	copied := *rfq
	return &copied, nil
}

func (s *RFQRepositoryStub) UpdateOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rfq, ok := s.Records[rfqID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if rfq.Status == model.RFQStatusAccepted {
		return nil, domainErrors.ErrOfferAccepted
	}
	applyOffer(rfq, offer)
	copied := *rfq
	return &copied, nil
}

func (s *RFQRepositoryStub) DeleteOffer(ctx context.Context, rfqID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rfq, ok := s.Records[rfqID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if rfq.Status == model.RFQStatusAccepted {
		return domainErrors.ErrOfferAccepted
	}
	delete(s.Records, rfqID)
	return nil
}

func (s *RFQRepositoryStub) Accept(ctx context.Context, rfqID uuid.UUID, paymentInfo []byte) (*model.BulkOrder, *model.RFQ, error) {
	if s.Err != nil {
		return nil, nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rfq, ok := s.Records[rfqID]
	if !ok {
		return nil, nil, domainErrors.ErrNotFound
	}
	if rfq.Status == model.RFQStatusAccepted {
		return nil, nil, domainErrors.ErrOfferAccepted
	}
	for _, sibling := range s.Records {
		if sibling.BulkOrderID == rfq.BulkOrderID && sibling.ID != rfqID && sibling.Status == model.RFQStatusAccepted {
			return nil, nil, domainErrors.ErrOfferAccepted
		}
	}

	var order *model.BulkOrder
	if s.Orders != nil {
		stored, ok := s.Orders.Orders[rfq.BulkOrderID]
		if !ok {
			return nil, nil, domainErrors.ErrNotFound
		}
		order = stored
	} else {
		return nil, nil, domainErrors.ErrNotFound
	}

	now := time.Now()
	order.Status = model.BulkOrderStatusProcessing
	order.PaymentInfo = paymentInfo
	order.PaidAt = &now
	accepted := rfqID
	order.AcceptedOffer = &accepted

	rfq.Status = model.RFQStatusAccepted
	for _, sibling := range s.Records {
		if sibling.BulkOrderID == rfq.BulkOrderID && sibling.ID != rfqID {
			sibling.Status = model.RFQStatusDeclined
		}
	}

	orderCopy := *order
	rfqCopy := *rfq
	return &orderCopy, &rfqCopy, nil
}

func applyOffer(rfq *model.RFQ, offer model.Offer) {
	rfq.Price.Decimal = offer.Price
	rfq.Price.Valid = true
	rfq.PricePerUnit = offer.PricePerUnit
	rfq.DeliveryTime = offer.DeliveryTime
	rfq.Terms = offer.Terms
	rfq.Warranty = offer.Warranty
	rfq.AvailableQuantity = offer.AvailableQuantity
	rfq.ExpirationDate = offer.ExpirationDate
	rfq.PackagingDetails = offer.PackagingDetails
	rfq.UpdatedAt = time.Now()
}

// --- CatalogRepositoryStub ---

func (s *CatalogRepositoryStub) SellersForCategory(ctx context.Context, category string) ([]model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	seen := make(map[uuid.UUID]bool)
	var result []model.Shop
	for _, product := range s.Products {
		if product.Category != category || seen[product.ShopID] {
			continue
		}
		seen[product.ShopID] = true
		if shop, ok := s.Shops[product.ShopID]; ok {
			result = append(result, *shop)
		}
	}
	return result, nil
}

func (s *CatalogRepositoryStub) ShopByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if shop, ok := s.Shops[id]; ok {
		copied := *shop
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CatalogRepositoryStub) UserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}
