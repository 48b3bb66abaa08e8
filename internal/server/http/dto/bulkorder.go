package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBulkOrderRequest describes the multipart form of a new bulk order.
// Budget and deliveryDeadline arrive as strings and are parsed by the handler.
type CreateBulkOrderRequest struct {
	UserID                     string `form:"userId"`
	ProductName                string `form:"productName"`
	Description                string `form:"description"`
	Quantity                   int    `form:"quantity"`
	Category                   string `form:"category"`
	Budget                     string `form:"budget"`
	DeliveryDeadline           string `form:"deliveryDeadline"`
	ShippingAddress            string `form:"shippingAddress"`
	PackagingRequirements      string `form:"packagingRequirements"`
	SupplierLocationPreference string `form:"supplierLocationPreference"`
}

// PaymentRequest carries the opaque gateway payload of a payment confirmation.
type PaymentRequest struct {
	PaymentInfo json.RawMessage `json:"paymentInfo"`
}

// StatusRequest carries a fulfillment status value.
type StatusRequest struct {
	Status string `json:"status"`
}

// BulkOrderResponse is the wire form of a bulk order.
type BulkOrderResponse struct {
	ID                         uuid.UUID       `json:"id"`
	UserID                     uuid.UUID       `json:"userId"`
	ProductName                string          `json:"productName"`
	Description                string          `json:"description,omitempty"`
	Quantity                   int             `json:"quantity"`
	Category                   string          `json:"category"`
	ReferenceImage             string          `json:"referenceImage,omitempty"`
	Budget                     decimal.Decimal `json:"budget"`
	DeliveryDeadline           time.Time       `json:"deliveryDeadline"`
	ShippingAddress            string          `json:"shippingAddress,omitempty"`
	PackagingRequirements      string          `json:"packagingRequirements,omitempty"`
	SupplierLocationPreference string          `json:"supplierLocationPreference,omitempty"`
	Status                     string          `json:"status"`
	AcceptedOffer              *uuid.UUID      `json:"acceptedOffer,omitempty"`
	PaymentInfo                json.RawMessage `json:"paymentInfo,omitempty"`
	PaidAt                     *time.Time      `json:"paidAt,omitempty"`
	DeliveredAt                *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt                  time.Time       `json:"createdAt"`
}

// CreateBulkOrderResponse is returned by the creation endpoint together with
// the fanned-out RFQs.
type CreateBulkOrderResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	BulkOrder BulkOrderResponse `json:"bulkOrder"`
	RFQs      []RFQResponse     `json:"rfqs"`
}

// BuyerOrdersResponse lists a buyer's bulk orders.
type BuyerOrdersResponse struct {
	Success    bool                `json:"success"`
	BulkOrders []BulkOrderResponse `json:"bulkOrders"`
}

// StatusUpdateResponse is returned by the fulfillment progression endpoint.
type StatusUpdateResponse struct {
	Message   string            `json:"message"`
	BulkOrder BulkOrderResponse `json:"bulkOrder"`
}

// ProcessingOrderResponse pairs an in-flight order with its accepted offer.
type ProcessingOrderResponse struct {
	BulkOrder    BulkOrderResponse   `json:"bulkOrder"`
	Status       string              `json:"status"`
	OfferDetails *AcceptedOfferBlock `json:"offerDetails"`
}

// AcceptedOfferBlock is the accepted RFQ with its shop, as shown on the
// buyer's fulfillment dashboard.
type AcceptedOfferBlock struct {
	RFQResponse
	Shop *ShopResponse `json:"shop,omitempty"`
}

// ProcessingOrdersResponse lists a buyer's in-flight orders.
type ProcessingOrdersResponse struct {
	Success          bool                      `json:"success"`
	ProcessingOrders []ProcessingOrderResponse `json:"processingOrders"`
	Message          string                    `json:"message,omitempty"`
}
