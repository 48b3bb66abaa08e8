package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferRequest describes submitted or updated offer terms.
type OfferRequest struct {
	Price             decimal.Decimal  `json:"price"`
	PricePerUnit      *decimal.Decimal `json:"pricePerUnit"`
	DeliveryTime      string           `json:"deliveryTime"`
	Terms             string           `json:"terms"`
	Warranty          string           `json:"warranty"`
	AvailableQuantity *int             `json:"availableQuantity"`
	ExpirationDate    *time.Time       `json:"expirationDate"`
	PackagingDetails  string           `json:"packagingDetails"`
}

// RFQResponse is the wire form of an RFQ.
type RFQResponse struct {
	ID                uuid.UUID        `json:"id"`
	BulkOrderID       uuid.UUID        `json:"bulkOrderId"`
	ShopID            uuid.UUID        `json:"shopId"`
	UserID            uuid.UUID        `json:"userId"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	PricePerUnit      *decimal.Decimal `json:"pricePerUnit,omitempty"`
	DeliveryTime      string           `json:"deliveryTime,omitempty"`
	Terms             string           `json:"terms,omitempty"`
	Warranty          string           `json:"warranty,omitempty"`
	AvailableQuantity *int             `json:"availableQuantity,omitempty"`
	ExpirationDate    *time.Time       `json:"expirationDate,omitempty"`
	PackagingDetails  string           `json:"packagingDetails,omitempty"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// OfferTermsBlock repeats the offer fields of an RFQ as a nested object on
// seller worklists.
type OfferTermsBlock struct {
	Price             *decimal.Decimal `json:"price"`
	PricePerUnit      *decimal.Decimal `json:"pricePerUnit"`
	DeliveryTime      string           `json:"deliveryTime"`
	Terms             string           `json:"terms"`
	Warranty          string           `json:"warranty"`
	AvailableQuantity *int             `json:"availableQuantity"`
	ExpirationDate    *time.Time       `json:"expirationDate"`
	PackagingDetails  string           `json:"packagingDetails"`
	Status            string           `json:"status"`
}

// UserResponse is the buyer contact attached to seller views.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
}

// ShopResponse is the seller contact attached to buyer views. Rating is only
// populated on the offer detail view and stays null for shops without
// products.
type ShopResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
}

// SellerOrderResponse is one entry of a seller's worklist.
type SellerOrderResponse struct {
	RFQResponse
	BulkOrder BulkOrderResponse `json:"bulkOrder"`
	User      UserResponse      `json:"user"`
	Offer     OfferTermsBlock   `json:"offer"`
}

// SellerOrdersResponse lists RFQs targeting a shop.
type SellerOrdersResponse struct {
	Success    bool                  `json:"success"`
	BulkOrders []SellerOrderResponse `json:"bulkOrders"`
}

// AcceptedOrdersResponse lists a shop's won RFQs.
type AcceptedOrdersResponse struct {
	Success            bool                  `json:"success"`
	AcceptedBulkOrders []SellerOrderResponse `json:"acceptedBulkOrders"`
}

// BuyerOfferResponse is one submitted offer with its seller contact.
type BuyerOfferResponse struct {
	RFQResponse
	Shop ShopResponse `json:"shop"`
}

// OffersResponse lists the submitted offers for a bulk order.
type OffersResponse struct {
	Success bool                 `json:"success"`
	Offers  []BuyerOfferResponse `json:"offers"`
}

// OfferDetailsResponse is the enriched single-offer view.
type OfferDetailsResponse struct {
	Price             *decimal.Decimal  `json:"price"`
	PricePerUnit      *decimal.Decimal  `json:"pricePerUnit,omitempty"`
	DeliveryTime      string            `json:"deliveryTime,omitempty"`
	Terms             string            `json:"terms,omitempty"`
	Warranty          string            `json:"warranty,omitempty"`
	AvailableQuantity *int              `json:"availableQuantity,omitempty"`
	ExpirationDate    *time.Time        `json:"expirationDate,omitempty"`
	PackagingDetails  string            `json:"packagingDetails,omitempty"`
	BulkOrder         BulkOrderResponse `json:"bulkOrder"`
	Shop              ShopResponse      `json:"shop"`
	CreatedAt         time.Time         `json:"createdAt"`
	Status            string            `json:"status"`
}

// OfferDetailsEnvelope wraps the single-offer view.
type OfferDetailsEnvelope struct {
	Success bool                 `json:"success"`
	Offer   OfferDetailsResponse `json:"offer"`
}

// OfferMutationResponse is returned by submit and update offer endpoints.
type OfferMutationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	RFQ     RFQResponse `json:"rfq"`
}

// PaymentConfirmedResponse is returned by the acceptance endpoint.
type PaymentConfirmedResponse struct {
	Message string      `json:"message"`
	RFQ     RFQResponse `json:"rfq"`
}
