package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RFQStatus describes negotiation lifecycle of one seller slot.
type RFQStatus string

const (
	RFQStatusPending        RFQStatus = "Pending"
	RFQStatusOfferSubmitted RFQStatus = "Offer Submitted"
	RFQStatusAccepted       RFQStatus = "Accepted"
	RFQStatusDeclined       RFQStatus = "Declined"
)

// RFQ is a seller-specific slot for one offer against one bulk order.
// UserID is copied from the bulk order at fan-out time and never refreshed.
type RFQ struct {
	ID                uuid.UUID
	BulkOrderID       uuid.UUID
	ShopID            uuid.UUID
	UserID            uuid.UUID
	Price             decimal.NullDecimal
	PricePerUnit      decimal.NullDecimal
	DeliveryTime      string
	Terms             string
	Warranty          string
	AvailableQuantity *int
	ExpirationDate    *time.Time
	PackagingDetails  string
	Status            RFQStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasOffer reports whether a seller has submitted terms. A null price means
// the slot is still empty.
func (r *RFQ) HasOffer() bool {
	return r.Price.Valid
}

// Offer carries the seller-editable terms of an RFQ.
type Offer struct {
	Price             decimal.Decimal
	PricePerUnit      decimal.NullDecimal
	DeliveryTime      string
	Terms             string
	Warranty          string
	AvailableQuantity *int
	ExpirationDate    *time.Time
	PackagingDetails  string
}
