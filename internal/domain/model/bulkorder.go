package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BulkOrderStatus describes fulfillment lifecycle of a bulk order.
type BulkOrderStatus string

const (
	BulkOrderStatusPending    BulkOrderStatus = "Pending"
	BulkOrderStatusProcessing BulkOrderStatus = "Processing"
	BulkOrderStatusShipping   BulkOrderStatus = "Shipping"
	BulkOrderStatusDelivered  BulkOrderStatus = "Delivered"
)

// BulkOrder describes an aggregate purchase request broadcast to matching sellers.
type BulkOrder struct {
	ID                         uuid.UUID
	UserID                     uuid.UUID
	ProductName                string
	Description                string
	Quantity                   int
	Category                   string
	ReferenceImage             string
	Budget                     decimal.Decimal
	DeliveryDeadline           time.Time
	ShippingAddress            string
	PackagingRequirements      string
	SupplierLocationPreference string
	Status                     BulkOrderStatus
	// AcceptedOffer points to the single winning RFQ once payment is confirmed.
	AcceptedOffer *uuid.UUID
	// PaymentInfo is an opaque gateway payload stored verbatim.
	PaymentInfo []byte
	PaidAt      *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Locked reports whether the order has an accepted offer and can no longer be deleted.
func (o *BulkOrder) Locked() bool {
	return o.AcceptedOffer != nil
}
