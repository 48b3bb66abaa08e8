package notify

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType names a lifecycle moment that produces a buyer or seller message.
type EventType string

const (
	// EventBulkOrderCreated invites a seller to submit an offer for a fresh RFQ.
	EventBulkOrderCreated EventType = "bulk_order_created"
	// EventOfferSubmitted tells a buyer that a seller responded to their bulk order.
	EventOfferSubmitted EventType = "offer_submitted"
	// EventOfferAccepted congratulates a seller on a won bulk order.
	EventOfferAccepted EventType = "offer_accepted"
)

// Event is a renderable notification addressed to a single recipient.
type Event struct {
	Type      EventType
	Recipient string
	Data      TemplateData
}

// TemplateData carries the structured values the templates interpolate.
// Fields irrelevant to a given event type are simply unused.
type TemplateData struct {
	RecipientName    string
	ProductName      string
	Quantity         int
	Budget           decimal.Decimal
	DeliveryDeadline time.Time
	Price            decimal.Decimal
	DeliveryTime     string
	Terms            string
}
