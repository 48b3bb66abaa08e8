package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRenderBulkOrderCreated(t *testing.T) {
	msg, err := Render(Event{
		Type:      EventBulkOrderCreated,
		Recipient: "shop@example.com",
		Data: TemplateData{
			ProductName:      "Ceramic Mug",
			Quantity:         500,
			Budget:           decimal.NewFromInt(2500),
			DeliveryDeadline: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Subject != "New Bulk Order Request - Ceramic Mug" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "Quantity: 500") {
		t.Fatalf("expected quantity in text body, got %q", msg.Text)
	}
	if !strings.Contains(msg.Text, "2026-10-01") {
		t.Fatalf("expected deadline in text body, got %q", msg.Text)
	}
	if !strings.Contains(msg.HTML, "<li>Budget: 2500</li>") {
		t.Fatalf("expected budget in html body, got %q", msg.HTML)
	}
}

func TestRenderOfferSubmitted(t *testing.T) {
	msg, err := Render(Event{
		Type: EventOfferSubmitted,
		Data: TemplateData{
			RecipientName: "Maya",
			ProductName:   "Ceramic Mug",
			Price:         decimal.NewFromFloat(4.75),
			DeliveryTime:  "3 weeks",
			Terms:         "50% upfront",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg.Text, "Dear Maya,") {
		t.Fatalf("expected greeting in text body, got %q", msg.Text)
	}
	if !strings.Contains(msg.Text, "Offered Price: 4.75") {
		t.Fatalf("expected price in text body, got %q", msg.Text)
	}
}

func TestRenderOfferAccepted(t *testing.T) {
	msg, err := Render(Event{
		Type: EventOfferAccepted,
		Data: TemplateData{
			RecipientName:    "Atelier Nord",
			ProductName:      "Ceramic Mug",
			Price:            decimal.NewFromInt(2100),
			Quantity:         500,
			DeliveryDeadline: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Subject != "Offer Accepted for Bulk Order - Ceramic Mug" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "Congratulations!") {
		t.Fatalf("expected congratulations in text body, got %q", msg.Text)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	msg, err := Render(Event{
		Type: EventOfferSubmitted,
		Data: TemplateData{RecipientName: "<script>alert(1)</script>"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("expected recipient name to be escaped in html body")
	}
}

func TestRenderUnknownEvent(t *testing.T) {
	if _, err := Render(Event{Type: "bogus"}); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}
