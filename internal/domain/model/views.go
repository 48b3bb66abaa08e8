package model

// SellerOrder is a seller's RFQ enriched with its bulk order and the buyer contact.
type SellerOrder struct {
	RFQ       RFQ
	BulkOrder BulkOrder
	Buyer     User
}

// BuyerOffer is a submitted offer enriched with the seller contact.
type BuyerOffer struct {
	RFQ  RFQ
	Shop Shop
}

// OfferDetails is a single offer enriched with its bulk order, the shop, and
// the shop's average product rating. ShopRating is nil when the shop has no
// products.
type OfferDetails struct {
	RFQ        RFQ
	BulkOrder  BulkOrder
	Shop       Shop
	ShopRating *float64
}

// ProcessingOrder is an in-flight bulk order with its accepted offer populated.
type ProcessingOrder struct {
	BulkOrder BulkOrder
	Offer     *RFQ
	Shop      *Shop
}
