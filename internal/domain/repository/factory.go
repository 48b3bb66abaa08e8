package repository

// Factory describes access to different domain repositories.
type Factory interface {
	BulkOrders() BulkOrderRepository
	RFQs() RFQRepository
	Catalog() CatalogRepository
}
