package usecase

import "github.com/craftlink/marketplace/internal/domain/model"

// ValidFulfillmentStatus reports whether a status is admitted by the
// fulfillment progression endpoint. Pending is deliberately absent: it is
// only ever set at creation time.
func ValidFulfillmentStatus(status model.BulkOrderStatus) bool {
	switch status {
	case model.BulkOrderStatusProcessing, model.BulkOrderStatusShipping, model.BulkOrderStatusDelivered:
		return true
	default:
		return false
	}
}
