package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/server/http/dto"
)

// OfferHandler manages offer-related endpoints.
type OfferHandler struct {
	facade MarketplaceFacade
}

// NewOfferHandler constructs OfferHandler.
func NewOfferHandler(facade MarketplaceFacade) *OfferHandler {
	return &OfferHandler{facade: facade}
}

// Submit handles POST /bulk-order/submit-offer/:rfqId.
func (h *OfferHandler) Submit(c *gin.Context) {
	rfqID, ok := pathUUID(c, "rfqId")
	if !ok {
		return
	}
	var req dto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	rfq, err := h.facade.SubmitOffer(c.Request.Context(), rfqID, offerFromRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrOfferAlreadySubmitted):
			fail(c, http.StatusBadRequest, "Offer has already been submitted for this RFQ.")
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, http.StatusNotFound, "RFQ not found")
		default:
			fail(c, http.StatusInternalServerError, "Failed to submit offer.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OfferMutationResponse{
		Success: true,
		Message: "Offer submitted successfully",
		RFQ:     toRFQResponse(*rfq),
	})
}

// Update handles PUT /bulk-order/update-offer/:rfqId.
func (h *OfferHandler) Update(c *gin.Context) {
	rfqID, ok := pathUUID(c, "rfqId")
	if !ok {
		return
	}
	var req dto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	rfq, err := h.facade.UpdateOffer(c.Request.Context(), rfqID, offerFromRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, http.StatusNotFound, "RFQ not found")
		case errors.Is(err, domainErrors.ErrOfferAccepted):
			fail(c, http.StatusBadRequest, "Cannot update an accepted offer")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update offer.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OfferMutationResponse{
		Success: true,
		Message: "Offer updated successfully",
		RFQ:     toRFQResponse(*rfq),
	})
}

// Delete handles DELETE /bulk-order/delete-offer/:rfqId.
func (h *OfferHandler) Delete(c *gin.Context) {
	rfqID, ok := pathUUID(c, "rfqId")
	if !ok {
		return
	}
	if err := h.facade.DeleteOffer(c.Request.Context(), rfqID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, http.StatusNotFound, "RFQ not found")
		case errors.Is(err, domainErrors.ErrOfferAccepted):
			fail(c, http.StatusBadRequest, "Cannot delete an accepted offer")
		default:
			fail(c, http.StatusInternalServerError, "Failed to delete offer.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Offer deleted successfully"})
}

// List handles GET /bulk-order/offers/:bulkOrderId. An order without offers
// is answered with an empty list, not a 404.
func (h *OfferHandler) List(c *gin.Context) {
	bulkOrderID, ok := pathUUID(c, "bulkOrderId")
	if !ok {
		return
	}
	offers, err := h.facade.Offers(c.Request.Context(), bulkOrderID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load offers.")
		return
	}

	response := dto.OffersResponse{Success: true, Offers: make([]dto.BuyerOfferResponse, 0, len(offers))}
	for _, offer := range offers {
		response.Offers = append(response.Offers, dto.BuyerOfferResponse{
			RFQResponse: toRFQResponse(offer.RFQ),
			Shop:        toShopResponse(offer.Shop),
		})
	}
	c.JSON(http.StatusOK, response)
}

// Details handles GET /bulk-order/offer-details/:rfqId.
func (h *OfferHandler) Details(c *gin.Context) {
	rfqID, ok := pathUUID(c, "rfqId")
	if !ok {
		return
	}
	details, err := h.facade.OfferDetails(c.Request.Context(), rfqID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, http.StatusNotFound, "Offer not found")
		default:
			fail(c, http.StatusInternalServerError, "Failed to load offer.")
		}
		return
	}

	shop := toShopResponse(details.Shop)
	shop.Rating = details.ShopRating

	c.JSON(http.StatusOK, dto.OfferDetailsEnvelope{
		Success: true,
		Offer: dto.OfferDetailsResponse{
			Price:             nullDecimalPtr(details.RFQ.Price),
			PricePerUnit:      nullDecimalPtr(details.RFQ.PricePerUnit),
			DeliveryTime:      details.RFQ.DeliveryTime,
			Terms:             details.RFQ.Terms,
			Warranty:          details.RFQ.Warranty,
			AvailableQuantity: details.RFQ.AvailableQuantity,
			ExpirationDate:    details.RFQ.ExpirationDate,
			PackagingDetails:  details.RFQ.PackagingDetails,
			BulkOrder:         toBulkOrderResponse(details.BulkOrder),
			Shop:              shop,
			CreatedAt:         details.RFQ.CreatedAt,
			Status:            string(details.RFQ.Status),
		},
	})
}

// Accepted handles GET /bulk-order/get-accepted-orders/:shopId.
func (h *OfferHandler) Accepted(c *gin.Context) {
	shopID, ok := pathUUID(c, "shopId")
	if !ok {
		return
	}
	orders, err := h.facade.AcceptedOrders(c.Request.Context(), shopID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load orders.")
		return
	}
	if len(orders) == 0 {
		fail(c, http.StatusNotFound, "No accepted bulk orders found for this shop.")
		return
	}

	response := dto.AcceptedOrdersResponse{Success: true, AcceptedBulkOrders: make([]dto.SellerOrderResponse, 0, len(orders))}
	for _, order := range orders {
		response.AcceptedBulkOrders = append(response.AcceptedBulkOrders, toSellerOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}
