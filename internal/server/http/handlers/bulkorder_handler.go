package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftlink/marketplace/internal/config"
	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/domain/model"
	"github.com/craftlink/marketplace/internal/server/http/dto"
)

// BulkOrderHandler manages bulk-order lifecycle endpoints.
type BulkOrderHandler struct {
	facade         MarketplaceFacade
	uploadDir      string
	maxUploadBytes int64
}

// NewBulkOrderHandler constructs BulkOrderHandler.
func NewBulkOrderHandler(facade MarketplaceFacade, cfg *config.Config) *BulkOrderHandler {
	return &BulkOrderHandler{
		facade:         facade,
		uploadDir:      cfg.UploadDir,
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}

// Create handles POST /bulk-order/create. The order arrives as a multipart
// form with an optional reference image.
func (h *BulkOrderHandler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	var req dto.CreateBulkOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if req.UserID == "" {
		fail(c, http.StatusBadRequest, "User ID is required to create a bulk order.")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid identifier.")
		return
	}

	budget := decimal.Zero
	if req.Budget != "" {
		budget, err = decimal.NewFromString(req.Budget)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid budget value.")
			return
		}
	}

	var deadline time.Time
	if req.DeliveryDeadline != "" {
		deadline, err = time.Parse(time.RFC3339, req.DeliveryDeadline)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid delivery deadline.")
			return
		}
	}

	var referenceImage string
	if file, err := c.FormFile("referenceImage"); err == nil {
		referenceImage = uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, referenceImage)); err != nil {
			fail(c, http.StatusInternalServerError, "Failed to store reference image.")
			return
		}
	}

	order := &model.BulkOrder{
		UserID:                     userID,
		ProductName:                req.ProductName,
		Description:                req.Description,
		Quantity:                   req.Quantity,
		Category:                   req.Category,
		ReferenceImage:             referenceImage,
		Budget:                     budget,
		DeliveryDeadline:           deadline,
		ShippingAddress:            req.ShippingAddress,
		PackagingRequirements:      req.PackagingRequirements,
		SupplierLocationPreference: req.SupplierLocationPreference,
	}

	rfqs, err := h.facade.CreateBulkOrder(c.Request.Context(), order)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingRequester):
			fail(c, http.StatusBadRequest, "User ID is required to create a bulk order.")
		default:
			fail(c, http.StatusInternalServerError, "Failed to create bulk order.")
		}
		return
	}

	response := dto.CreateBulkOrderResponse{
		Success:   true,
		Message:   "Bulk order created and RFQ sent to relevant shops.",
		BulkOrder: toBulkOrderResponse(*order),
		RFQs:      make([]dto.RFQResponse, 0, len(rfqs)),
	}
	for _, rfq := range rfqs {
		response.RFQs = append(response.RFQs, toRFQResponse(rfq))
	}
	c.JSON(http.StatusCreated, response)
}

// SellerOrders handles GET /bulk-order/get-orders/:shopId.
func (h *BulkOrderHandler) SellerOrders(c *gin.Context) {
	shopID, ok := pathUUID(c, "shopId")
	if !ok {
		return
	}
	orders, err := h.facade.SellerOrders(c.Request.Context(), shopID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load orders.")
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, dto.StatusResponse{Success: false})
		return
	}

	response := dto.SellerOrdersResponse{Success: true, BulkOrders: make([]dto.SellerOrderResponse, 0, len(orders))}
	for _, order := range orders {
		response.BulkOrders = append(response.BulkOrders, toSellerOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// BuyerOrders handles GET /bulk-order/user-orders/:userId.
func (h *BulkOrderHandler) BuyerOrders(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	orders, err := h.facade.BuyerOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load orders.")
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, dto.StatusResponse{Success: false})
		return
	}

	response := dto.BuyerOrdersResponse{Success: true, BulkOrders: make([]dto.BulkOrderResponse, 0, len(orders))}
	for _, order := range orders {
		response.BulkOrders = append(response.BulkOrders, toBulkOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// ConfirmPayment handles POST /bulk-order/confirm-payment/:rfqId.
func (h *BulkOrderHandler) ConfirmPayment(c *gin.Context) {
	rfqID, ok := pathUUID(c, "rfqId")
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	_, rfq, err := h.facade.ConfirmPayment(c.Request.Context(), rfqID, req.PaymentInfo)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, http.StatusNotFound, "RFQ not found")
		case errors.Is(err, domainErrors.ErrOfferAccepted):
			fail(c, http.StatusBadRequest, "This offer has already been accepted.")
		default:
			fail(c, http.StatusInternalServerError, "Failed to confirm payment.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.PaymentConfirmedResponse{
		Message: "Payment confirmed and offer accepted.",
		RFQ:     toRFQResponse(*rfq),
	})
}

// ProcessingOrders handles GET /bulk-order/user-processing-orders/:userId.
func (h *BulkOrderHandler) ProcessingOrders(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	orders, err := h.facade.ProcessingOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load orders.")
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusOK, dto.ProcessingOrdersResponse{
			Success:          true,
			ProcessingOrders: []dto.ProcessingOrderResponse{},
			Message:          "No processing orders found for this user",
		})
		return
	}

	response := dto.ProcessingOrdersResponse{Success: true, ProcessingOrders: make([]dto.ProcessingOrderResponse, 0, len(orders))}
	for _, order := range orders {
		entry := dto.ProcessingOrderResponse{
			BulkOrder: toBulkOrderResponse(order.BulkOrder),
			Status:    string(order.BulkOrder.Status),
		}
		if order.Offer != nil {
			block := &dto.AcceptedOfferBlock{RFQResponse: toRFQResponse(*order.Offer)}
			if order.Shop != nil {
				shop := toShopResponse(*order.Shop)
				block.Shop = &shop
			}
			entry.OfferDetails = block
		}
		response.ProcessingOrders = append(response.ProcessingOrders, entry)
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /bulk-order/update-order-status/:orderId.
func (h *BulkOrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := pathUUID(c, "orderId")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, model.BulkOrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderStatus):
			fail(c, http.StatusBadRequest, "Invalid status value")
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, http.StatusNotFound, "Bulk order not found")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update order status.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.StatusUpdateResponse{
		Message:   fmt.Sprintf("Order status updated to %s", order.Status),
		BulkOrder: toBulkOrderResponse(*order),
	})
}

// Delete handles DELETE /bulk-order/delete/:id.
func (h *BulkOrderHandler) Delete(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteBulkOrder(c.Request.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			fail(c, http.StatusNotFound, "Bulk order not found.")
		case errors.Is(err, domainErrors.ErrOfferAccepted):
			fail(c, http.StatusBadRequest, "Cannot delete bulk order as an offer has already been accepted.")
		default:
			fail(c, http.StatusInternalServerError, "Failed to delete bulk order.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Bulk order and associated RFQs deleted successfully.",
	})
}
