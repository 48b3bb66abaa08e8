package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftlink/marketplace/internal/domain/model"
	"github.com/craftlink/marketplace/internal/server/http/dto"
)

// fail writes the generic failure envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.StatusResponse{Success: false, Message: message})
}

// pathUUID parses a uuid path parameter, answering 400 on garbage input.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid identifier.")
		return uuid.Nil, false
	}
	return id, true
}

func toBulkOrderResponse(order model.BulkOrder) dto.BulkOrderResponse {
	return dto.BulkOrderResponse{
		ID:                         order.ID,
		UserID:                     order.UserID,
		ProductName:                order.ProductName,
		Description:                order.Description,
		Quantity:                   order.Quantity,
		Category:                   order.Category,
		ReferenceImage:             order.ReferenceImage,
		Budget:                     order.Budget,
		DeliveryDeadline:           order.DeliveryDeadline,
		ShippingAddress:            order.ShippingAddress,
		PackagingRequirements:      order.PackagingRequirements,
		SupplierLocationPreference: order.SupplierLocationPreference,
		Status:                     string(order.Status),
		AcceptedOffer:              order.AcceptedOffer,
		PaymentInfo:                order.PaymentInfo,
		PaidAt:                     order.PaidAt,
		DeliveredAt:                order.DeliveredAt,
		CreatedAt:                  order.CreatedAt,
	}
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	value := d.Decimal
	return &value
}

func toRFQResponse(rfq model.RFQ) dto.RFQResponse {
	return dto.RFQResponse{
		ID:                rfq.ID,
		BulkOrderID:       rfq.BulkOrderID,
		ShopID:            rfq.ShopID,
		UserID:            rfq.UserID,
		Price:             nullDecimalPtr(rfq.Price),
		PricePerUnit:      nullDecimalPtr(rfq.PricePerUnit),
		DeliveryTime:      rfq.DeliveryTime,
		Terms:             rfq.Terms,
		Warranty:          rfq.Warranty,
		AvailableQuantity: rfq.AvailableQuantity,
		ExpirationDate:    rfq.ExpirationDate,
		PackagingDetails:  rfq.PackagingDetails,
		Status:            string(rfq.Status),
		CreatedAt:         rfq.CreatedAt,
	}
}

func toOfferTermsBlock(rfq model.RFQ) dto.OfferTermsBlock {
	return dto.OfferTermsBlock{
		Price:             nullDecimalPtr(rfq.Price),
		PricePerUnit:      nullDecimalPtr(rfq.PricePerUnit),
		DeliveryTime:      rfq.DeliveryTime,
		Terms:             rfq.Terms,
		Warranty:          rfq.Warranty,
		AvailableQuantity: rfq.AvailableQuantity,
		ExpirationDate:    rfq.ExpirationDate,
		PackagingDetails:  rfq.PackagingDetails,
		Status:            string(rfq.Status),
	}
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}
}

func toShopResponse(shop model.Shop) dto.ShopResponse {
	return dto.ShopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		Email:       shop.Email,
		PhoneNumber: shop.PhoneNumber,
	}
}

func toSellerOrderResponse(order model.SellerOrder) dto.SellerOrderResponse {
	return dto.SellerOrderResponse{
		RFQResponse: toRFQResponse(order.RFQ),
		BulkOrder:   toBulkOrderResponse(order.BulkOrder),
		User:        toUserResponse(order.Buyer),
		Offer:       toOfferTermsBlock(order.RFQ),
	}
}

func offerFromRequest(req dto.OfferRequest) model.Offer {
	offer := model.Offer{
		Price:             req.Price,
		DeliveryTime:      req.DeliveryTime,
		Terms:             req.Terms,
		Warranty:          req.Warranty,
		AvailableQuantity: req.AvailableQuantity,
		ExpirationDate:    req.ExpirationDate,
		PackagingDetails:  req.PackagingDetails,
	}
	if req.PricePerUnit != nil {
		offer.PricePerUnit.Decimal = *req.PricePerUnit
		offer.PricePerUnit.Valid = true
	}
	return offer
}
