package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/craftlink/marketplace/internal/config"
	"github.com/craftlink/marketplace/internal/server/http/handlers"
	"github.com/craftlink/marketplace/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	pingHandler := handlers.NewPingHandler(health)
	bulkOrderHandler := handlers.NewBulkOrderHandler(facade, cfg)
	offerHandler := handlers.NewOfferHandler(facade)

	engine.GET("/ping", pingHandler.Ping)

	bulkOrder := engine.Group("/bulk-order")
	bulkOrder.POST("/create", bulkOrderHandler.Create)
	bulkOrder.GET("/get-orders/:shopId", bulkOrderHandler.SellerOrders)
	bulkOrder.POST("/submit-offer/:rfqId", offerHandler.Submit)
	bulkOrder.GET("/user-orders/:userId", bulkOrderHandler.BuyerOrders)
	bulkOrder.GET("/offers/:bulkOrderId", offerHandler.List)
	bulkOrder.GET("/offer-details/:rfqId", offerHandler.Details)
	bulkOrder.POST("/confirm-payment/:rfqId", bulkOrderHandler.ConfirmPayment)
	bulkOrder.GET("/user-processing-orders/:userId", bulkOrderHandler.ProcessingOrders)
	bulkOrder.GET("/get-accepted-orders/:shopId", offerHandler.Accepted)
	bulkOrder.PUT("/update-order-status/:orderId", bulkOrderHandler.UpdateStatus)
	bulkOrder.DELETE("/delete/:id", bulkOrderHandler.Delete)
	bulkOrder.PUT("/update-offer/:rfqId", offerHandler.Update)
	bulkOrder.DELETE("/delete-offer/:rfqId", offerHandler.Delete)

	return engine
}
