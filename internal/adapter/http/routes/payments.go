package routes

import (
	"hlc_marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments       = "/payments"
	PathPromotions     = "/promotions"
	PathPaymentRecords = "/payment-records"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PromotionPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/initialize", h.InitializePayment)
		payments.GET("/verify/:reference", h.VerifyPayment)
	}

	promotions := rg.Group(PathPromotions)
	{
		promotions.GET("/tiers", h.ListTiers)
		promotions.POST("/checkout", h.CheckoutPromotion)
	}

	rg.GET(PathPaymentRecords+"/:reference", h.GetPaymentRecord)
}
