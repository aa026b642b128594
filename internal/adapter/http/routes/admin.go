package routes

import (
	"roadassist/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathAdmin    = "/admin"
	PathPricing  = "/pricing"
)

// addPaymentRoutes wires the payment lifecycle: creation, the online
// gateway branch with its webhook callbacks, and the COD collection.
func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.POST("/:payment_id/initiate", paymentHandler.InitiatePayment)
		payments.POST("/:payment_id/webhook/confirm", paymentHandler.ConfirmPayment)
		payments.POST("/:payment_id/webhook/fail", paymentHandler.FailPayment)
		payments.POST("/:payment_id/refund", paymentHandler.RefundPayment)
		payments.POST("/:payment_id/cod/collect", paymentHandler.CollectCOD)
	}
}

// addAdminRoutes wires the admin surface: payment listing, stats and COD
// settlement, the global fare defaults, and the per-vehicle catalogues.
func addAdminRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, pricingHandler *handlers.PricingHandler) {
	admin := rg.Group(PathAdmin)

	adminPayments := admin.Group(PathPayments)
	{
		adminPayments.GET("", paymentHandler.ListPayments)
		adminPayments.GET("/stats", paymentHandler.PaymentStats)
		adminPayments.POST("/settle/:service_request_id", paymentHandler.SettlePayment)
		adminPayments.POST("/settle-all", paymentHandler.SettleAllPayments)
		adminPayments.GET("/pricing", pricingHandler.GetGlobalPricing)
		adminPayments.PUT("/pricing", pricingHandler.UpdateGlobalPricing)
	}

	adminPricing := admin.Group(PathPricing)
	{
		adminPricing.GET("", pricingHandler.GetAllConfigs)
		adminPricing.GET("/:vehicle_type", pricingHandler.GetConfig)
		adminPricing.PUT("/:vehicle_type", pricingHandler.UpdateConfig)

		adminPricing.POST("/:vehicle_type/issues", pricingHandler.AddIssue)
		adminPricing.PUT("/:vehicle_type/issues/:issue_id", pricingHandler.UpdateIssue)
		adminPricing.DELETE("/:vehicle_type/issues/:issue_id", pricingHandler.DeleteIssue)

		adminPricing.POST("/:vehicle_type/emergency-services", pricingHandler.AddEmergencyService)
		adminPricing.PUT("/:vehicle_type/emergency-services/:service_id", pricingHandler.UpdateEmergencyService)
		adminPricing.DELETE("/:vehicle_type/emergency-services/:service_id", pricingHandler.DeleteEmergencyService)
	}
}
