package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "roadassist/docs" // This will be auto-generated
	"roadassist/internal/adapter/http/handlers"
	repository2 "roadassist/internal/adapter/persistence/repository"
	"roadassist/internal/infrastructure/database"
	"roadassist/internal/infrastructure/payments"
	"roadassist/internal/usecase"
	"roadassist/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	paymentRepo, pricingRepo := buildRepositories()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	pricingUseCase := usecase.NewPricingUseCase(pricingRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, pricingRepo, paymentGateway)

	if err := pricingUseCase.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed pricing configs: %v", err)
	}

	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addAdminRoutes(v1, paymentHandler, pricingHandler)
}

// buildRepositories picks the persistence backend: DynamoDB by default,
// in-memory stores when PERSISTENCE_MODE=memory (local runs and tests).
func buildRepositories() (interfaces.IPaymentRepository, interfaces.IPricingConfigRepository) {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("PERSISTENCE_MODE")))
	if mode == "memory" {
		log.Printf("[routes] in-memory persistence enabled")
		return repository2.NewPaymentMemoryRepository(), repository2.NewPricingConfigMemoryRepository()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewPaymentDynamoRepository(ddb), repository2.NewPricingConfigDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
