package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "procurehub/docs" // This will be auto-generated
	"procurehub/internal/adapter/http/handlers"
	repository2 "procurehub/internal/adapter/persistence/repository"
	"procurehub/internal/infrastructure/database"
	"procurehub/internal/infrastructure/pdf"
	"procurehub/internal/usecase"

	"github.com/gin-contrib/cors"
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
	ddb := database.ConnectDynamoDB()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	supplierRepo := repository2.NewSupplierDynamoRepository(ddb)
	itemRepo := repository2.NewItemDynamoRepository(ddb)
	requisitionRepo := repository2.NewRequisitionDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	receiptRepo := repository2.NewReceiptDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)

	authUseCase := usecase.NewAuthUseCase(userRepo)
	supplierUseCase := usecase.NewSupplierUseCase(supplierRepo)
	itemUseCase := usecase.NewItemUseCase(itemRepo)
	requisitionUseCase := usecase.NewRequisitionUseCase(requisitionRepo, sequenceRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, supplierRepo, sequenceRepo, pdf.NewPurchaseOrderRenderer())
	receiptUseCase := usecase.NewReceiptUseCase(receiptRepo, orderRepo, sequenceRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, orderRepo, sequenceRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(supplierRepo, itemRepo, orderRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	supplierHandler := handlers.NewSupplierHandler(supplierUseCase)
	itemHandler := handlers.NewItemHandler(itemUseCase)
	requisitionHandler := handlers.NewRequisitionHandler(requisitionUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	receiptHandler := handlers.NewReceiptHandler(receiptUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addProcurementRoutes(api, authHandler, supplierHandler, itemHandler, requisitionHandler, orderHandler, receiptHandler, invoiceHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = strings.Split(origins, ",")
	return cfg
}
