package routes

import (
	"log"
	"os"
	"strconv"

	_ "dealflow/docs" // This will be auto-generated
	"dealflow/internal/adapter/http/handlers"
	repository2 "dealflow/internal/adapter/persistence/repository"
	"dealflow/internal/infrastructure/database"
	"dealflow/internal/infrastructure/payments"
	"dealflow/internal/usecase"
	"dealflow/internal/usecase/interfaces"

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

	stepRepo := repository2.NewStepDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	dealRepo := repository2.NewDealDynamoRepository(ddb)

	transactionUseCase := usecase.NewTransactionUseCase(stepRepo, contractRepo, dealRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo)
	dealUseCase := usecase.NewDealUseCase(dealRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	earnestUseCase := usecase.NewEarnestDepositUseCase(transactionUseCase, stepRepo, paymentGateway)

	transactionHandler := handlers.NewTransactionHandler(transactionUseCase, earnestUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	dealHandler := handlers.NewDealHandler(dealUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDealRoutes(v1, dealHandler, transactionHandler, contractHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
