package routes

import (
	"log"
	"os"

	_ "atelier_auto/docs" // This will be auto-generated
	"atelier_auto/internal/adapter/http/handlers"
	repository2 "atelier_auto/internal/adapter/persistence/repository"
	"atelier_auto/internal/infrastructure/assets"
	"atelier_auto/internal/infrastructure/database"
	"atelier_auto/internal/infrastructure/pdf"
	"atelier_auto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	documentUseCase := usecase.NewDocumentUseCase(estimateRepo, pdf.NewRenderer(), assets.NewFileLetterheadProvider())

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)

	// Public routes; auth sits in front of this service.
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, documentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
