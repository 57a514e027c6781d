package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "glow_go/docs" // This will be auto-generated
	"glow_go/internal/adapter/http/handlers"
	repository2 "glow_go/internal/adapter/persistence/repository"
	"glow_go/internal/infrastructure/catalog"
	"glow_go/internal/infrastructure/database"
	"glow_go/internal/usecase"
	"glow_go/internal/usecase/interfaces"

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
	sessionRepo := repository2.NewSessionFileRepository()
	bookingRepo := newBookingRepository()
	providerCatalog := catalog.NewStaticCatalog()

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, sessionRepo, providerCatalog)
	providerUseCase := usecase.NewProviderUseCase(providerCatalog)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase, sessionUseCase)
	providerHandler := handlers.NewProviderHandler(providerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, sessionHandler, providerHandler, bookingHandler)
}

// newBookingRepository picks the booking store backend. The local JSON file
// store is the default; BOOKINGS_BACKEND=dynamodb selects the hosted table.
func newBookingRepository() interfaces.IBookingRepository {
	if strings.EqualFold(os.Getenv("BOOKINGS_BACKEND"), "dynamodb") {
		log.Printf("[routes] booking store backend=dynamodb")
		return repository2.NewBookingDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[routes] booking store backend=file")
	return repository2.NewBookingFileRepository()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
