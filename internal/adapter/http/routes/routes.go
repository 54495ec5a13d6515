package routes

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "obralink/docs"
	"obralink/internal/adapter/http/handlers"
	"obralink/internal/adapter/persistence/repository"
	"obralink/internal/adapter/persistence/store"
	"obralink/internal/infrastructure/database"
	"obralink/internal/usecase"
)

var router = gin.Default()

const defaultPort = "8080"

// Run wires the full dependency graph and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	collections := store.NewCollectionStore(ddb)

	userRepo := repository.NewUserStoreRepository(collections)
	serviceRepo := repository.NewServiceStoreRepository(collections)
	quoteRepo := repository.NewQuoteStoreRepository(collections)
	supplyRepo := repository.NewSupplyStoreRepository(collections)
	packRepo := repository.NewPackStoreRepository(collections)

	secret := jwtSecret()

	authUseCase := usecase.NewAuthUseCase(userRepo, secret)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, quoteRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, serviceRepo)
	supplyUseCase := usecase.NewSupplyUseCase(supplyRepo)
	packUseCase := usecase.NewPackUseCase(packRepo, serviceRepo)
	stateUseCase := usecase.NewStateUseCase(userRepo, serviceRepo, quoteRepo, supplyRepo, packRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	supplyHandler := handlers.NewSupplyHandler(supplyUseCase)
	packHandler := handlers.NewPackHandler(packUseCase)
	stateHandler := handlers.NewStateHandler(stateUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, secret, authHandler, serviceHandler, quoteHandler, supplyHandler, packHandler, stateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	log.Printf("[routes] JWT_SECRET not set, using insecure development secret")
	return []byte("dev-secret")
}
