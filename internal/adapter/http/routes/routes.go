package routes

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "hlc_marketplace/docs"
	"hlc_marketplace/internal/adapter/http/handlers"
	"hlc_marketplace/internal/adapter/persistence/repository"
	"hlc_marketplace/internal/infrastructure/database"
	"hlc_marketplace/internal/infrastructure/payments"
	"hlc_marketplace/internal/usecase"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	defaultPort = 8080

	listingStoreDynamoDB = "dynamodb"
	listingStorePostgres = "postgres"
)

// Run wires the application from the environment and starts the server.
func Run() {
	ctx := context.Background()

	uc, err := buildPromotionPaymentUseCase(ctx)
	if err != nil {
		zap.S().Fatalw("[payment][routes] failed to wire application", "err", err)
	}

	router := NewRouter(handlers.NewPromotionPaymentHandler(uc))
	addr := ":" + strconv.Itoa(port())
	zap.S().Infow("[payment][routes] listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		zap.S().Fatalw("[payment][routes] failed to startup the application", "err", err)
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(promotionHandler *handlers.PromotionPaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, promotionHandler)
	return router
}

func buildPromotionPaymentUseCase(ctx context.Context) (*usecase.PromotionPaymentUseCase, error) {
	gateway, err := payments.NewGatewayFromEnv()
	if err != nil {
		return nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}

	var listings interfaces.IListingStore
	switch store := strings.ToLower(strings.TrimSpace(os.Getenv("LISTING_STORE"))); store {
	case "", listingStoreDynamoDB:
		listings = repository.NewListingDynamoRepository(ddb)
	case listingStorePostgres:
		db, err := database.ConnectPostgres(ctx, os.Getenv("DATABASE_URL"))
		if err != nil {
			return nil, err
		}
		listings = repository.NewListingPostgresRepository(db)
	default:
		return nil, fmt.Errorf("unsupported listing store: %s", store)
	}

	zap.S().Infow("[payment][routes] application wired", "provider", gateway.Name(), "listing_store", fmt.Sprintf("%T", listings))
	return usecase.NewPromotionPaymentUseCase(
		gateway,
		listings,
		repository.NewPromotionTierFileRepository(""),
		usecase.WithPaymentRecords(repository.NewPaymentRecordDynamoRepository(ddb)),
	), nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.S().Errorw("[payment][routes] recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func port() int {
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		return p
	}
	return defaultPort
}
