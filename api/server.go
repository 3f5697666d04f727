package api

import (
	"fmt"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/geocode"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/beracah/beracah-BE/internal/mailer"
	"github.com/beracah/beracah-BE/internal/storage"
	"github.com/beracah/beracah-BE/internal/token"
	"github.com/beracah/beracah-BE/internal/util"
	"github.com/beracah/beracah-BE/internal/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"resty.dev/v3"
)

type Server struct {
	router          *gin.Engine
	dbStore         db.Store
	fileStore       storage.FileStore
	tokenMaker      token.Maker
	config          *util.Config
	mailService     *mailer.GmailSender
	taskDistributor worker.TaskDistributor
	deliveryService lalamove.DeliveryProvider
	geocodeClient   *geocode.Client
	eventSender     event.EventSender
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(
	store db.Store,
	redisDb *redis.Client,
	taskDistributor worker.TaskDistributor,
	config *util.Config,
	mailService *mailer.GmailSender,
	deliveryService lalamove.DeliveryProvider,
	eventSender event.EventSender,
) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	var fileStore storage.FileStore
	if config.CloudinaryURL != "" {
		fileStore = storage.NewCloudinaryStore(config.CloudinaryURL)
		log.Info().Msg("Cloudinary store created successfully ✅")
	}

	restyClient := resty.New()
	geocodeClient := geocode.NewClient(restyClient, redisDb, config.GeocodeBaseURL)
	log.Info().Msg("Geocode client created successfully ✅")

	server := &Server{
		dbStore:         store,
		tokenMaker:      tokenMaker,
		config:          config,
		fileStore:       fileStore,
		mailService:     mailService,
		taskDistributor: taskDistributor,
		deliveryService: deliveryService,
		geocodeClient:   geocodeClient,
		eventSender:     eventSender,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	siteCORS := cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// The delivery endpoints are called straight from the storefront widget,
	// which may be embedded anywhere, so they answer to any origin.
	deliveryCORS := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	})

	v1 := router.Group("/v1", siteCORS)

	v1.POST("/auth/admin/login", server.loginAdmin)

	deliveryGroup := router.Group("/v1/delivery", deliveryCORS)
	{
		deliveryGroup.POST("/webhook", server.handleDeliveryWebhook)
		deliveryGroup.POST("/:action", server.handleDeliveryAction)
	}

	orderGroup := v1.Group("/orders")
	{
		orderGroup.POST("", server.createOrder)

		orderGroup.Use(adminAuthMiddleware(server.tokenMaker))
		orderGroup.GET("", server.listOrders)
		orderGroup.GET("/stats", server.getOrderStats)
		orderGroup.GET("/stream", server.streamOrderEvents)
		orderGroup.GET("/:orderID", server.getOrderDetails)
		orderGroup.PATCH("/bulk-status", server.bulkUpdateOrderStatus)
		orderGroup.PATCH("/:orderID/status", server.updateOrderStatus)
	}

	menuGroup := v1.Group("/menu-items")
	{
		menuGroup.GET("", server.listMenuItems)
		menuGroup.GET("/by-slug/:slug", server.getMenuItemBySlug)

		menuGroup.Use(adminAuthMiddleware(server.tokenMaker))
		menuGroup.POST("", server.createMenuItem)
		menuGroup.PATCH("/:itemID", server.updateMenuItem)
		menuGroup.PATCH("/:itemID/image", server.updateMenuItemImage)
		menuGroup.DELETE("/:itemID", server.deleteMenuItem)
	}

	branchGroup := v1.Group("/branches")
	{
		branchGroup.GET("", server.listBranches)

		branchGroup.Use(adminAuthMiddleware(server.tokenMaker))
		branchGroup.POST("", server.createBranch)
		branchGroup.PATCH("/:branchID", server.updateBranch)
		branchGroup.DELETE("/:branchID", server.deleteBranch)
	}

	settingGroup := v1.Group("/settings")
	{
		settingGroup.GET("", server.listSiteSettings)

		settingGroup.Use(adminAuthMiddleware(server.tokenMaker))
		settingGroup.PUT("/:key", server.upsertSiteSetting)
	}

	v1.GET("/geocode", server.searchAddresses)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
