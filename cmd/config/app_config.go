package config

import (
	"os"
	"time"

	"DermaGlow-Backend/internal/api/handlers"
	"DermaGlow-Backend/internal/api/routes"
	"DermaGlow-Backend/internal/middleware"
	"DermaGlow-Backend/internal/utils"
	"DermaGlow-Backend/internal/utils/storage"
	"DermaGlow-Backend/pkg/analysis"
	"DermaGlow-Backend/pkg/cart"
	"DermaGlow-Backend/pkg/consultation"
	"DermaGlow-Backend/pkg/jwt"
	"DermaGlow-Backend/pkg/order"
	"DermaGlow-Backend/pkg/product"
	"DermaGlow-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Karachi",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	analysisRepository := analysis.NewAnalysisRepository(db)
	productRepository := product.NewProductRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)
	consultationRepository := consultation.NewConsultationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	analysisService := analysis.NewAnalysisService(analysisRepository, s3, utils.GetConfig("ANALYSIS_API_URL"))
	productService := product.NewProductService(productRepository)
	cartService := cart.NewCartService(cartRepository, productRepository)
	orderService := order.NewOrderService(orderRepository, cartRepository)
	consultationService := consultation.NewConsultationService(consultationRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	consultationHandler := handlers.NewConsultationHandler(consultationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		AnalysisHandler:     analysisHandler,
		ProductHandler:      productHandler,
		CartHandler:         cartHandler,
		OrderHandler:        orderHandler,
		ConsultationHandler: consultationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
