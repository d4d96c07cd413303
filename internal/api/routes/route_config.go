package routes

import (
	"DermaGlow-Backend/internal/api/handlers"
	"DermaGlow-Backend/internal/middleware"
	"DermaGlow-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	AnalysisHandler     handlers.AnalysisHandler
	ProductHandler      handlers.ProductHandler
	CartHandler         handlers.CartHandler
	OrderHandler        handlers.OrderHandler
	ConsultationHandler handlers.ConsultationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Analysis()
	c.Products()
	c.Cart()
	c.Orders()
	c.Consultations()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Analysis() {
	analyses := c.App.Group("/api/v1/analyses", c.Middleware.AuthMiddleware(c.JWTService))

	analyses.Post("", c.AnalysisHandler.AnalyzeSkin)
	analyses.Get("/history", c.AnalysisHandler.GetHistory)
	analyses.Get("/dashboard", c.AnalysisHandler.GetDashboard)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")

	products.Get("", c.ProductHandler.GetProducts)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))

	cart.Post("", c.CartHandler.AddToCart)
	cart.Get("", c.CartHandler.GetCartItems)
	cart.Put("/:id", c.CartHandler.UpdateCartItem)
	cart.Delete("/:id", c.CartHandler.RemoveCartItem)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))

	orders.Post("", c.OrderHandler.CreateOrder)
	orders.Get("", c.OrderHandler.GetOrders)
}

func (c *Config) Consultations() {
	consultations := c.App.Group("/api/v1/consultations")

	consultations.Get("/doctors", c.ConsultationHandler.GetDoctors)
	consultations.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ConsultationHandler.BookConsultation)
	consultations.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.ConsultationHandler.GetBookings)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
