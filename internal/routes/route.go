package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fmhevents/elation/internal/container"
	"github.com/fmhevents/elation/internal/handlers"
	"github.com/fmhevents/elation/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CurrentUser(c.SessionStore, c.UserRepo, c.Config.SessionSecret, c.Logger))

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/uploads", c.Uploader.Dir())
	r.Static("/static", "web/static")

	// Health check
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":  "OK",
			"service": "elation-api",
		})
	})

	// Public site
	r.GET("/", handlers.HomePage(c.PortfolioService, c.CatalogService))
	r.GET("/services", handlers.ServicesPage(c.CatalogService, c.PackageService))
	r.GET("/portfolio", handlers.PortfolioPage(c.PortfolioService, c.AboutService))
	r.GET("/about", handlers.AboutPage(c.AboutService))
	r.GET("/contact", handlers.ContactPage())
	r.POST("/contact", handlers.SubmitContact(c.ContactService))
	r.POST("/booking", handlers.SubmitBooking(c.BookingService))

	authRoutes := r.Group("/auth")
	{
		authRoutes.GET("/login", handlers.LoginPage())
		authRoutes.POST("/login", handlers.Login(c.AuthService, c.Config))
		authRoutes.GET("/signup", handlers.SignupPage())
		authRoutes.POST("/signup", handlers.Signup(c.AuthService, c.Config))
		authRoutes.GET("/logout", handlers.Logout(c.AuthService, c.Config))
		authRoutes.POST("/logout", handlers.Logout(c.AuthService, c.Config))

		profileRoutes := authRoutes.Group("/profile")
		profileRoutes.Use(middleware.AuthRequired())
		{
			profileRoutes.GET("", handlers.Profile(c.AuthService))
			profileRoutes.POST("/update", handlers.UpdateProfile(c.AuthService))
			profileRoutes.POST("/picture", handlers.UploadProfilePicture(c.AuthService, c.Uploader))
		}
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/dashboard", handlers.DashboardPage(c.DashboardService, c.BookingService, c.ContactService))

		admin.GET("/services", handlers.AdminServicesPage(c.CatalogService))
		admin.POST("/services", handlers.CreateService(c.CatalogService, c.Uploader))
		admin.GET("/services/:id", handlers.GetService(c.CatalogService))
		admin.PUT("/services/:id", handlers.UpdateService(c.CatalogService, c.Uploader))
		admin.DELETE("/services/:id", handlers.DeleteService(c.CatalogService))

		admin.GET("/portfolio", handlers.AdminPortfolioPage(c.PortfolioService))
		admin.POST("/portfolio", handlers.CreatePortfolio(c.PortfolioService, c.Uploader))
		admin.GET("/portfolio/:id", handlers.GetPortfolio(c.PortfolioService))
		admin.PUT("/portfolio/:id", handlers.UpdatePortfolio(c.PortfolioService, c.Uploader))
		admin.DELETE("/portfolio/:id", handlers.DeletePortfolio(c.PortfolioService))

		admin.GET("/bookings", handlers.AdminBookingsPage(c.BookingService))
		admin.GET("/bookings/:id", handlers.GetBooking(c.BookingService))
		admin.PUT("/bookings/:id/status", handlers.UpdateBookingStatus(c.BookingService))

		admin.GET("/messages", handlers.AdminMessagesPage(c.ContactService))
		admin.GET("/messages/:id", handlers.GetMessage(c.ContactService))
		admin.PUT("/messages/:id/status", handlers.UpdateMessageStatus(c.ContactService))

		admin.GET("/packages", handlers.AdminPackagesPage(c.PackageService))
		admin.POST("/packages", handlers.SavePackage(c.PackageService))
		admin.GET("/packages/:id", handlers.GetPackage(c.PackageService))

		admin.GET("/about", handlers.AdminAboutPage(c.AboutService))
		admin.POST("/about", handlers.UpdateAbout(c.AboutService))
		admin.POST("/upload-team-photo", handlers.UploadTeamPhoto(c.Uploader))

		admin.GET("/users", handlers.AdminUsersPage(c.AuthService))
	}

	return r
}
