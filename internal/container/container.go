package container

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fmhevents/elation/internal/config"
	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/services"
	"github.com/fmhevents/elation/internal/session"
	"github.com/fmhevents/elation/internal/upload"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	SessionStore  session.Store
	Uploader      *upload.Uploader

	Repo     *models.MongodbRepo
	UserRepo models.UserRepo

	AuthService      *services.AuthService
	BookingService   *services.BookingService
	ContactService   *services.ContactService
	CatalogService   *services.CatalogService
	PortfolioService *services.PortfolioService
	PackageService   *services.PackageService
	AboutService     *services.AboutService
	DashboardService *services.DashboardService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	uploader *upload.Uploader,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient)
	sessions := session.NewMemoryStore(session.TTL)

	authService := services.NewAuthService(repo, sessions)
	bookingService := services.NewBookingService(repo, repo)
	contactService := services.NewContactService(repo)
	catalogService := services.NewCatalogService(repo)
	portfolioService := services.NewPortfolioService(repo)
	packageService := services.NewPackageService(repo)
	aboutService := services.NewAboutService(repo)
	dashboardService := services.NewDashboardService(repo, repo, repo, repo)

	return &Container{
		Logger:           logger,
		Config:           cfg,
		MongoDBClient:    mongoDBClient,
		SessionStore:     sessions,
		Uploader:         uploader,
		Repo:             repo,
		UserRepo:         repo,
		AuthService:      authService,
		BookingService:   bookingService,
		ContactService:   contactService,
		CatalogService:   catalogService,
		PortfolioService: portfolioService,
		PackageService:   packageService,
		AboutService:     aboutService,
		DashboardService: dashboardService,
	}
}
