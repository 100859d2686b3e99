package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/helpers"
	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/validation"
)

// CatalogService manages the offered event services shown on the site.
type CatalogService struct {
	services models.ServiceRepo
}

func NewCatalogService(services models.ServiceRepo) *CatalogService {
	return &CatalogService{
		services: services,
	}
}

// ServiceInput is the admin form payload: uploaded file paths arrive
// separately from the newline-separated external URL block.
type ServiceInput struct {
	Name           string
	ShortDesc      string
	FullDesc       string
	Price          float64
	ImageURLs      string
	UploadedImages []string
}

func (ci *CatalogService) Create(ctx context.Context, input ServiceInput) (*models.Service, error) {
	service := &models.Service{
		Name:      strings.TrimSpace(input.Name),
		ShortDesc: strings.TrimSpace(input.ShortDesc),
		FullDesc:  strings.TrimSpace(input.FullDesc),
		Price:     input.Price,
		Images:    helpers.MergeImageSources(input.UploadedImages, input.ImageURLs, models.MaxServiceImages),
	}
	if result := validation.Struct(service); !result.OK() {
		return nil, &validation.Error{Result: result}
	}
	return ci.services.CreateService(ctx, service)
}

// Update replaces the stored fields; when neither uploads nor URLs were
// supplied the previously stored images are retained unchanged.
func (ci *CatalogService) Update(ctx context.Context, id primitive.ObjectID, input ServiceInput) (*models.Service, error) {
	images := helpers.MergeImageSources(input.UploadedImages, input.ImageURLs, models.MaxServiceImages)
	if len(images) == 0 {
		existing, err := ci.services.GetServiceByID(ctx, id)
		if err != nil {
			return nil, err
		}
		images = existing.Images
	}

	service := &models.Service{
		Name:      strings.TrimSpace(input.Name),
		ShortDesc: strings.TrimSpace(input.ShortDesc),
		FullDesc:  strings.TrimSpace(input.FullDesc),
		Price:     input.Price,
		Images:    images,
	}
	if result := validation.Struct(service); !result.OK() {
		return nil, &validation.Error{Result: result}
	}
	return ci.services.UpdateService(ctx, id, service)
}

func (ci *CatalogService) List(ctx context.Context, search string) ([]*models.Service, error) {
	return ci.services.ListServices(ctx, search)
}

func (ci *CatalogService) Get(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	return ci.services.GetServiceByID(ctx, id)
}

// Delete is an unconditional hard delete. Bookings referencing the service
// keep their dangling reference; that gap is documented, not guarded.
func (ci *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return ci.services.DeleteService(ctx, id)
}
