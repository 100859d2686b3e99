package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/helpers"
	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/validation"
)

type PortfolioService struct {
	portfolio models.PortfolioRepo
}

func NewPortfolioService(portfolio models.PortfolioRepo) *PortfolioService {
	return &PortfolioService{
		portfolio: portfolio,
	}
}

type PortfolioInput struct {
	EventName      string
	Location       string
	Timing         string
	FootCount      int
	Description    string
	ImageURLs      string
	UploadedImages []string
}

func (ps *PortfolioService) Create(ctx context.Context, input PortfolioInput) (*models.Portfolio, error) {
	item := &models.Portfolio{
		EventName:   strings.TrimSpace(input.EventName),
		Location:    strings.TrimSpace(input.Location),
		Timing:      strings.TrimSpace(input.Timing),
		FootCount:   input.FootCount,
		Description: strings.TrimSpace(input.Description),
		Images:      helpers.MergeImageSources(input.UploadedImages, input.ImageURLs, models.MaxPortfolioImages),
	}
	if result := validation.Struct(item); !result.OK() {
		return nil, &validation.Error{Result: result}
	}
	return ps.portfolio.CreatePortfolio(ctx, item)
}

func (ps *PortfolioService) Update(ctx context.Context, id primitive.ObjectID, input PortfolioInput) (*models.Portfolio, error) {
	images := helpers.MergeImageSources(input.UploadedImages, input.ImageURLs, models.MaxPortfolioImages)
	if len(images) == 0 {
		existing, err := ps.portfolio.GetPortfolioByID(ctx, id)
		if err != nil {
			return nil, err
		}
		images = existing.Images
	}

	item := &models.Portfolio{
		EventName:   strings.TrimSpace(input.EventName),
		Location:    strings.TrimSpace(input.Location),
		Timing:      strings.TrimSpace(input.Timing),
		FootCount:   input.FootCount,
		Description: strings.TrimSpace(input.Description),
		Images:      images,
	}
	if result := validation.Struct(item); !result.OK() {
		return nil, &validation.Error{Result: result}
	}
	return ps.portfolio.UpdatePortfolio(ctx, id, item)
}

func (ps *PortfolioService) List(ctx context.Context, search string) ([]*models.Portfolio, error) {
	return ps.portfolio.ListPortfolio(ctx, search)
}

func (ps *PortfolioService) Get(ctx context.Context, id primitive.ObjectID) (*models.Portfolio, error) {
	return ps.portfolio.GetPortfolioByID(ctx, id)
}

func (ps *PortfolioService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return ps.portfolio.DeletePortfolio(ctx, id)
}

func (ps *PortfolioService) Recent(ctx context.Context, limit int) ([]*models.Portfolio, error) {
	return ps.portfolio.RecentPortfolio(ctx, limit)
}
