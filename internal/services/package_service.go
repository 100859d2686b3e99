package services

import (
	"context"
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/validation"
)

type PackageService struct {
	packages models.PackageRepo
}

func NewPackageService(packages models.PackageRepo) *PackageService {
	return &PackageService{
		packages: packages,
	}
}

// PackageInput accepts features either as a JSON list or as a single
// comma-separated string, matching what the admin form submits.
type PackageInput struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Price       string          `json:"price"`
	Features    json.RawMessage `json:"features"`
	IsFeatured  bool            `json:"isFeatured"`
}

// Save upserts by package name: one document per tier.
func (ps *PackageService) Save(ctx context.Context, input PackageInput) (*models.Package, error) {
	pkg := &models.Package{
		Name:        strings.TrimSpace(input.Name),
		DisplayName: strings.TrimSpace(input.DisplayName),
		Price:       strings.TrimSpace(input.Price),
		Features:    parseFeatures(input.Features),
		IsFeatured:  input.IsFeatured,
	}
	if result := validation.Struct(pkg); !result.OK() {
		return nil, &validation.Error{Result: result}
	}
	return ps.packages.UpsertPackage(ctx, pkg)
}

func (ps *PackageService) List(ctx context.Context) ([]*models.Package, error) {
	return ps.packages.ListPackages(ctx)
}

func (ps *PackageService) Get(ctx context.Context, id primitive.ObjectID) (*models.Package, error) {
	return ps.packages.GetPackageByID(ctx, id)
}

func parseFeatures(raw json.RawMessage) []string {
	features := []string{}
	if len(raw) == 0 {
		return features
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, f := range list {
			if f = strings.TrimSpace(f); f != "" {
				features = append(features, f)
			}
		}
		return features
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		for _, f := range strings.Split(joined, ",") {
			if f = strings.TrimSpace(f); f != "" {
				features = append(features, f)
			}
		}
	}
	return features
}
