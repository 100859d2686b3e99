package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/validation"
)

const fullDesc = "We transform your venue with florals, lighting, draping and stage design tailored to your event theme and your budget."

func TestCreateServiceMergesImageSources(t *testing.T) {
	svc := NewCatalogService(&fakeServiceRepo{})

	created, err := svc.Create(context.Background(), ServiceInput{
		Name:           "Decor",
		ShortDesc:      "Full venue decor",
		FullDesc:       fullDesc,
		Price:          50000,
		UploadedImages: []string{"/uploads/a.jpg"},
		ImageURLs:      "https://cdn.example.com/b.jpg\nnot-a-url",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.jpg", "https://cdn.example.com/b.jpg"}, created.Images)
}

func TestCreateServiceTruncatesImagesAtCap(t *testing.T) {
	svc := NewCatalogService(&fakeServiceRepo{})

	urls := strings.Join([]string{
		"https://x.test/1.jpg",
		"https://x.test/2.jpg",
		"https://x.test/3.jpg",
		"https://x.test/4.jpg",
	}, "\n")
	created, err := svc.Create(context.Background(), ServiceInput{
		Name:           "Decor",
		ShortDesc:      "Full venue decor",
		FullDesc:       fullDesc,
		Price:          50000,
		UploadedImages: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		ImageURLs:      urls,
	})
	require.NoError(t, err)
	assert.Len(t, created.Images, models.MaxServiceImages)
	assert.Equal(t, "/uploads/a.jpg", created.Images[0])
}

func TestCreateServiceValidationFailure(t *testing.T) {
	svc := NewCatalogService(&fakeServiceRepo{})

	_, err := svc.Create(context.Background(), ServiceInput{
		Name:      "Decor",
		ShortDesc: "Full venue decor",
		FullDesc:  "too short",
		Price:     50000,
	})
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateServiceRetainsImagesWhenNoneSupplied(t *testing.T) {
	svc := NewCatalogService(&fakeServiceRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, ServiceInput{
		Name:           "Decor",
		ShortDesc:      "Full venue decor",
		FullDesc:       fullDesc,
		Price:          50000,
		UploadedImages: []string{"/uploads/a.jpg"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ServiceInput{
		Name:      "Premium Decor",
		ShortDesc: "Full venue decor",
		FullDesc:  fullDesc,
		Price:     65000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Premium Decor", updated.Name)
	assert.Equal(t, []string{"/uploads/a.jpg"}, updated.Images)
}

func TestUpdateServiceReplacesImagesWhenSupplied(t *testing.T) {
	svc := NewCatalogService(&fakeServiceRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, ServiceInput{
		Name:           "Decor",
		ShortDesc:      "Full venue decor",
		FullDesc:       fullDesc,
		Price:          50000,
		UploadedImages: []string{"/uploads/a.jpg"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ServiceInput{
		Name:      "Decor",
		ShortDesc: "Full venue decor",
		FullDesc:  fullDesc,
		Price:     50000,
		ImageURLs: "https://cdn.example.com/new.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/new.jpg"}, updated.Images)
}

func TestDeleteServiceUnknownID(t *testing.T) {
	svc := NewCatalogService(&fakeServiceRepo{})
	err := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
