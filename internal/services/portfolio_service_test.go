package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/validation"
)

func TestCreatePortfolioMergesImageSources(t *testing.T) {
	svc := NewPortfolioService(&fakePortfolioRepo{})

	created, err := svc.Create(context.Background(), PortfolioInput{
		EventName:      "Ahmed Wedding",
		Location:       "Lahore",
		FootCount:      300,
		UploadedImages: []string{"/uploads/stage.jpg"},
		ImageURLs:      "https://cdn.example.com/entry.jpg\nnot-a-url",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/stage.jpg", "https://cdn.example.com/entry.jpg"}, created.Images)
}

func TestCreatePortfolioTruncatesImagesAtCap(t *testing.T) {
	svc := NewPortfolioService(&fakePortfolioRepo{})

	urls := make([]string, 0, 9)
	for i := 0; i < 9; i++ {
		urls = append(urls, fmt.Sprintf("https://x.test/%d.jpg", i))
	}
	created, err := svc.Create(context.Background(), PortfolioInput{
		EventName:      "Ahmed Wedding",
		Location:       "Lahore",
		FootCount:      300,
		UploadedImages: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		ImageURLs:      strings.Join(urls, "\n"),
	})
	require.NoError(t, err)
	assert.Len(t, created.Images, models.MaxPortfolioImages)
	assert.Equal(t, "/uploads/a.jpg", created.Images[0])
}

func TestCreatePortfolioValidationFailure(t *testing.T) {
	svc := NewPortfolioService(&fakePortfolioRepo{})

	_, err := svc.Create(context.Background(), PortfolioInput{
		EventName: "Ahmed Wedding",
		FootCount: 300,
	})
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
}

func TestUpdatePortfolioRetainsImagesWhenNoneSupplied(t *testing.T) {
	svc := NewPortfolioService(&fakePortfolioRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, PortfolioInput{
		EventName:      "Ahmed Wedding",
		Location:       "Lahore",
		FootCount:      300,
		UploadedImages: []string{"/uploads/stage.jpg"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, PortfolioInput{
		EventName: "Ahmed Walima",
		Location:  "Lahore",
		FootCount: 450,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Walima", updated.EventName)
	assert.Equal(t, []string{"/uploads/stage.jpg"}, updated.Images)
}

func TestUpdatePortfolioReplacesImagesWhenSupplied(t *testing.T) {
	svc := NewPortfolioService(&fakePortfolioRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, PortfolioInput{
		EventName:      "Ahmed Wedding",
		Location:       "Lahore",
		FootCount:      300,
		UploadedImages: []string{"/uploads/stage.jpg"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, PortfolioInput{
		EventName: "Ahmed Wedding",
		Location:  "Lahore",
		FootCount: 300,
		ImageURLs: "https://cdn.example.com/new.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/new.jpg"}, updated.Images)
}
