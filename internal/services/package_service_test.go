package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmhevents/elation/internal/validation"
)

func TestSavePackageUpsertsByName(t *testing.T) {
	svc := NewPackageService(newFakePackageRepo())
	ctx := context.Background()

	first, err := svc.Save(ctx, PackageInput{
		Name:        "premium",
		DisplayName: "Premium",
		Price:       "PKR 250,000",
		Features:    json.RawMessage(`["Decor","Catering"]`),
	})
	require.NoError(t, err)

	second, err := svc.Save(ctx, PackageInput{
		Name:        "premium",
		DisplayName: "Premium Plus",
		Price:       "PKR 300,000",
		Features:    json.RawMessage(`["Decor","Catering","Photography"]`),
		IsFeatured:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Premium Plus", second.DisplayName)
	assert.True(t, second.IsFeatured)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSavePackageRejectsUnknownTier(t *testing.T) {
	svc := NewPackageService(newFakePackageRepo())

	_, err := svc.Save(context.Background(), PackageInput{
		Name:        "platinum",
		DisplayName: "Platinum",
		Price:       "PKR 500,000",
	})
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
}

func TestParseFeaturesJSONList(t *testing.T) {
	features := parseFeatures(json.RawMessage(`["Decor", " Catering ", ""]`))
	assert.Equal(t, []string{"Decor", "Catering"}, features)
}

func TestParseFeaturesCommaString(t *testing.T) {
	features := parseFeatures(json.RawMessage(`"Decor, Catering, , Photography"`))
	assert.Equal(t, []string{"Decor", "Catering", "Photography"}, features)
}

func TestParseFeaturesEmpty(t *testing.T) {
	assert.Empty(t, parseFeatures(nil))
	assert.Empty(t, parseFeatures(json.RawMessage(`null`)))
}
