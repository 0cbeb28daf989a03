// internal/services/projection_test.go
package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Ashraf-Atef1/full-stack-task/internal/models"
)

func projectionFixture() *models.Apartment {
	downPayment := 500000.0
	return &models.Apartment{
		ID:              7,
		ReferenceNo:     "NAW-2024-007",
		Compound:        "Palm Hills October",
		Neighborhood:    "6th of October",
		Developer:       "Palm Hills Developments",
		SaleType:        models.SaleTypePrimary,
		Price:           4500000,
		AreaSqm:         165,
		Bedrooms:        3,
		Bathrooms:       2,
		FinishingStatus: models.FinishingStatusFullyFinished,
		DeliveryStatus:  models.DeliveryStatusReady,
		IsDelivered:     true,
		DownPayment:     &downPayment,
		Amenities:       pq.StringArray{"Swimming Pool", "Gym"},
		ListingURL:      "https://example.com/listings/7",
		Translations: []models.ApartmentTranslation{
			{
				ID:          1,
				ApartmentID: 7,
				Locale:      models.LocaleEnglish,
				Title:       "Spacious 3BR in Palm Hills",
				Description: "Fully finished with garden view",
				Slug:        "spacious-3br-in-palm-hills-en",
				SeoTitle:    "3BR Palm Hills",
				SeoKeywords: pq.StringArray{"palm hills", "3br"},
			},
			{
				ID:          2,
				ApartmentID: 7,
				Locale:      models.LocaleArabic,
				Title:       "شقة 3 غرف في بالم هيلز",
				Description: "تشطيب كامل بإطلالة على الحديقة",
				Slug:        "shqa-3-ghrf-ar",
			},
		},
	}
}

func TestProjectApartmentEnglish(t *testing.T) {
	apartment := projectionFixture()

	resp := ProjectApartment(apartment, models.LocaleEnglish)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "NAW-2024-007", resp.ReferenceNo)
	assert.Equal(t, models.LocaleEnglish, resp.Locale)
	assert.Equal(t, "Spacious 3BR in Palm Hills", resp.Title)
	assert.Equal(t, "spacious-3br-in-palm-hills-en", resp.Slug)
	assert.Equal(t, []string{"palm hills", "3br"}, resp.SeoKeywords)
	assert.Len(t, resp.Translations, 2, "full translation list rides along")
}

func TestProjectApartmentArabic(t *testing.T) {
	apartment := projectionFixture()

	resp := ProjectApartment(apartment, models.LocaleArabic)

	assert.Equal(t, models.LocaleArabic, resp.Locale)
	assert.Equal(t, "شقة 3 غرف في بالم هيلز", resp.Title)
	assert.Equal(t, "تشطيب كامل بإطلالة على الحديقة", resp.Description)
	// Locale-independent fields are untouched by the locale choice.
	assert.Equal(t, "Palm Hills October", resp.Compound)
	assert.Equal(t, 4500000.0, resp.Price)
}

func TestProjectApartmentDefaultsToEnglish(t *testing.T) {
	apartment := projectionFixture()

	resp := ProjectApartment(apartment, "")

	assert.Equal(t, models.LocaleEnglish, resp.Locale)
	assert.Equal(t, "Spacious 3BR in Palm Hills", resp.Title)
}

func TestProjectApartmentUnknownLocaleLeavesContentEmpty(t *testing.T) {
	apartment := projectionFixture()

	resp := ProjectApartment(apartment, "fr")

	assert.Empty(t, resp.Locale)
	assert.Empty(t, resp.Title)
	assert.Empty(t, resp.Slug)
	// The apartment itself still projects.
	assert.Equal(t, "NAW-2024-007", resp.ReferenceNo)
	assert.Len(t, resp.Translations, 2)
}

func TestProjectApartmentNoTranslations(t *testing.T) {
	apartment := projectionFixture()
	apartment.Translations = nil

	resp := ProjectApartment(apartment, models.LocaleEnglish)

	assert.Empty(t, resp.Title)
	assert.Empty(t, resp.Translations)
	assert.Equal(t, "Palm Hills Developments", resp.Developer)
}
