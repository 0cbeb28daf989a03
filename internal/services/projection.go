// internal/services/projection.go
package services

import (
	"time"

	"github.com/Ashraf-Atef1/full-stack-task/internal/models"
)

// ApartmentResponse is an apartment flattened with the content of one
// translation row. The mapping is explicit so that field precedence is a
// contract: apartment identity and audit fields always come from the
// apartment row, never from a translation.
type ApartmentResponse struct {
	ID           int64  `json:"id"`
	ReferenceNo  string `json:"referenceNo"`
	Compound     string `json:"compound"`
	Neighborhood string `json:"neighborhood"`
	Developer    string `json:"developer"`

	SaleType        models.SaleType        `json:"saleType"`
	Price           float64                `json:"price"`
	AreaSqm         float64                `json:"areaSqm"`
	Bedrooms        int                    `json:"bedrooms"`
	Bathrooms       int                    `json:"bathrooms"`
	FinishingStatus models.FinishingStatus `json:"finishingStatus"`
	DeliveryStatus  models.DeliveryStatus  `json:"deliveryStatus"`
	IsDelivered     bool                   `json:"isDelivered"`

	DownPayment              *float64 `json:"downPayment,omitempty"`
	MonthlyInstallment       *float64 `json:"monthlyInstallment,omitempty"`
	InstallmentDurationYears *int     `json:"installmentDurationYears,omitempty"`

	Amenities     []string `json:"amenities,omitempty"`
	ListingURL    string   `json:"listingUrl"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`
	FloorPlanURL  string   `json:"floorPlanUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Flattened translation content; all empty when no row matched the
	// requested locale.
	Locale         string   `json:"locale,omitempty"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	Slug           string   `json:"slug,omitempty"`
	SeoTitle       string   `json:"seoTitle,omitempty"`
	SeoDescription string   `json:"seoDescription,omitempty"`
	SeoKeywords    []string `json:"seoKeywords,omitempty"`

	Translations []models.ApartmentTranslation `json:"translations"`
}

// ProjectApartment merges an apartment with its translation for the
// requested locale. An empty locale looks up "en"; a locale with no matching
// row leaves the translation fields empty rather than failing. There is no
// fallback to "the first available translation".
func ProjectApartment(apartment *models.Apartment, locale string) *ApartmentResponse {
	if locale == "" {
		locale = models.LocaleEnglish
	}

	response := &ApartmentResponse{
		ID:                       apartment.ID,
		ReferenceNo:              apartment.ReferenceNo,
		Compound:                 apartment.Compound,
		Neighborhood:             apartment.Neighborhood,
		Developer:                apartment.Developer,
		SaleType:                 apartment.SaleType,
		Price:                    apartment.Price,
		AreaSqm:                  apartment.AreaSqm,
		Bedrooms:                 apartment.Bedrooms,
		Bathrooms:                apartment.Bathrooms,
		FinishingStatus:          apartment.FinishingStatus,
		DeliveryStatus:           apartment.DeliveryStatus,
		IsDelivered:              apartment.IsDelivered,
		DownPayment:              apartment.DownPayment,
		MonthlyInstallment:       apartment.MonthlyInstallment,
		InstallmentDurationYears: apartment.InstallmentDurationYears,
		Amenities:                apartment.Amenities,
		ListingURL:               apartment.ListingURL,
		PhoneNumber:              apartment.PhoneNumber,
		GalleryImages:            apartment.GalleryImages,
		FloorPlanURL:             apartment.FloorPlanURL,
		CreatedAt:                apartment.CreatedAt,
		UpdatedAt:                apartment.UpdatedAt,
		Translations:             apartment.Translations,
	}

	if translation := apartment.TranslationFor(locale); translation != nil {
		response.Locale = translation.Locale
		response.Title = translation.Title
		response.Description = translation.Description
		response.Slug = translation.Slug
		response.SeoTitle = translation.SeoTitle
		response.SeoDescription = translation.SeoDescription
		response.SeoKeywords = translation.SeoKeywords
	}

	return response
}
