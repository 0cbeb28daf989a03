// internal/models/apartment.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Apartment is a single listing. Localized content lives in the owned
// ApartmentTranslation rows; everything here is locale-independent.
type Apartment struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	ReferenceNo  string `json:"referenceNo" gorm:"size:50;not null;uniqueIndex:uq_apartments_reference_no"`
	Compound     string `json:"compound" gorm:"size:100;not null;index"`
	Neighborhood string `json:"neighborhood" gorm:"size:100;not null;index"`
	Developer    string `json:"developer" gorm:"size:100;not null"`

	SaleType        SaleType        `json:"saleType" gorm:"size:20;not null;index"`
	Price           float64         `json:"price" gorm:"type:numeric;not null"`
	AreaSqm         float64         `json:"areaSqm" gorm:"type:numeric;not null"`
	Bedrooms        int             `json:"bedrooms" gorm:"not null"`
	Bathrooms       int             `json:"bathrooms" gorm:"not null"`
	FinishingStatus FinishingStatus `json:"finishingStatus" gorm:"size:50;not null"`
	DeliveryStatus  DeliveryStatus  `json:"deliveryStatus" gorm:"size:50;not null"`
	IsDelivered     bool            `json:"isDelivered" gorm:"default:false"`

	// Payment plan fields are only meaningful when SaleType is not Rent.
	DownPayment              *float64 `json:"downPayment,omitempty" gorm:"type:numeric"`
	MonthlyInstallment       *float64 `json:"monthlyInstallment,omitempty" gorm:"type:numeric"`
	InstallmentDurationYears *int     `json:"installmentDurationYears,omitempty"`

	Amenities     pq.StringArray `json:"amenities,omitempty" gorm:"type:text[]"`
	ListingURL    string         `json:"listingUrl" gorm:"not null"`
	PhoneNumber   string         `json:"phoneNumber,omitempty"`
	GalleryImages pq.StringArray `json:"galleryImages,omitempty" gorm:"type:text[]"`
	FloorPlanURL  string         `json:"floorPlanUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Translations []ApartmentTranslation `json:"translations,omitempty" gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Apartment) TableName() string {
	return "apartments"
}

// TranslationFor returns the translation row matching locale, or nil.
func (a *Apartment) TranslationFor(locale string) *ApartmentTranslation {
	for i := range a.Translations {
		if a.Translations[i].Locale == locale {
			return &a.Translations[i]
		}
	}
	return nil
}
