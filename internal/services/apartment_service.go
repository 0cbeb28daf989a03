// internal/services/apartment_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Ashraf-Atef1/full-stack-task/internal/models"
	"github.com/Ashraf-Atef1/full-stack-task/internal/utils"
)

type ApartmentService struct {
	db *gorm.DB
}

func NewApartmentService(db *gorm.DB) *ApartmentService {
	return &ApartmentService{db: db}
}

type ApartmentTranslationRequest struct {
	Locale         string   `json:"locale" validate:"required,content_locale"`
	Title          string   `json:"title" validate:"required,min=1,max=200"`
	Description    string   `json:"description,omitempty"`
	Slug           string   `json:"slug,omitempty" validate:"omitempty,max=255"`
	SeoTitle       string   `json:"seoTitle,omitempty" validate:"omitempty,max=60"`
	SeoDescription string   `json:"seoDescription,omitempty" validate:"omitempty,max=160"`
	SeoKeywords    []string `json:"seoKeywords,omitempty"`
}

type CreateApartmentRequest struct {
	ReferenceNo     string  `json:"referenceNo" validate:"required,min=3,max=50"`
	Compound        string  `json:"compound" validate:"required,min=2,max=100"`
	Neighborhood    string  `json:"neighborhood" validate:"required,min=2,max=100"`
	Developer       string  `json:"developer" validate:"required,min=2,max=100"`
	SaleType        string  `json:"saleType" validate:"required,sale_type"`
	Price           float64 `json:"price" validate:"gte=0"`
	AreaSqm         float64 `json:"areaSqm" validate:"gt=0"`
	Bedrooms        int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms       int     `json:"bathrooms" validate:"gte=0"`
	FinishingStatus string  `json:"finishingStatus" validate:"required"`
	DeliveryStatus  string  `json:"deliveryStatus" validate:"required"`
	IsDelivered     bool    `json:"isDelivered"`

	DownPayment              *float64 `json:"downPayment,omitempty" validate:"omitempty,gte=0"`
	MonthlyInstallment       *float64 `json:"monthlyInstallment,omitempty" validate:"omitempty,gte=0"`
	InstallmentDurationYears *int     `json:"installmentDurationYears,omitempty" validate:"omitempty,gte=0"`

	Amenities     []string `json:"amenities,omitempty"`
	ListingURL    string   `json:"listingUrl" validate:"required,url"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`
	FloorPlanURL  string   `json:"floorPlanUrl,omitempty"`

	Translations []ApartmentTranslationRequest `json:"translations" validate:"omitempty,dive"`
}

type UpdateApartmentRequest struct {
	ReferenceNo     *string  `json:"referenceNo,omitempty" validate:"omitempty,min=3,max=50"`
	Compound        *string  `json:"compound,omitempty" validate:"omitempty,min=2,max=100"`
	Neighborhood    *string  `json:"neighborhood,omitempty" validate:"omitempty,min=2,max=100"`
	Developer       *string  `json:"developer,omitempty" validate:"omitempty,min=2,max=100"`
	SaleType        *string  `json:"saleType,omitempty" validate:"omitempty,sale_type"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	AreaSqm         *float64 `json:"areaSqm,omitempty" validate:"omitempty,gt=0"`
	Bedrooms        *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms       *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	FinishingStatus *string  `json:"finishingStatus,omitempty"`
	DeliveryStatus  *string  `json:"deliveryStatus,omitempty"`
	IsDelivered     *bool    `json:"isDelivered,omitempty"`

	DownPayment              *float64 `json:"downPayment,omitempty" validate:"omitempty,gte=0"`
	MonthlyInstallment       *float64 `json:"monthlyInstallment,omitempty" validate:"omitempty,gte=0"`
	InstallmentDurationYears *int     `json:"installmentDurationYears,omitempty" validate:"omitempty,gte=0"`

	Amenities     []string `json:"amenities,omitempty"`
	ListingURL    *string  `json:"listingUrl,omitempty" validate:"omitempty,url"`
	PhoneNumber   *string  `json:"phoneNumber,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`
	FloorPlanURL  *string  `json:"floorPlanUrl,omitempty"`
}

type ApartmentSearchParams struct {
	utils.PaginationParams
	Lang           string   `json:"lang,omitempty"`
	Search         string   `json:"search,omitempty"`
	PriceMin       *float64 `json:"priceMin,omitempty"`
	PriceMax       *float64 `json:"priceMax,omitempty"`
	AreaMin        *float64 `json:"areaMin,omitempty"`
	AreaMax        *float64 `json:"areaMax,omitempty"`
	Bedrooms       *int     `json:"bedrooms,omitempty"`
	Bathrooms      *int     `json:"bathrooms,omitempty"`
	Compound       string   `json:"compound,omitempty"`
	Neighborhood   string   `json:"neighborhood,omitempty"`
	SaleType       string   `json:"saleType,omitempty"`
	DeliveryStatus string   `json:"deliveryStatus,omitempty"`
	IsDelivered    *bool    `json:"isDelivered,omitempty"`
}

type ApartmentList struct {
	Apartments []*ApartmentResponse `json:"apartments"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"totalPages"`
}

// Sort fields exposed to clients, mapped onto columns. Anything else falls
// back to the default ordering.
var apartmentSortColumns = map[string]string{
	"price":     "price",
	"areaSqm":   "area_sqm",
	"createdAt": "created_at",
	"bedrooms":  "bedrooms",
	"bathrooms": "bathrooms",
}

// Create inserts the apartment and its translations as one atomic unit and
// returns the freshly re-read, projected result.
func (s *ApartmentService) Create(req *CreateApartmentRequest) (*ApartmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	apartment := &models.Apartment{
		ReferenceNo:              req.ReferenceNo,
		Compound:                 req.Compound,
		Neighborhood:             req.Neighborhood,
		Developer:                req.Developer,
		SaleType:                 models.SaleType(req.SaleType),
		Price:                    req.Price,
		AreaSqm:                  req.AreaSqm,
		Bedrooms:                 req.Bedrooms,
		Bathrooms:                req.Bathrooms,
		FinishingStatus:          models.FinishingStatus(req.FinishingStatus),
		DeliveryStatus:           models.DeliveryStatus(req.DeliveryStatus),
		IsDelivered:              req.IsDelivered,
		DownPayment:              req.DownPayment,
		MonthlyInstallment:       req.MonthlyInstallment,
		InstallmentDurationYears: req.InstallmentDurationYears,
		Amenities:                pq.StringArray(req.Amenities),
		ListingURL:               req.ListingURL,
		PhoneNumber:              req.PhoneNumber,
		GalleryImages:            pq.StringArray(req.GalleryImages),
		FloorPlanURL:             req.FloorPlanURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(apartment).Error; err != nil {
			return err
		}

		if len(req.Translations) == 0 {
			return nil
		}

		// One batch insert, stamped with the generated apartment id.
		translations := make([]models.ApartmentTranslation, len(req.Translations))
		for i, t := range req.Translations {
			translations[i] = models.ApartmentTranslation{
				ApartmentID:    apartment.ID,
				Locale:         t.Locale,
				Title:          t.Title,
				Description:    t.Description,
				Slug:           t.Slug,
				SeoTitle:       t.SeoTitle,
				SeoDescription: t.SeoDescription,
				SeoKeywords:    pq.StringArray(t.SeoKeywords),
			}
		}
		return tx.Create(&translations).Error
	})
	if err != nil {
		classified := classifyWriteError(err, ErrCreateFailed)
		if errors.Is(classified, ErrCreateFailed) {
			logrus.WithError(err).Error("apartment create failed")
		}
		return nil, classified
	}

	// Fresh read rather than reusing the in-memory rows.
	return s.FindOne(apartment.ID, "")
}

// FindAll returns one page of projected apartments matching the filters.
func (s *ApartmentService) FindAll(params ApartmentSearchParams) (*ApartmentList, error) {
	params.Page = utils.ClampPage(params.Page)
	params.Limit = utils.ClampLimit(params.Limit)

	query := s.db.Model(&models.Apartment{})

	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		translated := s.db.Model(&models.ApartmentTranslation{}).
			Select("apartment_id").
			Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
		query = query.Where(
			"LOWER(compound) LIKE ? OR LOWER(neighborhood) LIKE ? OR LOWER(developer) LIKE ? OR id IN (?)",
			term, term, term, translated)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}
	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}
	if params.AreaMin != nil {
		query = query.Where("area_sqm >= ?", *params.AreaMin)
	}
	if params.AreaMax != nil {
		query = query.Where("area_sqm <= ?", *params.AreaMax)
	}
	if params.Bedrooms != nil {
		query = query.Where("bedrooms = ?", *params.Bedrooms)
	}
	if params.Bathrooms != nil {
		query = query.Where("bathrooms = ?", *params.Bathrooms)
	}
	if params.Compound != "" {
		query = query.Where("LOWER(compound) LIKE ?", "%"+strings.ToLower(params.Compound)+"%")
	}
	if params.Neighborhood != "" {
		query = query.Where("LOWER(neighborhood) LIKE ?", "%"+strings.ToLower(params.Neighborhood)+"%")
	}
	if params.SaleType != "" {
		query = query.Where("sale_type = ?", params.SaleType)
	}
	if params.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", params.DeliveryStatus)
	}
	if params.IsDelivered != nil {
		query = query.Where("is_delivered = ?", *params.IsDelivered)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count apartments: %w", err)
	}

	query = utils.ApplySort(query, params.PaginationParams, apartmentSortColumns)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var apartments []models.Apartment
	if err := query.Preload("Translations").Find(&apartments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch apartments: %w", err)
	}

	items := make([]*ApartmentResponse, len(apartments))
	for i := range apartments {
		items[i] = ProjectApartment(&apartments[i], params.Lang)
	}

	return &ApartmentList{
		Apartments: items,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(total, params.Limit),
	}, nil
}

// FindOne loads one apartment with its translations and projects it for the
// requested locale.
func (s *ApartmentService) FindOne(id int64, locale string) (*ApartmentResponse, error) {
	apartment, err := s.findEntity(id)
	if err != nil {
		return nil, err
	}
	return ProjectApartment(apartment, locale), nil
}

// Update merges the supplied fields into the stored apartment and saves.
// Last writer wins; there is no optimistic concurrency control.
func (s *ApartmentService) Update(id int64, req *UpdateApartmentRequest) (*ApartmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	apartment, err := s.findEntity(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.ReferenceNo != nil {
		updates["reference_no"] = *req.ReferenceNo
	}
	if req.Compound != nil {
		updates["compound"] = *req.Compound
	}
	if req.Neighborhood != nil {
		updates["neighborhood"] = *req.Neighborhood
	}
	if req.Developer != nil {
		updates["developer"] = *req.Developer
	}
	if req.SaleType != nil {
		updates["sale_type"] = *req.SaleType
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.AreaSqm != nil {
		updates["area_sqm"] = *req.AreaSqm
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updates["bathrooms"] = *req.Bathrooms
	}
	if req.FinishingStatus != nil {
		updates["finishing_status"] = *req.FinishingStatus
	}
	if req.DeliveryStatus != nil {
		updates["delivery_status"] = *req.DeliveryStatus
	}
	if req.IsDelivered != nil {
		updates["is_delivered"] = *req.IsDelivered
	}
	if req.DownPayment != nil {
		updates["down_payment"] = *req.DownPayment
	}
	if req.MonthlyInstallment != nil {
		updates["monthly_installment"] = *req.MonthlyInstallment
	}
	if req.InstallmentDurationYears != nil {
		updates["installment_duration_years"] = *req.InstallmentDurationYears
	}
	if req.Amenities != nil {
		updates["amenities"] = pq.StringArray(req.Amenities)
	}
	if req.ListingURL != nil {
		updates["listing_url"] = *req.ListingURL
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.GalleryImages != nil {
		updates["gallery_images"] = pq.StringArray(req.GalleryImages)
	}
	if req.FloorPlanURL != nil {
		updates["floor_plan_url"] = *req.FloorPlanURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(apartment).Updates(updates).Error; err != nil {
			classified := classifyWriteError(err, ErrUpdateFailed)
			if errors.Is(classified, ErrUpdateFailed) {
				logrus.WithError(err).WithField("apartment_id", id).Error("apartment update failed")
			}
			return nil, classified
		}
	}

	return s.FindOne(id, "")
}

// Delete removes the apartment and its translations. The cascade is explicit:
// translations first, then the apartment, inside one transaction.
func (s *ApartmentService) Delete(id int64) error {
	apartment, err := s.findEntity(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("apartment_id = ?", apartment.ID).
			Delete(&models.ApartmentTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(apartment).Error
	})
	if err != nil {
		logrus.WithError(err).WithField("apartment_id", id).Error("apartment delete failed")
		return ErrDeleteFailed
	}
	return nil
}

func (s *ApartmentService) findEntity(id int64) (*models.Apartment, error) {
	var apartment models.Apartment
	if err := s.db.Preload("Translations").First(&apartment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &apartment, nil
}
