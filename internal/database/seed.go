// internal/database/seed.go
package database

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Ashraf-Atef1/full-stack-task/internal/models"
	"github.com/Ashraf-Atef1/full-stack-task/internal/utils"
)

type seedCompound struct {
	name      string
	area      string
	developer string
}

var seedCompounds = []seedCompound{
	{"Madinaty", "New Cairo", "Talaat Moustafa Group"},
	{"Palm Hills October", "6th of October", "Palm Hills Developments"},
	{"The Square", "Shorouk City", "Al Ahly Real Estate Development"},
	{"Zahra El Maadi", "New Maadi", "City Edge Developments"},
	{"Hyde Park", "New Cairo", "Hyde Park Developments"},
	{"Mountain View iCity", "6th of October", "Mountain View"},
	{"Eastown", "New Cairo", "Sodic"},
	{"Allegria", "Sheikh Zayed", "Sodic"},
	{"Badya", "6th of October", "Palm Hills Developments"},
	{"Capital Gardens", "New Administrative Capital", "Palm Hills Developments"},
}

var seedAmenities = []string{
	"Swimming Pool", "Gym", "Security", "Parking", "Garden",
	"Playground", "Clubhouse", "Commercial Area", "Mosque", "Medical Center",
}

var arabicAmenities = map[string]string{
	"Swimming Pool":   "حمام سباحة",
	"Gym":             "صالة رياضية",
	"Security":        "أمن",
	"Parking":         "موقف سيارات",
	"Garden":          "حديقة",
	"Playground":      "ملعب أطفال",
	"Clubhouse":       "نادي اجتماعي",
	"Commercial Area": "منطقة تجارية",
	"Mosque":          "مسجد",
	"Medical Center":  "مركز طبي",
}

var seedFinishing = []models.FinishingStatus{
	models.FinishingStatusSuperLux,
	models.FinishingStatusLux,
	models.FinishingStatusFullyFinished,
	models.FinishingStatusSemiFinished,
}

// SeedApartments fills an empty apartments table with demo listings, two
// translations each. Skipped when any listing already exists.
func SeedApartments(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&models.Apartment{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count apartments: %w", err)
	}
	if existing > 0 {
		log.Println("Apartments already exist, skipping seeding")
		return nil
	}

	log.Println("Seeding demo apartments...")
	rng := rand.New(rand.NewSource(42))

	return WithTransaction(db, func(tx *gorm.DB) error {
		for i := 1; i <= 50; i++ {
			compound := seedCompounds[rng.Intn(len(seedCompounds))]
			bedrooms := 1 + rng.Intn(4)
			bathrooms := 1 + rng.Intn(bedrooms)
			areaSqm := float64(80 + rng.Intn(220))
			price := areaSqm * float64(15000+rng.Intn(25000))

			saleType := models.SaleTypePrimary
			switch rng.Intn(3) {
			case 1:
				saleType = models.SaleTypeResale
			case 2:
				saleType = models.SaleTypeRent
			}

			delivery := models.DeliveryStatusUnderConstruction
			delivered := false
			if rng.Intn(2) == 0 {
				delivery = models.DeliveryStatusReady
				delivered = true
			}

			finishing := seedFinishing[rng.Intn(len(seedFinishing))]
			amenities := pickAmenities(rng, 3+rng.Intn(6))

			apartment := models.Apartment{
				ReferenceNo:     fmt.Sprintf("NAW-2024-%03d", i),
				Compound:        compound.name,
				Neighborhood:    compound.area,
				Developer:       compound.developer,
				SaleType:        saleType,
				Price:           price,
				AreaSqm:         areaSqm,
				Bedrooms:        bedrooms,
				Bathrooms:       bathrooms,
				FinishingStatus: finishing,
				DeliveryStatus:  delivery,
				IsDelivered:     delivered,
				Amenities:       pq.StringArray(amenities),
				ListingURL:      fmt.Sprintf("https://nawy.com/property/naw-2024-%03d", i),
				PhoneNumber:     "+201000000000",
			}

			if saleType != models.SaleTypeRent {
				downPayment := price * 0.1
				years := 5 + rng.Intn(6)
				monthly := (price - downPayment) / float64(years*12)
				apartment.DownPayment = &downPayment
				apartment.MonthlyInstallment = &monthly
				apartment.InstallmentDurationYears = &years
			}

			if err := tx.Create(&apartment).Error; err != nil {
				return fmt.Errorf("failed to seed apartment %d: %w", i, err)
			}

			enTitle := fmt.Sprintf("%d-Bedroom Apartment in %s", bedrooms, compound.name)
			arTitle := fmt.Sprintf("شقة %d غرف نوم في %s", bedrooms, compound.name)

			translations := []models.ApartmentTranslation{
				{
					ApartmentID: apartment.ID,
					Locale:      models.LocaleEnglish,
					Title:       enTitle,
					Description: fmt.Sprintf(
						"Beautiful %d-bedroom apartment featuring %s finishes in the prestigious %s development. This %.0fsqm unit offers modern living with premium amenities including %s.",
						bedrooms, strings.ToLower(string(finishing)), compound.name, areaSqm, strings.Join(amenities[:3], ", ")),
					Slug:           fmt.Sprintf("%s-%d-en", utils.Slugify(enTitle), i),
					SeoTitle:       fmt.Sprintf("%d-BR Apartment in %s", bedrooms, compound.name),
					SeoDescription: fmt.Sprintf("%s %d-bedroom apartment in %s, %s.", finishing, bedrooms, compound.name, compound.area),
					SeoKeywords:    pq.StringArray{"apartment", strings.ToLower(compound.name), strings.ToLower(compound.area)},
				},
				{
					ApartmentID: apartment.ID,
					Locale:      models.LocaleArabic,
					Title:       arTitle,
					Description: fmt.Sprintf(
						"شقة جميلة بـ %d غرف نوم في مجمع %s المرموق. هذه الوحدة بمساحة %.0f متر مربع تقدم معيشة عصرية مع مرافق راقية تشمل %s.",
						bedrooms, compound.name, areaSqm, joinArabicAmenities(amenities[:3])),
					Slug:        fmt.Sprintf("%s-%d-ar", utils.Slugify(enTitle), i),
					SeoTitle:    arTitle,
					SeoKeywords: pq.StringArray{"شقة", compound.name, compound.area},
				},
			}

			if err := tx.Create(&translations).Error; err != nil {
				return fmt.Errorf("failed to seed translations for apartment %d: %w", i, err)
			}
		}

		log.Println("Seeded 50 demo apartments")
		return nil
	})
}

func pickAmenities(rng *rand.Rand, n int) []string {
	shuffled := make([]string, len(seedAmenities))
	copy(shuffled, seedAmenities)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func joinArabicAmenities(amenities []string) string {
	translated := make([]string, 0, len(amenities))
	for _, a := range amenities {
		if ar, ok := arabicAmenities[a]; ok {
			translated = append(translated, ar)
		} else {
			translated = append(translated, a)
		}
	}
	return strings.Join(translated, "، ")
}
