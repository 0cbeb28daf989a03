// internal/models/apartment_translation.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Ashraf-Atef1/full-stack-task/internal/utils"
)

// ApartmentTranslation holds the localized content of one apartment in one
// locale. The (apartment, locale) pair is expected to be unique but is not
// enforced by the schema; the write path only ever inserts distinct locales.
type ApartmentTranslation struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	ApartmentID int64  `json:"apartmentId" gorm:"column:apartment_id;not null"`
	Locale      string `json:"locale" gorm:"size:2;not null"`

	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	// SEO fields; slug carries a partial unique index (see database.RunMigrations).
	Slug           string         `json:"slug,omitempty" gorm:"size:255"`
	SeoTitle       string         `json:"seoTitle,omitempty" gorm:"size:60"`
	SeoDescription string         `json:"seoDescription,omitempty" gorm:"size:160"`
	SeoKeywords    pq.StringArray `json:"seoKeywords,omitempty" gorm:"type:text[]"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`

	Apartment *Apartment `json:"-" gorm:"foreignKey:ApartmentID"`
}

func (ApartmentTranslation) TableName() string {
	return "apartment_translations"
}

// BeforeSave derives the slug from the title when none was supplied and
// rejects rows that violate the locale/title invariants, whichever path
// (create or update) the row arrives through.
func (t *ApartmentTranslation) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("translation title cannot be empty")
	}
	if !IsSupportedLocale(t.Locale) {
		return fmt.Errorf("invalid locale %q: must be one of %s", t.Locale, strings.Join(SupportedLocales, ", "))
	}
	if t.Slug == "" {
		t.Slug = utils.Slugify(t.Title) + "-" + t.Locale
	}
	return nil
}
