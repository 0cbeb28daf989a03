// internal/models/common.go
package models

// Supported content locales
const (
	LocaleEnglish = "en"
	LocaleArabic  = "ar"
)

var SupportedLocales = []string{LocaleEnglish, LocaleArabic}

func IsSupportedLocale(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// Enums
type SaleType string

const (
	SaleTypePrimary SaleType = "Primary"
	SaleTypeResale  SaleType = "Resale"
	SaleTypeRent    SaleType = "Rent"
)

type DeliveryStatus string

const (
	DeliveryStatusReady             DeliveryStatus = "Ready"
	DeliveryStatusUnderConstruction DeliveryStatus = "Under Construction"
	DeliveryStatusOffPlan           DeliveryStatus = "Off Plan"
)

type FinishingStatus string

const (
	FinishingStatusSuperLux      FinishingStatus = "Super Lux"
	FinishingStatusLux           FinishingStatus = "Lux"
	FinishingStatusFullyFinished FinishingStatus = "Fully finished"
	FinishingStatusSemiFinished  FinishingStatus = "Semi-finished"
	FinishingStatusCoreAndShell  FinishingStatus = "Core & Shell"
)
