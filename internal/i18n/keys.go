// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess       = "success"
	KeyError         = "error"
	KeyInternalError = "internal_error"

	// Apartments
	KeyApartmentCreated        = "apartment.created"
	KeyApartmentUpdated        = "apartment.updated"
	KeyApartmentDeleted        = "apartment.deleted"
	KeyApartmentNotFound       = "apartment.not_found"
	KeyApartmentSlugExists     = "apartment.slug_exists"
	KeyApartmentDuplicateEntry = "apartment.duplicate_entry"
	KeyApartmentCreateFailed   = "apartment.create_failed"
	KeyApartmentUpdateFailed   = "apartment.update_failed"
	KeyApartmentDeleteFailed   = "apartment.delete_failed"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
	KeyFileNoneUploaded  = "file.none_uploaded"
)
