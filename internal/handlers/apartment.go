// internal/handlers/apartment.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ashraf-Atef1/full-stack-task/internal/i18n"
	"github.com/Ashraf-Atef1/full-stack-task/internal/services"
	"github.com/Ashraf-Atef1/full-stack-task/internal/utils"
)

type ApartmentHandler struct {
	apartmentService *services.ApartmentService
	environment      string
}

func NewApartmentHandler(apartmentService *services.ApartmentService, environment string) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentService: apartmentService,
		environment:      environment,
	}
}

// GET /apartments
func (h *ApartmentHandler) GetApartments(c *gin.Context) {
	params := services.ApartmentSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Lang:             utils.GetLangFromContext(c),
		Search:           c.Query("search"),
		Compound:         c.Query("compound"),
		Neighborhood:     c.Query("neighborhood"),
		SaleType:         c.Query("saleType"),
		DeliveryStatus:   c.Query("deliveryStatus"),
	}

	if v := c.Query("priceMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.PriceMin = &f
		}
	}
	if v := c.Query("priceMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.PriceMax = &f
		}
	}
	if v := c.Query("areaMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.AreaMin = &f
		}
	}
	if v := c.Query("areaMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.AreaMax = &f
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Bedrooms = &n
		}
	}
	if v := c.Query("bathrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Bathrooms = &n
		}
	}
	if v := c.Query("isDelivered"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			params.IsDelivered = &b
		}
	}

	list, err := h.apartmentService.FindAll(params)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	utils.SetPaginationHeaders(c, list.Total, params.PaginationParams)
	utils.SuccessResponseWithMeta(c, list.Apartments, gin.H{
		"pagination": gin.H{
			"page":       list.Page,
			"limit":      list.Limit,
			"total":      list.Total,
			"totalPages": list.TotalPages,
		},
	})
}

// POST /apartments
func (h *ApartmentHandler) CreateApartment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	apartment, err := h.apartmentService.Create(&req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyApartmentCreated),
		"apartment": apartment,
	})
}

// GET /apartments/:id
func (h *ApartmentHandler) GetApartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid apartment ID", nil)
		return
	}

	apartment, err := h.apartmentService.FindOne(id, utils.GetLangFromContext(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"apartment": apartment,
	})
}

// PUT /apartments/:id
func (h *ApartmentHandler) UpdateApartment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid apartment ID", nil)
		return
	}

	var req services.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	apartment, err := h.apartmentService.Update(id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyApartmentUpdated),
		"apartment": apartment,
	})
}

// DELETE /apartments/:id
func (h *ApartmentHandler) DeleteApartment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid apartment ID", nil)
		return
	}

	if err := h.apartmentService.Delete(id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyApartmentDeleted),
	})
}

// handleServiceError maps domain error kinds onto HTTP responses. Conflicts
// and not-found are expected, user-facing conditions; everything else is
// opaque outside development mode.
func (h *ApartmentHandler) handleServiceError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, i18n.KeyApartmentNotFound)
	case errors.Is(err, services.ErrSlugExists):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyApartmentSlugExists))
	case errors.Is(err, services.ErrDuplicateEntry):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyApartmentDuplicateEntry))
	case errors.Is(err, services.ErrCreateFailed):
		utils.InternalErrorResponse(c, h.detail(i18n.T(lang, i18n.KeyApartmentCreateFailed), err))
	case errors.Is(err, services.ErrUpdateFailed):
		utils.InternalErrorResponse(c, h.detail(i18n.T(lang, i18n.KeyApartmentUpdateFailed), err))
	case errors.Is(err, services.ErrDeleteFailed):
		utils.InternalErrorResponse(c, h.detail(i18n.T(lang, i18n.KeyApartmentDeleteFailed), err))
	default:
		utils.InternalErrorResponse(c, h.detail(i18n.T(lang, i18n.KeyInternalError), err))
	}
}

func (h *ApartmentHandler) detail(message string, err error) string {
	if h.environment == "development" {
		return message + ": " + err.Error()
	}
	return message
}
