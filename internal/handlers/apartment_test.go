// internal/handlers/apartment_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ashraf-Atef1/full-stack-task/internal/database"
	"github.com/Ashraf-Atef1/full-stack-task/internal/i18n"
	"github.com/Ashraf-Atef1/full-stack-task/internal/middleware"
	"github.com/Ashraf-Atef1/full-stack-task/internal/services"
)

var handlerDBCounter int64

type ApartmentHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *ApartmentHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	require.NoError(suite.T(), i18n.Initialize("../i18n/locales"))
}

func (suite *ApartmentHandlerTestSuite) SetupTest() {
	n := atomic.AddInt64(&handlerDBCounter, 1)
	dsn := fmt.Sprintf("file:apartments_handler_test_%d?mode=memory&cache=shared&_foreign_keys=on", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.RunMigrations(db))
	suite.db = db

	handler := NewApartmentHandler(services.NewApartmentService(db), "test")

	suite.router = gin.New()
	suite.router.Use(middleware.LanguageMiddleware())

	apartments := suite.router.Group("/v1/apartments")
	{
		apartments.GET("", handler.GetApartments)
		apartments.POST("", handler.CreateApartment)
		apartments.GET("/:id", handler.GetApartment)
		apartments.PUT("/:id", handler.UpdateApartment)
		apartments.DELETE("/:id", handler.DeleteApartment)
	}
}

func (suite *ApartmentHandlerTestSuite) TearDownTest() {
	if sqlDB, err := suite.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (suite *ApartmentHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ApartmentHandlerTestSuite) parse(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func apartmentPayload(refNo string) map[string]interface{} {
	return map[string]interface{}{
		"referenceNo":     refNo,
		"compound":        "Palm Hills October",
		"neighborhood":    "6th of October",
		"developer":       "Palm Hills Developments",
		"saleType":        "Primary",
		"price":           4200000,
		"areaSqm":         150,
		"bedrooms":        3,
		"bathrooms":       2,
		"finishingStatus": "Fully finished",
		"deliveryStatus":  "Ready",
		"isDelivered":     true,
		"listingUrl":      "https://example.com/listings/" + refNo,
		"translations": []map[string]interface{}{
			{"locale": "en", "title": "Apartment " + refNo, "description": "Garden view"},
			{"locale": "ar", "title": "شقة " + refNo},
		},
	}
}

func (suite *ApartmentHandlerTestSuite) createApartment(refNo string) float64 {
	w := suite.request("POST", "/v1/apartments", apartmentPayload(refNo))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	data := suite.parse(w)["data"].(map[string]interface{})
	apartment := data["apartment"].(map[string]interface{})
	return apartment["id"].(float64)
}

func (suite *ApartmentHandlerTestSuite) TestCreateApartment() {
	w := suite.request("POST", "/v1/apartments", apartmentPayload("NAW-2024-001"))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	response := suite.parse(w)
	suite.True(response["success"].(bool))

	data := response["data"].(map[string]interface{})
	suite.Equal("Apartment created successfully", data["message"])

	apartment := data["apartment"].(map[string]interface{})
	suite.Equal("NAW-2024-001", apartment["referenceNo"])
	suite.Equal("Apartment NAW-2024-001", apartment["title"])
}

func (suite *ApartmentHandlerTestSuite) TestCreateApartmentValidationError() {
	payload := apartmentPayload("NAW-2024-001")
	payload["listingUrl"] = "not-a-url"

	w := suite.request("POST", "/v1/apartments", payload)
	suite.Require().Equal(http.StatusBadRequest, w.Code)

	response := suite.parse(w)
	suite.False(response["success"].(bool))

	apiError := response["error"].(map[string]interface{})
	suite.Equal("VALIDATION_ERROR", apiError["code"])
	suite.NotEmpty(apiError["details"])
}

func (suite *ApartmentHandlerTestSuite) TestCreateApartmentSlugConflict() {
	payload := apartmentPayload("NAW-2024-001")
	payload["translations"] = []map[string]interface{}{
		{"locale": "en", "title": "First", "slug": "shared-slug"},
	}
	w := suite.request("POST", "/v1/apartments", payload)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	payload = apartmentPayload("NAW-2024-002")
	payload["translations"] = []map[string]interface{}{
		{"locale": "en", "title": "Second", "slug": "shared-slug"},
	}
	w = suite.request("POST", "/v1/apartments", payload)
	suite.Require().Equal(http.StatusConflict, w.Code)

	apiError := suite.parse(w)["error"].(map[string]interface{})
	suite.Equal("CONFLICT", apiError["code"])
	suite.Equal("An apartment with this slug already exists", apiError["message"])
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentsLocalized() {
	suite.createApartment("NAW-2024-001")
	suite.createApartment("NAW-2024-002")

	w := suite.request("GET", "/v1/apartments?lang=ar", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-Total-Count"))

	response := suite.parse(w)
	items := response["data"].([]interface{})
	suite.Require().Len(items, 2)

	first := items[0].(map[string]interface{})
	suite.Equal("ar", first["locale"])

	meta := response["meta"].(map[string]interface{})
	pagination := meta["pagination"].(map[string]interface{})
	suite.Equal(float64(2), pagination["total"])
	suite.Equal(float64(1), pagination["totalPages"])
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentsFiltered() {
	suite.createApartment("NAW-2024-001")
	suite.createApartment("NAW-2024-002")

	w := suite.request("GET", "/v1/apartments?search=NAW-2024-002", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	items := suite.parse(w)["data"].([]interface{})
	suite.Require().Len(items, 1)
	suite.Equal("NAW-2024-002", items[0].(map[string]interface{})["referenceNo"])

	w = suite.request("GET", "/v1/apartments?priceMin=9000000", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Empty(suite.parse(w)["data"])
}

func (suite *ApartmentHandlerTestSuite) TestGetApartment() {
	id := suite.createApartment("NAW-2024-001")

	w := suite.request("GET", fmt.Sprintf("/v1/apartments/%.0f?lang=ar", id), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	data := suite.parse(w)["data"].(map[string]interface{})
	apartment := data["apartment"].(map[string]interface{})
	suite.Equal("شقة NAW-2024-001", apartment["title"])
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentNotFound() {
	w := suite.request("GET", "/v1/apartments/9999", nil)
	suite.Require().Equal(http.StatusNotFound, w.Code)

	apiError := suite.parse(w)["error"].(map[string]interface{})
	suite.Equal("NOT_FOUND", apiError["code"])
	suite.Equal("Apartment not found", apiError["message"])
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentNotFoundArabic() {
	w := suite.request("GET", "/v1/apartments/9999?lang=ar", nil)
	suite.Require().Equal(http.StatusNotFound, w.Code)

	apiError := suite.parse(w)["error"].(map[string]interface{})
	suite.Equal("الشقة غير موجودة", apiError["message"])
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentBadID() {
	w := suite.request("GET", "/v1/apartments/not-a-number", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ApartmentHandlerTestSuite) TestUpdateApartment() {
	id := suite.createApartment("NAW-2024-001")

	w := suite.request("PUT", fmt.Sprintf("/v1/apartments/%.0f", id), map[string]interface{}{
		"price": 9999999,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	data := suite.parse(w)["data"].(map[string]interface{})
	apartment := data["apartment"].(map[string]interface{})
	suite.Equal(float64(9999999), apartment["price"])
	suite.Equal("NAW-2024-001", apartment["referenceNo"])
}

func (suite *ApartmentHandlerTestSuite) TestUpdateApartmentNotFound() {
	w := suite.request("PUT", "/v1/apartments/9999", map[string]interface{}{"price": 1})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ApartmentHandlerTestSuite) TestDeleteApartment() {
	id := suite.createApartment("NAW-2024-001")

	w := suite.request("DELETE", fmt.Sprintf("/v1/apartments/%.0f", id), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request("GET", fmt.Sprintf("/v1/apartments/%.0f", id), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ApartmentHandlerTestSuite) TestDeleteApartmentNotFound() {
	w := suite.request("DELETE", "/v1/apartments/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestApartmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApartmentHandlerTestSuite))
}
