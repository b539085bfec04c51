package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	e.GET("/health", Health)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"dev"}`, rec.Body.String())
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&FAQRequest{Index: 0, Open: true}))
	assert.Error(t, v.Validate(&FAQRequest{Index: -1}))

	assert.NoError(t, v.Validate(&CheckoutRequest{}))
	assert.NoError(t, v.Validate(&CheckoutRequest{From: "pricing"}))
	assert.Error(t, v.Validate(&CheckoutRequest{From: "<script>"}))
}

func TestFAQRequestBinding(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	var got FAQRequest
	e.GET("/faq/:index", func(c echo.Context) error {
		if err := c.Bind(&got); err != nil {
			return err
		}
		return c.Validate(&got)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq/3?open=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, FAQRequest{Index: 3, Open: true}, got)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/faq/1?open=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
