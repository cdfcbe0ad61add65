package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
)

type samplePayload struct {
	EquipmentID string  `json:"equipment_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Date        *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

func TestDecodeJSONBodyAccumulatesFieldErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	assert.Contains(t, appErr.Message(), "equipment_id is required")
	assert.Contains(t, appErr.Message(), "name is required")

	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["equipment_id"])
}

func TestDecodeJSONBodyUsesJSONTagNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"equipment_id":"LAB-001","name":"Scope","purchase_date":"01-02-2024"}`))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message(), "purchase_date")
	assert.Contains(t, appErr.Message(), "YYYY-MM-DD")
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestDecodeJSONBodyValidPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"equipment_id":"LAB-001","name":"Scope","purchase_date":"2024-02-01"}`))

	var payload samplePayload
	require.NoError(t, DecodeJSONBody(req, &payload))
	assert.Equal(t, "LAB-001", payload.EquipmentID)
	require.NotNil(t, payload.Date)
	assert.Equal(t, "2024-02-01", *payload.Date)
}

func TestRequireQueryString(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?equipment_id=LAB-001", nil)
	value, err := RequireQueryString(req, "equipment_id")
	require.NoError(t, err)
	assert.Equal(t, "LAB-001", value)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	_, err = RequireQueryString(req, "equipment_id")
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "equipment_id is required", appErr.Message())
}
