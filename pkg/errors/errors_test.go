package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataMapsConflictToBadRequest(t *testing.T) {
	meta := MetadataFor(CodeConflict)
	assert.Equal(t, http.StatusBadRequest, meta.HTTPStatus)

	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, MetadataFor(CodeUnauthorized).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeValidation).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(CodeInternal).HTTPStatus)
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("duplicate key value violates unique constraint")
	err := Wrap(CodeConflict, cause, "equipment_id already exists")

	assert.Equal(t, CodeConflict, err.Code())
	assert.Equal(t, "equipment_id already exists", err.Message())
	assert.ErrorIs(t, err, cause)
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := New(CodeNotFound, "equipment not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())

	assert.Nil(t, As(stdErrors.New("plain")))
	assert.Nil(t, As(nil))
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "name is required").WithDetails(map[string]string{"name": "is required"})
	details, ok := err.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
}
