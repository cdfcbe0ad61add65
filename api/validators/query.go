package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
)

// QueryString returns the trimmed query parameter, or "" when absent.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// RequireQueryString returns the trimmed query parameter or a validation error
// naming the missing key.
func RequireQueryString(r *http.Request, key string) (string, error) {
	value := QueryString(r, key)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, key+" is required")
	}
	return value, nil
}
