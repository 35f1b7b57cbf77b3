package utils

import (
	"net/http"
	"strings"

	"clinic-dashboard-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// ParseBearerToken extracts the token part of an Authorization header.
func ParseBearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
}

func ParseJSONBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
