// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"net/url"
	"strings"
)

// BuildSearchQuery assembles the query string for a profile search.
// Parameter order is fixed: keywords, then firstName, then lastName.
// Empty fields are skipped entirely, with no empty placeholders. When all
// three inputs are empty it fails with ErrEmptyQuery so the caller knows
// not to issue a remote call.
func BuildSearchQuery(firstName, lastName, keywords string) (string, error) {
	var parts []string
	if v := strings.TrimSpace(keywords); v != "" {
		parts = append(parts, "keywords="+url.QueryEscape(v))
	}
	if v := strings.TrimSpace(firstName); v != "" {
		parts = append(parts, "firstName="+url.QueryEscape(v))
	}
	if v := strings.TrimSpace(lastName); v != "" {
		parts = append(parts, "lastName="+url.QueryEscape(v))
	}
	if len(parts) == 0 {
		return "", ErrEmptyQuery
	}
	return strings.Join(parts, "&"), nil
}
