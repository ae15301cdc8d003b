// Package filter decides which fetched secrets get displayed.
package filter

import (
	"strings"

	"ksecrets/internal/config"
	"ksecrets/internal/models"
)

// OpaqueType is the default/generic secret type shown without --show-all.
const OpaqueType = "Opaque"

// ShouldDisplay reports whether a secret passes the type gate and the name
// query. Failing the type gate rejects unconditionally; a query can never
// bring a type-gated-out secret back. The empty query matches every name.
func ShouldDisplay(cfg config.Config, secret models.SecretRecord) bool {
	if !cfg.ShowAll && secret.Type != OpaqueType {
		return false
	}
	return strings.Contains(secret.Name, cfg.Query)
}
