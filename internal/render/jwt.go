package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// summarizeJWT parses a value as a JWT without verifying its signature and
// returns a short claims summary. The tool only displays tokens, it never
// trusts them, so unverified parsing is fine here. Returns false when the
// value is not a JWT.
func summarizeJWT(value string) (string, bool) {
	raw := strings.TrimSpace(value)
	if strings.Count(raw, ".") != 2 {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", false
	}

	parts := make([]string, 0, 3)
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		parts = append(parts, fmt.Sprintf("sub=%s", sub))
	}
	if iss, err := claims.GetIssuer(); err == nil && iss != "" {
		parts = append(parts, fmt.Sprintf("iss=%s", iss))
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		parts = append(parts, fmt.Sprintf("exp=%s", exp.Format(time.RFC3339)))
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}
