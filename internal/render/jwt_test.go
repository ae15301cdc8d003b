package render

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// mustSignedJWT builds a signed service-account-style token for tests. The
// key does not matter; inspection never verifies signatures.
func mustSignedJWT(t *testing.T) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "system:serviceaccount:default:builder",
		Issuer:    "kubernetes/serviceaccount",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}
