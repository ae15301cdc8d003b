package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ksecrets/internal/config"
	"ksecrets/internal/models"
)

// Helper to create a test record
func testSecret(name, secretType string) models.SecretRecord {
	return models.SecretRecord{Name: name, Type: secretType}
}

func TestShouldDisplay(t *testing.T) {
	tests := []struct {
		name     string
		showAll  bool
		query    string
		secret   models.SecretRecord
		expected bool
	}{
		{
			name:     "opaque shown without query",
			secret:   testSecret("my-secret", "Opaque"),
			expected: true,
		},
		{
			name:     "opaque with matching query",
			query:    "token",
			secret:   testSecret("api-token", "Opaque"),
			expected: true,
		},
		{
			name:     "opaque with non-matching query",
			query:    "cert",
			secret:   testSecret("api-token", "Opaque"),
			expected: false,
		},
		{
			name:     "non-opaque filtered by default",
			secret:   testSecret("tls-cert", "kubernetes.io/tls"),
			expected: false,
		},
		{
			name:     "non-opaque shown with show all",
			showAll:  true,
			secret:   testSecret("tls-cert", "kubernetes.io/tls"),
			expected: true,
		},
		{
			name:     "show all still filters on query",
			showAll:  true,
			query:    "tls",
			secret:   testSecret("my-tls-cert", "kubernetes.io/tls"),
			expected: true,
		},
		{
			name:     "show all filters out non-matching",
			showAll:  true,
			query:    "db",
			secret:   testSecret("tls-cert", "kubernetes.io/tls"),
			expected: false,
		},
		{
			name:     "matching query cannot resurrect a type-gated secret",
			query:    "tls",
			secret:   testSecret("tls-cert", "kubernetes.io/tls"),
			expected: false,
		},
		{
			name:     "query is case sensitive",
			showAll:  true,
			query:    "TOKEN",
			secret:   testSecret("api-token", "Opaque"),
			expected: false,
		},
		{
			name:     "query matches infix substring",
			query:    "api",
			secret:   testSecret("my-api-credentials", "Opaque"),
			expected: true,
		},
		{
			name:     "empty query matches every name",
			query:    "",
			secret:   testSecret("anything-at-all", "Opaque"),
			expected: true,
		},
		{
			name:     "docker config filtered by default",
			secret:   testSecret("docker-creds", "kubernetes.io/dockerconfigjson"),
			expected: false,
		},
		{
			name:     "docker config shown with show all",
			showAll:  true,
			secret:   testSecret("docker-creds", "kubernetes.io/dockerconfigjson"),
			expected: true,
		},
		{
			name:     "service account token filtered by default",
			secret:   testSecret("sa-token", "kubernetes.io/service-account-token"),
			expected: false,
		},
		{
			name:     "bootstrap token filtered by default",
			secret:   testSecret("bootstrap-token", "bootstrap.kubernetes.io/token"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.New("default", tt.query, tt.showAll)
			assert.NoError(t, err)

			assert.Equal(t, tt.expected, ShouldDisplay(cfg, tt.secret))
		})
	}
}
