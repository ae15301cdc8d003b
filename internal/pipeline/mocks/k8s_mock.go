package mocks

import "ksecrets/internal/models"

// MockK8sClient implements the k8s.K8sClient interface for tests.
type MockK8sClient struct {
	// call flags for assertions
	ListSecretsCalled    bool
	ListNamespacesCalled bool

	// forceable errors (set in tests)
	ListSecretsErr    error
	ListNamespacesErr error

	// canned results
	Secrets    []models.SecretRecord
	Namespaces []string

	// records the namespace the pipeline asked for
	RequestedNamespace string
}

func NewMockK8sClient() *MockK8sClient {
	return &MockK8sClient{}
}

// ListSecrets returns the canned secrets regardless of namespace, recording
// what was asked for.
func (m *MockK8sClient) ListSecrets(namespace string) ([]models.SecretRecord, error) {
	m.ListSecretsCalled = true
	m.RequestedNamespace = namespace
	if m.ListSecretsErr != nil {
		return nil, m.ListSecretsErr
	}
	return m.Secrets, nil
}

// ListNamespaces returns the canned namespace names.
func (m *MockK8sClient) ListNamespaces() ([]string, error) {
	m.ListNamespacesCalled = true
	if m.ListNamespacesErr != nil {
		return nil, m.ListNamespacesErr
	}
	return m.Namespaces, nil
}
