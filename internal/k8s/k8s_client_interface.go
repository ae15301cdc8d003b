package k8s

import "ksecrets/internal/models"

// K8sClient defines the methods used by the listing pipeline so it can be
// mocked in tests. This interface isolates Kubernetes-specific logic inside
// the k8s package, so that the pipeline never manipulates raw Kubernetes
// clients directly
type K8sClient interface {
	ListSecrets(namespace string) ([]models.SecretRecord, error)
	ListNamespaces() ([]string, error)
}
