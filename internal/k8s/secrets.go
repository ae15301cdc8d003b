package k8s

import (
	"fmt"

	"github.com/rs/zerolog/log"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"ksecrets/internal/models"
)

// ListSecrets fetches one snapshot of the secrets in a namespace and
// converts them into validated SecretRecords. A secret missing its name or
// type surfaces as a models.DataContractError.
func (c *Client) ListSecrets(namespace string) ([]models.SecretRecord, error) {
	list, err := c.ClientSet.CoreV1().Secrets(namespace).List(c.Context, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets in namespace %q: %w", namespace, err)
	}

	records := make([]models.SecretRecord, 0, len(list.Items))
	for i := range list.Items {
		record, err := models.NewSecretRecord(&list.Items[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	log.Debug().Str("namespace", namespace).Int("count", len(records)).Msg("listed secrets")
	return records, nil
}

// ListNamespaces returns the names of all namespaces in the cluster.
func (c *Client) ListNamespaces() ([]string, error) {
	list, err := c.ClientSet.CoreV1().Namespaces().List(c.Context, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	names := make([]string, 0, len(list.Items))
	for _, ns := range list.Items {
		names = append(names, ns.Name)
	}

	log.Debug().Int("count", len(names)).Msg("listed namespaces")
	return names, nil
}
