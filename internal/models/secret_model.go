package models

import (
	"fmt"

	v1 "k8s.io/api/core/v1"
)

// SecretRecord is a read-only view of a fetched Kubernetes secret, holding
// only the fields the listing pipeline cares about
type SecretRecord struct {
	Name string            // Secret name
	Type string            // Secret type, e.g. "Opaque" or "kubernetes.io/tls"
	Data map[string][]byte // Raw key/value payload, possibly empty
}

// DataContractError reports a fetched secret that is missing a field the
// pipeline relies on. Guessing a default would misclassify the secret under
// the type filter, so this aborts the run instead.
type DataContractError struct {
	Field  string // which field was missing ("name" or "type")
	Secret string // secret name if known, empty otherwise
}

func (e *DataContractError) Error() string {
	if e.Secret == "" {
		return fmt.Sprintf("fetched secret is missing required field %q", e.Field)
	}
	return fmt.Sprintf("secret %q is missing required field %q", e.Secret, e.Field)
}

// NewSecretRecord validates a fetched secret and converts it into a
// SecretRecord. An empty name or type is a DataContractError.
func NewSecretRecord(secret *v1.Secret) (SecretRecord, error) {
	if secret.Name == "" {
		return SecretRecord{}, &DataContractError{Field: "name"}
	}
	if secret.Type == "" {
		return SecretRecord{}, &DataContractError{Field: "type", Secret: secret.Name}
	}

	return SecretRecord{
		Name: secret.Name,
		Type: string(secret.Type),
		Data: secret.Data,
	}, nil
}
