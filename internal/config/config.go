package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds the validated parameters for one listing run. It is built
// once and never mutated afterwards.
type Config struct {
	Namespace string // namespace to list secrets in, required
	Query     string // substring filter on secret names; "" matches everything
	ShowAll   bool   // when false, only secrets of type "Opaque" are shown
}

// ErrNamespaceRequired is returned when no namespace was provided.
var ErrNamespaceRequired = errors.New("namespace is required")

// New validates the run parameters and returns an immutable Config.
// An empty query is canonical for "no filter": strings.Contains is
// universally true for the empty substring, so it matches every name.
func New(namespace, query string, showAll bool) (Config, error) {
	if namespace == "" {
		return Config{}, ErrNamespaceRequired
	}

	return Config{
		Namespace: namespace,
		Query:     query,
		ShowAll:   showAll,
	}, nil
}

// Env carries process-level settings read from the environment.
type Env struct {
	Kubeconfig string `env:"KUBECONFIG"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses the environment into an Env.
func LoadEnv() (Env, error) {
	return env.ParseAs[Env]()
}
