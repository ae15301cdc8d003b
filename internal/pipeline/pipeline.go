// Package pipeline orchestrates one listing run: fetch, filter, render,
// and the zero-result diagnostic.
package pipeline

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"ksecrets/internal/config"
	"ksecrets/internal/filter"
	"ksecrets/internal/k8s"
	"ksecrets/internal/render"
)

// Pipeline wires the cluster client to the renderer
type Pipeline struct {
	Client   k8s.K8sClient
	Renderer *render.Renderer
	Out      io.Writer // diagnostic messages go here
}

// New creates a Pipeline
func New(client k8s.K8sClient, renderer *render.Renderer, out io.Writer) *Pipeline {
	return &Pipeline{
		Client:   client,
		Renderer: renderer,
		Out:      out,
	}
}

// Run performs one listing pass and returns the total number of key/value
// entries rendered. When the total is zero it consults the cluster's
// namespace list to tell an empty namespace from a nonexistent one. Errors
// from either cluster call abort the run; in particular a failed namespace
// list must not produce a "does not exist" claim.
func (p *Pipeline) Run(cfg config.Config) (int, error) {
	secrets, err := p.Client.ListSecrets(cfg.Namespace)
	if err != nil {
		return 0, err
	}

	total := 0
	displayed := 0
	for _, secret := range secrets {
		if !filter.ShouldDisplay(cfg, secret) {
			continue
		}
		total += p.Renderer.Render(secret)
		displayed++
	}

	log.Debug().
		Str("namespace", cfg.Namespace).
		Int("fetched", len(secrets)).
		Int("displayed", displayed).
		Int("entries", total).
		Msg("listing pass finished")

	if total == 0 {
		namespaces, err := p.Client.ListNamespaces()
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(p.Out, Diagnose(cfg.Namespace, namespaces))
	}

	return total, nil
}

// Diagnose picks the message for a run that displayed nothing, based on
// whether the target namespace exists in the cluster.
func Diagnose(namespace string, clusterNamespaces []string) string {
	for _, name := range clusterNamespaces {
		if name == namespace {
			return fmt.Sprintf("No secrets found in namespace '%s'", namespace)
		}
	}
	return fmt.Sprintf("Namespace '%s' does not exist. Maybe you're looking at the wrong cluster?", namespace)
}
