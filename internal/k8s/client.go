package k8s

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Adding the following variables, so that the code can be tested
var (
	inClusterConfig      = rest.InClusterConfig
	buildConfigFromFlags = clientcmd.BuildConfigFromFlags
	newForConfig         = kubernetes.NewForConfig
)

type Client struct {
	ClientSet kubernetes.Interface
	Context   context.Context
}

// NewClient creates a new Kubernetes client. It first tries to create an
// in-cluster config and falls back to the given kubeconfig file. An empty
// kubeconfig path means $HOME/.kube/config.
func NewClient(ctx context.Context, kubeconfig string) (*Client, error) {
	config, err := inClusterConfig()
	if err != nil {
		if kubeconfig == "" {
			kubeconfig = filepath.Join(os.Getenv("HOME"), ".kube", "config")
		}
		config, err = buildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
		}
	}

	clientset, err := newForConfig(config)
	if err != nil {
		return nil, err
	}

	return &Client{ClientSet: clientset, Context: ctx}, nil
}

// NewClientWithConfig Function to use injected config for testing
func NewClientWithConfig(ctx context.Context, config *rest.Config) (*Client, error) {
	clientset, err := newForConfig(config)
	if err != nil {
		return nil, err
	}
	return &Client{ClientSet: clientset, Context: ctx}, nil
}
