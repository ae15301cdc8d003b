package integration

import (
	"fmt"
	"os"
	"testing"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"sigs.k8s.io/controller-runtime/pkg/envtest"
)

var (
	testEnv   *envtest.Environment
	cfg       *rest.Config
	clientset kubernetes.Interface
)

// Testing entry point
func TestMain(m *testing.M) {
	// envtest needs the kubebuilder binaries; without them this tier is a
	// no-op so unit tests still run anywhere
	if os.Getenv("KUBEBUILDER_ASSETS") == "" {
		fmt.Println("skipping integration tests: KUBEBUILDER_ASSETS not set")
		return
	}

	// Boots a real API server + etcd in memory
	testEnv = &envtest.Environment{}

	var err error
	cfg, err = testEnv.Start()
	if err != nil {
		panic(err)
	}

	// Builds a K8s client that talks to the fake cluster
	clientset, err = kubernetes.NewForConfig(cfg)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	if testEnv != nil {
		if err := testEnv.Stop(); err != nil {
			panic(err)
		}
	}
	os.Exit(code)
}
