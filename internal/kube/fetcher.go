package kube

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/invoke"
	"github.com/PolarWolf314/sealkit/internal/manifest"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Fetcher reads a Secret from the cluster and returns it as a YAML manifest.
type Fetcher interface {
	Fetch(ctx context.Context, metadata manifest.SecretMetadata) ([]byte, error)
}

// KubectlFetcher runs `kubectl get secret <name> -n <namespace> -o yaml`.
type KubectlFetcher struct {
	Invoker *invoke.Invoker
	Binary  string
	Timeout time.Duration
}

func (f *KubectlFetcher) Fetch(ctx context.Context, metadata manifest.SecretMetadata) ([]byte, error) {
	if err := ValidateMetadata(metadata); err != nil {
		return nil, err
	}

	result := f.Invoker.Run(ctx, invoke.Request{
		Program: binaryOrDefault(f.Binary, DefaultKubectlBinary),
		Args:    []string{"get", "secret", metadata.Name, "-n", metadata.Namespace, "-o", "yaml"},
		Timeout: f.Timeout,
	})
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Stdout, nil
}

// Adding the following variables, so that the code can be tested
var (
	inClusterConfig      = rest.InClusterConfig
	buildConfigFromFlags = clientcmd.BuildConfigFromFlags
	newForConfig         = func(c *rest.Config) (kubernetes.Interface, error) { return kubernetes.NewForConfig(c) }
)

// APIFetcher reads Secrets through the Kubernetes API.
type APIFetcher struct {
	Client kubernetes.Interface
}

// NewAPIFetcher builds a client from the in-cluster config, falling back to
// kubeconfig (or ~/.kube/config when empty).
func NewAPIFetcher(kubeconfig string) (*APIFetcher, error) {
	config, err := inClusterConfig()
	if err != nil {
		if kubeconfig == "" {
			home, homeErr := os.UserHomeDir()
			if homeErr != nil {
				return nil, fmt.Errorf("failed to locate kubeconfig: %w", homeErr)
			}
			kubeconfig = filepath.Join(home, ".kube", "config")
		}
		config, err = buildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
		}
	}

	clientset, err := newForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return &APIFetcher{Client: clientset}, nil
}

func (f *APIFetcher) Fetch(ctx context.Context, metadata manifest.SecretMetadata) ([]byte, error) {
	if err := ValidateMetadata(metadata); err != nil {
		return nil, err
	}

	secret, err := f.Client.CoreV1().Secrets(metadata.Namespace).Get(ctx, metadata.Name, metav1.GetOptions{})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", kerrors.ErrCancelled, err)
		}
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("secret %s/%s not found in cluster: %w", metadata.Namespace, metadata.Name, err)
		}
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}

	doc := manifest.New("v1", manifest.KindSecret)
	meta := doc.EnsureMapping("metadata")
	meta.SetString("name", secret.Name)
	meta.SetString("namespace", secret.Namespace)
	if len(secret.Labels) > 0 {
		labels := meta.EnsureMapping("labels")
		for _, key := range sortedKeys(secret.Labels) {
			labels.SetString(key, secret.Labels[key])
		}
	}
	if secret.Type != "" {
		doc.SetString("type", string(secret.Type))
	}

	data := doc.EnsureData()
	for _, key := range sortedKeys(secret.Data) {
		data.Set(key, base64.StdEncoding.EncodeToString(secret.Data[key]))
	}

	return doc.Dump()
}
