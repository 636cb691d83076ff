package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/sealkit/internal/audit"
	"github.com/PolarWolf314/sealkit/internal/configs"
	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/invoke"
	"github.com/PolarWolf314/sealkit/internal/kube"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/PolarWolf314/sealkit/internal/manifest"
	"github.com/PolarWolf314/sealkit/internal/transcode"
	"github.com/PolarWolf314/sealkit/internal/utils"
)

// Backend selects how the live Secret is read from the cluster.
type Backend string

const (
	BackendKubectl Backend = "kubectl"
	BackendAPI     Backend = "api"
)

// ParseBackend accepts "kubectl" (the default when empty) or "api".
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case "", BackendKubectl:
		return BackendKubectl, nil
	case BackendAPI:
		return BackendAPI, nil
	default:
		return "", fmt.Errorf("unknown backend %q: expected %q or %q", s, BackendKubectl, BackendAPI)
	}
}

// UnsealOptions configures the unseal workflow.
type UnsealOptions struct {
	// File is the SealedSecret manifest.
	File string

	// Output overrides the default <base>-unsealed<ext> destination.
	Output string

	Backend Backend

	// Decode also decodes the fetched Secret's data values.
	Decode bool

	// Kubeconfig is used by the api backend outside a cluster. Empty means
	// the config file's value, then ~/.kube/config.
	Kubeconfig string

	// Fetcher replaces the backend when set.
	Fetcher kube.Fetcher

	Log logger.Logger
}

// UnsealResult contains the outcome of an unseal operation.
type UnsealResult struct {
	SourceFile string
	OutputFile string
	Metadata   manifest.SecretMetadata
	Backend    Backend

	// Decoded is set when Decode was requested.
	Decoded *transcode.Summary
}

// Unseal retrieves the plaintext Secret a SealedSecret was created from by
// reading it back from the cluster, which holds the sealing private key.
//
// Returns ErrNotSealedSecret for other manifests, ErrParse when the metadata
// has no name and ErrValidation when the name or namespace is malformed.
// Validation happens before any tool is run.
func Unseal(ctx context.Context, opts UnsealOptions) (*UnsealResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	_, doc, err := loadManifest(opts.File)
	if err != nil {
		return nil, err
	}
	if doc.Kind() != manifest.KindSealedSecret {
		return nil, fmt.Errorf("%w: %s has kind %q", kerrors.ErrNotSealedSecret, opts.File, doc.Kind())
	}

	metadata, err := doc.SecretMetadata()
	if err != nil {
		return nil, err
	}
	if err := kube.ValidateMetadata(metadata); err != nil {
		return nil, err
	}

	backend, err := ParseBackend(string(opts.Backend))
	if err != nil {
		return nil, err
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(backend, opts)
		if err != nil {
			return nil, err
		}
	}

	result := &UnsealResult{
		SourceFile: opts.File,
		Metadata:   metadata,
		Backend:    backend,
	}

	opts.Log.Infof("Fetching secret %s/%s via %s", metadata.Namespace, metadata.Name, backend)
	out, err := fetcher.Fetch(ctx, metadata)
	if err == nil && opts.Decode {
		out, result.Decoded, err = decodeFetched(out, opts.Log)
	}

	if err == nil {
		result.OutputFile = opts.Output
		if result.OutputFile == "" {
			result.OutputFile = utils.DerivedPath(opts.File, utils.UnsealedSuffix)
		}
		err = writeManifest(result.OutputFile, out)
	}

	entry := audit.NewEntry("unseal")
	entry.File = opts.File
	entry.Output = result.OutputFile
	entry.Secret = metadata.Namespace + "/" + metadata.Name
	entry.Backend = string(backend)
	entry.Outcome = outcomeOf(err)
	if err != nil {
		entry.Output = ""
		entry.Error = err.Error()
	}
	audit.Log(entry)

	return result, err
}

func newFetcher(backend Backend, opts UnsealOptions) (kube.Fetcher, error) {
	config, err := configs.LoadConfig()
	if err != nil {
		return nil, err
	}

	if backend == BackendAPI {
		kubeconfig := opts.Kubeconfig
		if kubeconfig == "" {
			kubeconfig = config.Tools.Kubeconfig
		}
		return kube.NewAPIFetcher(kubeconfig)
	}

	return &kube.KubectlFetcher{
		Invoker: invoke.New(opts.Log),
		Binary:  config.Tools.Kubectl,
		Timeout: config.Tools.Timeout(),
	}, nil
}

func decodeFetched(data []byte, log logger.Logger) ([]byte, *transcode.Summary, error) {
	doc, err := manifest.Load(data)
	if err != nil {
		return nil, nil, fmt.Errorf("fetched secret: %w", err)
	}
	summary, err := transcode.New(log).Decode(doc)
	if err != nil {
		return nil, nil, err
	}
	out, err := doc.Dump()
	if err != nil {
		return nil, nil, err
	}
	return out, &summary, nil
}

// outcomeOf names a settled error the way invoke.Outcome does.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return invoke.Succeeded.String()
	case errors.Is(err, kerrors.ErrCancelled):
		return invoke.Cancelled.String()
	case errors.Is(err, kerrors.ErrTimedOut):
		return invoke.TimedOut.String()
	default:
		return invoke.Failed.String()
	}
}
