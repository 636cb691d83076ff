package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/sealkit/internal/audit"
	"github.com/PolarWolf314/sealkit/internal/configs"
	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/invoke"
	"github.com/PolarWolf314/sealkit/internal/kube"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/PolarWolf314/sealkit/internal/manifest"
	"github.com/PolarWolf314/sealkit/internal/utils"
)

// SealOptions configures the seal workflow.
type SealOptions struct {
	// File is the Secret manifest to seal.
	File string

	// Output overrides the default <base>-sealed<ext> destination.
	Output string

	// Certificate overrides the active certificate from the config.
	Certificate string

	Log logger.Logger
}

// SealResult contains the outcome of a seal operation.
type SealResult struct {
	SourceFile  string
	OutputFile  string
	Certificate string

	// Process is the settled kubeseal invocation.
	Process *invoke.Result
}

// Seal encrypts a Secret into a SealedSecret with kubeseal, using a public
// certificate so no cluster access is needed.
//
// Returns ErrCertFolderNotConfigured, ErrNoCertificateSelected or
// ErrCertificateNotFound when no certificate is usable, ErrNotASecret for
// other manifests and ErrValidation when the Secret's name or namespace is
// malformed. kubeseal failures are returned along with the result.
func Seal(ctx context.Context, opts SealOptions) (*SealResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, err
	}

	certPath := opts.Certificate
	if certPath == "" {
		certPath, err = config.CurrentCertificatePath()
		if err != nil {
			return nil, err
		}
	} else if !utils.FileExists(certPath) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrCertificateNotFound, certPath)
	}

	data, doc, err := loadManifest(opts.File)
	if err != nil {
		return nil, err
	}
	if doc.Kind() != manifest.KindSecret {
		return nil, fmt.Errorf("%w: %s has kind %q", kerrors.ErrNotASecret, opts.File, doc.Kind())
	}
	metadata, err := doc.SecretMetadata()
	if err != nil {
		return nil, err
	}
	if err := kube.ValidateMetadata(metadata); err != nil {
		return nil, err
	}

	dest := opts.Output
	if dest == "" {
		dest = utils.DerivedPath(opts.File, utils.SealedSuffix)
	}

	sealer := &kube.Sealer{
		Invoker: invoke.New(opts.Log),
		Binary:  config.Tools.Kubeseal,
		Timeout: config.Tools.Timeout(),
	}
	opts.Log.Infof("Sealing %s/%s with %s", metadata.Namespace, metadata.Name, certPath)
	process := sealer.Seal(ctx, certPath, data, dest)

	result := &SealResult{
		SourceFile:  opts.File,
		OutputFile:  dest,
		Certificate: certPath,
		Process:     process,
	}

	entry := audit.NewEntry("seal")
	entry.File = opts.File
	entry.Output = dest
	entry.Secret = metadata.Namespace + "/" + metadata.Name
	entry.Certificate = filepath.Base(certPath)
	entry.Outcome = process.Outcome.String()
	if process.Err != nil {
		entry.Output = ""
		entry.Error = process.Err.Error()
	}
	audit.Log(entry)

	return result, process.Err
}
