package workflows

import (
	"context"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/manifest"
)

// loadManifest reads and parses path.
func loadManifest(path string) ([]byte, *manifest.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, path, err)
	}

	doc, err := manifest.Load(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, doc, nil
}

// writeManifest replaces the content of path. Existing files keep their
// permissions; new files are owner-only.
func writeManifest(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", kerrors.ErrIO, path, err)
	}
	return nil
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrCancelled, err)
	}
	return nil
}
