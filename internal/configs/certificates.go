package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

var certificateExtensions = []string{".pem", ".crt", ".cert"}

// IsCertificateFile reports whether name has a certificate extension,
// ignoring case.
func IsCertificateFile(name string) bool {
	return slices.Contains(certificateExtensions, strings.ToLower(filepath.Ext(name)))
}

// ListCertificates returns the sorted names of the certificate files directly
// inside folder.
func ListCertificates(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read certificate folder %s: %v", kerrors.ErrIO, folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", kerrors.ErrIO, folder)
	}

	// Globbing an fs.FS keeps metacharacters in folder from being interpreted.
	matches, err := doublestar.Glob(os.DirFS(folder), "*", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %v", kerrors.ErrIO, folder, err)
	}

	var certs []string
	for _, m := range matches {
		if IsCertificateFile(m) {
			certs = append(certs, m)
		}
	}
	slices.Sort(certs)
	return certs, nil
}

// SetCertificateFolder stores folder as an absolute path and clears the
// active certificate.
func (c *Config) SetCertificateFolder(folder string) error {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", folder, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", kerrors.ErrIO, abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", kerrors.ErrIO, abs)
	}

	c.Certificates.Folder = abs
	c.Certificates.Active = ""
	return nil
}

// SelectCertificate makes name, a file in the configured folder, the active
// certificate.
func (c *Config) SelectCertificate(name string) error {
	if c.Certificates.Folder == "" {
		return kerrors.ErrCertFolderNotConfigured
	}

	certs, err := ListCertificates(c.Certificates.Folder)
	if err != nil {
		return err
	}
	if !slices.Contains(certs, name) {
		return fmt.Errorf("%w: %s in %s", kerrors.ErrCertificateNotFound, name, c.Certificates.Folder)
	}

	c.Certificates.Active = name
	return nil
}

// CurrentCertificatePath returns the full path of the active certificate.
func (c *Config) CurrentCertificatePath() (string, error) {
	if c.Certificates.Folder == "" {
		return "", kerrors.ErrCertFolderNotConfigured
	}
	if c.Certificates.Active == "" {
		return "", kerrors.ErrNoCertificateSelected
	}

	path := filepath.Join(c.Certificates.Folder, c.Certificates.Active)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", kerrors.ErrCertificateNotFound, path)
	}
	return path, nil
}
