package kube

import (
	"fmt"
	"regexp"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/manifest"
)

const maxNameLength = 253

var namePattern = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

// IsValidName reports whether name is lowercase alphanumeric with inner
// hyphens, 1 to 253 characters long.
func IsValidName(name string) bool {
	if len(name) == 0 || len(name) > maxNameLength {
		return false
	}
	return namePattern.MatchString(name)
}

// ValidateName returns ErrValidation describing why name is unusable.
func ValidateName(kind, name string) error {
	if IsValidName(name) {
		return nil
	}
	return fmt.Errorf("%w: invalid Kubernetes %s %q: must be lowercase alphanumeric with hyphens, starting and ending with alphanumeric, at most %d characters",
		kerrors.ErrValidation, kind, name, maxNameLength)
}

// ValidateMetadata validates the secret name, then the namespace.
func ValidateMetadata(metadata manifest.SecretMetadata) error {
	if err := ValidateName("secret name", metadata.Name); err != nil {
		return err
	}
	return ValidateName("namespace", metadata.Namespace)
}
