package kube

import (
	"context"
	"time"

	"github.com/PolarWolf314/sealkit/internal/invoke"
)

// DefaultKubesealBinary and DefaultKubectlBinary are looked up on PATH.
const (
	DefaultKubesealBinary = "kubeseal"
	DefaultKubectlBinary  = "kubectl"
)

// Sealer seals Secrets with kubeseal using a local public certificate, so no
// cluster access is needed.
type Sealer struct {
	Invoker *invoke.Invoker
	Binary  string
	Timeout time.Duration
}

// Seal feeds secret to kubeseal on stdin and writes the SealedSecret to dest.
func (s *Sealer) Seal(ctx context.Context, certPath string, secret []byte, dest string) *invoke.Result {
	return s.Invoker.RunToFile(ctx, invoke.Request{
		Program: binaryOrDefault(s.Binary, DefaultKubesealBinary),
		Args:    []string{"--cert", certPath, "--format", "yaml"},
		Input:   secret,
		Timeout: s.Timeout,
	}, dest)
}

func binaryOrDefault(binary, fallback string) string {
	if binary == "" {
		return fallback
	}
	return binary
}
