package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/PolarWolf314/sealkit/internal/invoke"
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/PolarWolf314/sealkit/internal/ui"
	"github.com/PolarWolf314/sealkit/internal/utils"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message unless
// output is verbose or stdout is not a terminal. The returned cleanup prints
// s.FinalMSG, which doesn't need a trailing newline, and must be deferred.
func startSpinner(message string, l logger.Logger) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		l.Debugf("Failed to set spinner color: %v", err)
	}

	animate := !l.Verbose && !l.Debug && utils.IsStdoutTerminal()
	if animate {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		l.Infof("%s", message)
	}

	cleanup := func() {
		if animate {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if animate {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// failureMessage renders err for a spinner final message. Cancellation is
// reported as a warning, everything else as an error with a hint where one
// applies.
func failureMessage(action string, err error) string {
	if errors.Is(err, kerrors.ErrCancelled) {
		return ui.WarningLine("%s cancelled", action)
	}

	msg := ui.ErrorLine("%s failed: %v", action, err)
	if hint := hintFor(err); hint != "" {
		msg += ui.HintLine("%s", hint)
	}
	return msg
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrCertFolderNotConfigured):
		return "Run " + ui.Code.Sprint("sealkit config set-cert-folder <dir>") + " first"
	case errors.Is(err, kerrors.ErrNoCertificateSelected), errors.Is(err, kerrors.ErrCertificateNotFound):
		return "Run " + ui.Code.Sprint("sealkit config list-certs") + " and " + ui.Code.Sprint("sealkit config select-cert <name>")
	case errors.Is(err, kerrors.ErrProcessLaunch):
		return "Run " + ui.Code.Sprint("sealkit secrets doctor") + " to check your tools"
	case errors.Is(err, kerrors.ErrTimedOut):
		return "Raise " + ui.Flag.Sprint("timeout_seconds") + " under [tools] in " + ui.Path.Sprint("config.toml") + " if the cluster is slow"
	case errors.Is(err, kerrors.ErrNotSealedSecret):
		return "Use " + ui.Code.Sprint("sealkit secrets decode") + " for plain Secrets"
	case errors.Is(err, kerrors.ErrNotASecret):
		return "Only manifests with " + ui.Highlight.Sprint("kind: Secret") + " can be encoded, decoded or sealed"
	}
	return ""
}

// warnTruncated notes when a tool produced more output than is kept.
func warnTruncated(l logger.Logger, result *invoke.Result) {
	if result != nil && result.Truncated {
		l.Warnf("tool output exceeded %d bytes and was truncated", invoke.DefaultMaxOutput)
	}
}
