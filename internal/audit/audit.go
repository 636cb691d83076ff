package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/sealkit/internal/configs"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`
	User      string `json:"user"`
	Operation string `json:"op"`
	Outcome   string `json:"outcome"`

	// Optional fields depending on operation.
	File        string `json:"file,omitempty"`
	Output      string `json:"output,omitempty"`
	Secret      string `json:"secret,omitempty"`      // namespace/name, for unseal.
	Certificate string `json:"certificate,omitempty"` // For seal.
	Backend     string `json:"backend,omitempty"`     // For unseal.
	Changed     int    `json:"changed,omitempty"`     // For encode/decode.
	Skipped     int    `json:"skipped,omitempty"`
	Failed      int    `json:"failed,omitempty"`
	DryRun      bool   `json:"dry_run,omitempty"`
	Error       string `json:"error,omitempty"`
}

// NewEntry returns an entry for op with the id and user filled in.
func NewEntry(op string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		User:      configs.UserSealkitSettings.Username,
		Operation: op,
	}
}

// Log appends an entry to the audit log. Failures are ignored.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampLayout)
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return configs.UserSealkitSettings.AuditLogPath
}

// ReadEntries reads all entries from the audit log, oldest first.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Filter returns the entries for op, or all entries when op is empty,
// keeping at most the last limit (all when limit <= 0).
func Filter(entries []Entry, op string, limit int) []Entry {
	var filtered []Entry
	for _, e := range entries {
		if op == "" || e.Operation == op {
			filtered = append(filtered, e)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}
	return filtered
}
