// Package audit records sealkit operations in a local audit trail.
//
// Encode, decode, seal and unseal runs are appended as JSON Lines to
// audit.jsonl in the user config directory (see configs.UserSettings). Each
// entry carries a random id, a UTC timestamp, the local username and the
// operation details:
//
//	entry := audit.NewEntry("seal")
//	entry.File = "secret.yaml"
//	entry.Outcome = "succeeded"
//	audit.Log(entry)
//
// Logging is best-effort: an operation never fails because its audit entry
// could not be written. Entries never contain secret values.
//
// ReadEntries parses the log back for `sealkit secrets log`, skipping lines
// left malformed by partial writes.
package audit
