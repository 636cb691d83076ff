// Package configs manages sealkit's user configuration.
//
// Configuration is stored in TOML at $XDG_CONFIG_HOME/sealkit/config.toml
// (the platform user config dir elsewhere):
//
//	[certificates]
//	folder = "/home/me/certs"
//	active = "prod.pem"
//
//	[tools]
//	kubeseal = "kubeseal"
//	kubectl = "kubectl"
//	timeout_seconds = 30
//
// # Certificates
//
// Sealing uses a public certificate picked from a folder. ListCertificates
// finds *.pem, *.crt and *.cert files (case-insensitive). Changing the folder
// clears the active certificate, since it may not exist in the new one.
// CurrentCertificatePath reports which of the three configuration steps is
// missing.
//
// # Settings
//
// UserSealkitSettings is resolved at startup and holds the config and audit
// log paths.
package configs
