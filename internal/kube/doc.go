// Package kube talks to the sealing and cluster tooling.
//
// Values taken from manifests are untrusted. Before a name or namespace is
// handed to kubectl or the API server it must pass ValidateName, the RFC 1123
// rule Kubernetes itself applies to object names. Validation happens before
// any process is spawned, and arguments are always passed as a discrete argv,
// never through a shell.
//
// Two Fetcher implementations read a live Secret back from the cluster:
// KubectlFetcher shells out to kubectl, APIFetcher uses client-go directly.
package kube
