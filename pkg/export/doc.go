// Package export serialises a parsed form definition for downstream
// tooling: ordered JSON and YAML documents for snapshotting and code
// generation, and an OpenAPI document describing the submission payload the
// form produces.
package export
