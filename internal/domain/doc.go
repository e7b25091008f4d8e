// Package domain contains the core model shared by the rot13 layers.
//
// It does not depend on YAML parsing, terminals, or the filesystem. Infra adapters map
// into/from these types.
package domain
