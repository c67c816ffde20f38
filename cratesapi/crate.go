/*
Package cratesapi holds the small vocabulary shared by every command:
crate names, crate kinds, and the error codes commands may return.
*/
package cratesapi

import (
	"strings"
)

// CrateName is the name of one directory under a workspace's crates directory.
// Values produced by ParseCrateName are always a single, non-special path segment.
type CrateName string

// ParseCrateName checks that name can be used as a single path segment under crates/.
//
// Errors:
//
//   - crates-error-invalid-name -- when the name is empty, special, or contains a separator
func ParseCrateName(name string) (CrateName, error) {
	switch {
	case name == "":
		return "", ErrorInvalidName(name, "name is empty")
	case name == "." || name == "..":
		return "", ErrorInvalidName(name, "name refers to a special directory")
	case strings.ContainsAny(name, `/\`):
		return "", ErrorInvalidName(name, "name contains a path separator")
	case strings.ContainsRune(name, 0):
		return "", ErrorInvalidName(name, "name contains a NUL byte")
	}
	return CrateName(name), nil
}

// CrateKind is the type of crate the build tool should initialize.
type CrateKind string

const (
	CrateKindBin CrateKind = "bin"
	CrateKindLib CrateKind = "lib"
)

// CrateKinds lists every accepted kind, in the order shown in help text.
var CrateKinds = []CrateKind{CrateKindBin, CrateKindLib}

// ParseCrateKind accepts exactly "bin" or "lib".
//
// Errors:
//
//   - crates-error-invalid-argument -- when kind is anything else
func ParseCrateKind(kind string) (CrateKind, error) {
	for _, k := range CrateKinds {
		if string(k) == kind {
			return k, nil
		}
	}
	return "", ErrorArgument("crate type must be one of: bin, lib", [2]string{"type", kind})
}

// Flag is the build tool flag selecting this kind, e.g. "--lib".
func (k CrateKind) Flag() string {
	return "--" + string(k)
}
