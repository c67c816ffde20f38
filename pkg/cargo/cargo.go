/*
Package cargo builds the command lines crates hands to the build tool
and reads the fields of a crate manifest that crates displays.
*/
package cargo

import (
	"github.com/manufactory/crates/cratesapi"
)

// ManifestFilename is the per-crate build manifest.
const ManifestFilename = "Cargo.toml"

// InitArgs returns the arguments that create a crate of the given kind at target.
func InitArgs(kind cratesapi.CrateKind, target string) []string {
	return []string{"init", kind.Flag(), target}
}

// RunArgs returns the arguments that build and run the crate described by manifest.
// Release builds are optimized.
func RunArgs(manifest string, release bool) []string {
	args := []string{"run"}
	if release {
		args = append(args, "--release")
	}
	return append(args, "--manifest-path", manifest)
}
