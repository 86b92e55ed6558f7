// Package version exposes the build version of paybatch.
package version

// version is set at build time with
// -ldflags "-X github.com/rshade/paybatch/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overwritten by the linker.
var version = "dev"

// GetVersion returns the build version, "dev" for local builds.
func GetVersion() string {
	return version
}
