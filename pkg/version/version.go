// Package version carries the build identity stamped in at link time
// via -ldflags -X directives. The zero values identify a local build.
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns the one-line form used for the --version flag.
func Summary() string {
	return fmt.Sprintf("%s (%s)", Version, CommitHash)
}
