// Package version exposes build metadata injected at link time.
package version

// Set via -ldflags at build time, e.g.
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns the version, commit hash and build date.
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}
