// Package version holds the build version. Release builds override it with
// -ldflags "-X blastn/internal/version.Version=v1.2.3".
package version

var Version = "0.1.0-dev"
