// Package version holds the build version, set with
// -ldflags "-X github.com/32bitkid/dashline/internal/version.Version=...".
package version

var Version = "dev"
