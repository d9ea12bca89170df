// Package version carries the build version, set with
// -ldflags "-X rap/internal/version.Version=...".
package version

var Version = "dev"
