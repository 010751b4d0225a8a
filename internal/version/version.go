// Package version exposes build identity for the roomscout binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/roomscout/roomscout/internal/version.Version=v0.3.0 \
//	                   -X github.com/roomscout/roomscout/internal/version.Commit=abc1234"
//
// Unset values fall back to the VCS stamp embedded by the Go toolchain.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision, modified string
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value
			}
		}
		if Commit == "" && revision != "" {
			if len(revision) > 7 {
				revision = revision[:7]
			}
			Commit = revision
			if modified == "true" {
				Commit += "-dirty"
			}
		}
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// Full returns the version together with the commit it was built from.
func Full() string {
	return fmt.Sprintf("%s (commit %s)", Version, Commit)
}
