// Package version holds build metadata of the arkast binary. The values are
// set at link time:
//
//	go build -ldflags "-X github.com/Sumatoshi-tech/arkast/pkg/version.Version=v0.3.0"
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
)

// Build metadata, overridden with -ldflags -X.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// InitBinaryVersion fills Version and Commit from the embedded module info
// when the binary was built without ldflags, e.g. by go install.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "none" {
				Commit = setting.Value
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}

// String renders the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("arkast %s (commit %s, built %s, schema v%d)", Version, Commit, Date, kind.SchemaVersion)
}
