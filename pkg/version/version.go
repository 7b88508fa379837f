// Package version exposes build metadata stamped at link time.
package version

import (
	"fmt"
	"io"
	"runtime"
)

// These variables are populated via -ldflags at build time:
//
//	-X github.com/goliatone/gitweb/pkg/version.Version=v1.2.0
//	-X github.com/goliatone/gitweb/pkg/version.Commit=abc1234
//	-X github.com/goliatone/gitweb/pkg/version.Date=2025-11-02T10:00:00Z
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info bundles the build metadata with runtime details.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information for the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("gitweb %s (commit %s, built %s, %s, %s)",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}

// Print writes the version line to w.
func Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, Get().String())
	return err
}
