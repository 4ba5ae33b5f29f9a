// Package buildinfo exposes version metadata for the factorial binary. Values
// can be overridden with -ldflags; the cli package values are used as a
// fallback so older release scripts keep working.
package buildinfo

import (
	"runtime"
	"strings"

	"github.com/flarebyte/factorial/cli"
)

var (
	// Version is the release string. Empty means cli.Version, then "dev".
	Version = ""
	Commit  = ""
	// Date is the build date. Empty means cli.Date.
	Date    = ""
	BuiltBy = ""
)

// Info is the structured form printed by `version --json` and `--yaml`.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
	Go      string `json:"go" yaml:"go"`
	GoOS    string `json:"go_os" yaml:"go_os"`
	GoArch  string `json:"go_arch" yaml:"go_arch"`
}

func resolvedVersion() string {
	if Version != "" {
		return Version
	}
	if cli.Version != "" {
		return cli.Version
	}
	return "dev"
}

func resolvedDate() string {
	if Date != "" {
		return Date
	}
	return cli.Date
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// Summary returns a single-line version string such as
// "1.2.3 (commit=abcdef0, date=2026-02-09)".
func Summary() string {
	v := resolvedVersion()
	parts := make([]string, 0, 2)
	if c := shortCommit(); c != "" {
		parts = append(parts, "commit="+c)
	}
	if d := resolvedDate(); d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

// Collect snapshots the metadata together with the Go runtime details.
func Collect() Info {
	return Info{
		Version: resolvedVersion(),
		Commit:  Commit,
		Date:    resolvedDate(),
		BuiltBy: BuiltBy,
		Go:      runtime.Version(),
		GoOS:    runtime.GOOS,
		GoArch:  runtime.GOARCH,
	}
}
