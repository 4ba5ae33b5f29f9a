// Package cli carries release metadata that packaging scripts inject with
// ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/factorial/cli.Version=1.2.3' -X 'github.com/flarebyte/factorial/cli.Date=2026-02-09'"
package cli

var (
	Version string
	Date    string
)
