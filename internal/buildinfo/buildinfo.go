// Package buildinfo prints the version stamped into the binary with
// -ldflags "-X github.com/dmitrijs2005/iapapers/internal/buildinfo.BuildVersion=...".
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(BuildVersion))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(BuildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(BuildCommit))
}
