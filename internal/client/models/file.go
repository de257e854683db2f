package models

import (
	"net/url"
	"strings"
)

// File is one uploaded artifact of a Paper with its vote tallies. Counts are
// authoritative backend values; the client never adjusts them.
type File struct {
	// ID is the backend file identifier when the API provides one.
	ID string
	// Index is the position of the file in the backend's file list. Votes
	// address it, and it survives client-side filtering.
	Index int

	URL           string
	UpvoteCount   int
	DownvoteCount int
}

// HasQualifiedURL reports whether the file points at an absolute http(s)
// resource with a host.
func (f File) HasQualifiedURL() bool {
	return IsQualifiedURL(f.URL)
}

func IsQualifiedURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
