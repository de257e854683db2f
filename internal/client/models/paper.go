// Package models defines the client-side view of the papers service:
// subjects, papers with their files, vote directions and markers, and the
// payloads of user-initiated operations.
package models

import "fmt"

// Subject is a course a paper can be filed under.
type Subject struct {
	ID   string
	Name string
}

// Paper is a submitted question paper.
type Paper struct {
	ID          string
	Subject     string
	Semester    int
	Description string
	Files       []File
}

// Clone returns a deep copy so snapshots handed to callers cannot be
// mutated behind the owner's back.
func (p Paper) Clone() Paper {
	c := p
	if p.Files != nil {
		c.Files = make([]File, len(p.Files))
		copy(c.Files, p.Files)
	}
	return c
}

func (p Paper) String() string {
	return fmt.Sprintf("%s, semester %d", p.Subject, p.Semester)
}

// ClonePapers deep-copies a result set.
func ClonePapers(in []Paper) []Paper {
	if in == nil {
		return nil
	}
	out := make([]Paper, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// Filter is the transient subject+semester selection of the browse view.
type Filter struct {
	Subject  string
	Semester string
}

// Complete reports whether both parts are selected. Papers are only
// requested for a complete filter.
func (f Filter) Complete() bool {
	return f.Subject != "" && f.Semester != ""
}
