package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownDirection = errors.New("unknown vote direction")
	ErrMalformedMarker  = errors.New("malformed vote marker key")
)

// Direction is the kind of vote cast on a file.
type Direction string

const (
	Upvote   Direction = "upvote"
	Downvote Direction = "downvote"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Upvote, "up":
		return Upvote, nil
	case Downvote, "down":
		return Downvote, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// MarkerSuffix is the ledger key suffix for the direction.
func (d Direction) MarkerSuffix() string {
	return string(d) + "d"
}

// MarkerKey identifies a vote marker: one per paper, file position and
// direction.
type MarkerKey struct {
	PaperID   string
	FileIndex int
	Direction Direction
}

// String renders the ledger key, e.g. "P1-0-upvoted".
func (k MarkerKey) String() string {
	return fmt.Sprintf("%s-%d-%s", k.PaperID, k.FileIndex, k.Direction.MarkerSuffix())
}

// ParseMarkerKey is the inverse of MarkerKey.String. Paper ids may contain
// dashes, so the key is split from the right.
func ParseMarkerKey(s string) (MarkerKey, error) {
	rest, suffix, ok := cutLast(s, "-")
	if !ok {
		return MarkerKey{}, fmt.Errorf("%w: %q", ErrMalformedMarker, s)
	}
	var dir Direction
	switch suffix {
	case Upvote.MarkerSuffix():
		dir = Upvote
	case Downvote.MarkerSuffix():
		dir = Downvote
	default:
		return MarkerKey{}, fmt.Errorf("%w: %q", ErrMalformedMarker, s)
	}

	id, idx, ok := cutLast(rest, "-")
	if !ok || id == "" {
		return MarkerKey{}, fmt.Errorf("%w: %q", ErrMalformedMarker, s)
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return MarkerKey{}, fmt.Errorf("%w: %q", ErrMalformedMarker, s)
	}
	return MarkerKey{PaperID: id, FileIndex: n, Direction: dir}, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// VoteRecord is a vote cast from this machine, as kept in the ledger.
type VoteRecord struct {
	Key MarkerKey
	// URL is the file the vote was cast on, if it was known at the time.
	URL string
}
