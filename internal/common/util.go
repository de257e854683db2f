package common

import (
	"fmt"
	"strconv"
	"strings"
)

// WipeByteArray zeroes b in place. Used for passwords read from the
// terminal once they are no longer needed. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ParseSemester validates a semester typed by the user and returns it in
// canonical form ("3", not " 03").
func ParseSemester(s string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("semester %q is not a number", s)
	}
	if n < MinSemester || n > MaxSemester {
		return "", fmt.Errorf("semester must be between %d and %d", MinSemester, MaxSemester)
	}
	return strconv.Itoa(n), nil
}
