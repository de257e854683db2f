// Package common holds small constants and helpers shared across the
// papers client packages.
package common

// Header names understood by the Papers API.
const (
	// AdminUsernameHeader and AdminPasswordHeader carry admin credentials
	// on /admin requests.
	AdminUsernameHeader = "username"
	AdminPasswordHeader = "password"

	// RequestIDHeader tags every outbound request for log correlation.
	RequestIDHeader = "X-Request-ID"
)

// Semester bounds accepted by the service.
const (
	MinSemester = 1
	MaxSemester = 8
)
