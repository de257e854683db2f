package models

// UploadRequest is a new paper submission with local file paths.
type UploadRequest struct {
	Subject     string
	Semester    string
	Description string
	Files       []string
}

// UploadResult is the backend acknowledgement of an upload.
type UploadResult struct {
	Success bool
	Message string
}

// Feedback is a free-form message to the service maintainers. Name and
// Email are optional.
type Feedback struct {
	Name    string
	Email   string
	Message string
}
