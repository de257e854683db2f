package services

import "errors"

var (
	ErrAlreadyVoted   = errors.New("already voted")
	ErrVoteInProgress = errors.New("vote already in progress")
	ErrVoteCancelled  = errors.New("vote cancelled")
	ErrUnknownFile    = errors.New("no such file in the current result set")

	ErrInvalidUpload  = errors.New("invalid upload")
	ErrUploadRejected = errors.New("upload rejected")

	ErrEmptySubject   = errors.New("subject name is empty")
	ErrEmptyFeedback  = errors.New("feedback message is empty")
	ErrNotLoggedIn    = errors.New("admin is not logged in")
	ErrDeleteCanceled = errors.New("delete cancelled")
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool
