// Package services contains the application services of the papers client.
//
// BrowseService is the browse-and-vote controller: it owns the subject list,
// the current filter and the displayed papers, and enforces one vote per
// direction per file through the local vote ledger. UploadService,
// SubjectService, FeedbackService and AdminService wrap the remaining
// user-initiated operations of the Papers API.
//
// Services never print. User-initiated operations return errors for the
// REPL to show; passive loads log and keep the previous state.
package services
