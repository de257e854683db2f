// Package cli provides the interactive command-line client for the question
// paper sharing service.
//
// It wires configuration, the local vote ledger, the Papers API client and
// the application services into a REPL. A background watcher pings the API
// and shows online/offline in the prompt.
//
// Key features:
//   - Browse subjects and papers by subject and semester
//   - Up/down vote files, once per direction per file
//   - Download files of the current result set
//   - Upload papers, add subjects, send feedback
//   - Admin login, list and delete
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
