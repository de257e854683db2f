// Package votes is the local vote ledger: a durable key/flag store that
// remembers which (paper, file, direction) votes this client already cast.
//
// # Data Model
//
// One row per marker in vote_markers. The key is rendered by
// models.MarkerKey ("<paperId>-<fileIndex>-upvoted|downvoted"); the value is
// the file URL the vote was cast on, kept for diagnostics. Markers are
// written once and never removed by the client.
//
// The ledger is advisory. It is not authoritative and a user can bypass it
// by deleting the database.
//
// Key Types
//
//   - type Repository: contract used by the browse service
//   - type SQLiteRepository: SQLite implementation
//   - type MemoryRepository: in-process implementation for tests and
//     throwaway sessions
//   - type CachedRepository: LRU of marked keys in front of another
//     Repository
package votes
