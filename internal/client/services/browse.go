package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/client/repositories/votes"
	"github.com/dmitrijs2005/iapapers/internal/logging"
)

// DownvotePrompt is shown before a downvote is sent.
const DownvotePrompt = "Are you sure you want to downvote this file?"

// BrowseState is an immutable snapshot of the browse view. Callers own the
// slices they receive.
type BrowseState struct {
	Subjects []models.Subject
	Filter   models.Filter
	Papers   []models.Paper
	// Generation increases with every LoadPapers call.
	Generation uint64
}

// BrowseService loads subjects and papers and submits votes.
//
// All methods are safe for concurrent use. Only the latest LoadPapers call
// may replace the result set: starting a new one cancels the request of
// the previous one, and a response that arrives for an outdated generation
// is dropped.
type BrowseService interface {
	LoadSubjects(ctx context.Context) error
	LoadPapers(ctx context.Context, subject, semester string) error
	Refresh(ctx context.Context) error

	Vote(ctx context.Context, paperID string, fileIndex int, dir models.Direction, confirm ConfirmFunc) error
	Voted(ctx context.Context, paperID string, fileIndex int, dir models.Direction) (bool, error)
	Votes(ctx context.Context) ([]models.VoteRecord, error)

	Snapshot() BrowseState
}

type browseService struct {
	client client.Client
	ledger votes.Repository
	log    logging.Logger

	mu       sync.Mutex
	subjects []models.Subject
	filter   models.Filter
	papers   []models.Paper
	gen      uint64
	cancel   context.CancelFunc
	pending  map[string]struct{}
}

func NewBrowseService(c client.Client, ledger votes.Repository, log logging.Logger) BrowseService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &browseService{
		client:  c,
		ledger:  ledger,
		log:     log.With("component", "browse"),
		pending: make(map[string]struct{}),
	}
}

// LoadSubjects replaces the subject list. On failure the previous list is
// kept and the error is logged and returned.
func (s *browseService) LoadSubjects(ctx context.Context) error {
	subjects, err := s.client.Subjects(ctx)
	if err != nil {
		s.log.Warn(ctx, "subjects load failed", "error", err)
		return fmt.Errorf("load subjects: %w", err)
	}

	s.mu.Lock()
	s.subjects = subjects
	s.mu.Unlock()

	s.log.Debug(ctx, "subjects loaded", "count", len(subjects))
	return nil
}

// LoadPapers selects the filter and fetches its papers. An incomplete
// filter clears the result set without a request.
func (s *browseService) LoadPapers(ctx context.Context, subject, semester string) error {
	filter := models.Filter{Subject: subject, Semester: semester}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.filter = filter
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if !filter.Complete() {
		s.papers = nil
		s.mu.Unlock()
		return nil
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer cancel()

	papers, err := s.client.Papers(reqCtx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.Debug(ctx, "stale papers response dropped", "generation", gen, "current", s.gen)
		return nil
	}
	s.cancel = nil

	if err != nil {
		s.log.Warn(ctx, "papers load failed", "subject", subject, "semester", semester, "error", err)
		return fmt.Errorf("load papers: %w", err)
	}

	s.papers = sanitizePapers(papers)
	s.log.Debug(ctx, "papers loaded", "subject", subject, "semester", semester, "count", len(s.papers))
	return nil
}

// Refresh re-runs LoadPapers with the current filter.
func (s *browseService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	f := s.filter
	s.mu.Unlock()
	return s.LoadPapers(ctx, f.Subject, f.Semester)
}

// sanitizePapers drops papers without an id and files without a fully
// qualified URL.
func sanitizePapers(in []models.Paper) []models.Paper {
	out := make([]models.Paper, 0, len(in))
	for _, p := range in {
		if p.ID == "" {
			continue
		}
		files := make([]models.File, 0, len(p.Files))
		for _, f := range p.Files {
			if f.HasQualifiedURL() {
				files = append(files, f)
			}
		}
		p.Files = files
		out = append(out, p)
	}
	return out
}

func (s *browseService) Voted(ctx context.Context, paperID string, fileIndex int, dir models.Direction) (bool, error) {
	key := models.MarkerKey{PaperID: paperID, FileIndex: fileIndex, Direction: dir}
	ok, err := s.ledger.IsMarked(ctx, key.String())
	if err != nil {
		return false, fmt.Errorf("check vote marker: %w", err)
	}
	return ok, nil
}

// Votes lists the ledger, ordered by paper, file and direction. Keys that
// do not parse are logged and left out.
func (s *browseService) Votes(ctx context.Context) ([]models.VoteRecord, error) {
	all, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vote markers: %w", err)
	}

	out := make([]models.VoteRecord, 0, len(all))
	for k, v := range all {
		key, err := models.ParseMarkerKey(k)
		if err != nil {
			s.log.Warn(ctx, "unreadable vote marker", "key", k, "error", err)
			continue
		}
		out = append(out, models.VoteRecord{Key: key, URL: string(v)})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		if a.PaperID != b.PaperID {
			return a.PaperID < b.PaperID
		}
		if a.FileIndex != b.FileIndex {
			return a.FileIndex < b.FileIndex
		}
		return a.Direction > b.Direction
	})
	return out, nil
}

// Vote casts a vote on the file at backend position fileIndex of paperID. A set marker
// refuses the vote without a request; a downvote needs confirm to agree.
// The marker is written only after the backend accepted the vote, then the
// result set is refreshed so the counts come from the backend.
func (s *browseService) Vote(ctx context.Context, paperID string, fileIndex int, dir models.Direction, confirm ConfirmFunc) error {
	key := models.MarkerKey{PaperID: paperID, FileIndex: fileIndex, Direction: dir}.String()
	log := s.log.With("paper_id", paperID, "file_index", fileIndex, "direction", string(dir))

	// The key is claimed before the ledger is read, so a vote that completes
	// between the check and the request cannot be sent twice.
	if !s.begin(key) {
		return ErrVoteInProgress
	}
	defer s.end(key)

	marked, err := s.ledger.IsMarked(ctx, key)
	if err != nil {
		return fmt.Errorf("check vote marker: %w", err)
	}
	if marked {
		return ErrAlreadyVoted
	}

	if dir == models.Downvote && (confirm == nil || !confirm(DownvotePrompt)) {
		return ErrVoteCancelled
	}

	if err := s.client.Vote(ctx, paperID, fileIndex, dir); err != nil {
		log.Warn(ctx, "vote failed", "error", err)
		return fmt.Errorf("vote: %w", err)
	}

	if err := s.ledger.Mark(ctx, key, []byte(s.fileURL(paperID, fileIndex))); err != nil && !errors.Is(err, votes.ErrAlreadyMarked) {
		log.Error(ctx, "vote accepted but marker not saved", "error", err)
		return fmt.Errorf("save vote marker: %w", err)
	}
	log.Info(ctx, "vote accepted")

	if err := s.Refresh(ctx); err != nil {
		log.Warn(ctx, "refresh after vote failed", "error", err)
	}
	return nil
}

func (s *browseService) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[key]; ok {
		return false
	}
	s.pending[key] = struct{}{}
	return true
}

func (s *browseService) end(key string) {
	s.mu.Lock()
	delete(s.pending, key)
	s.mu.Unlock()
}

func (s *browseService) fileURL(paperID string, fileIndex int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.papers {
		if p.ID != paperID {
			continue
		}
		for _, f := range p.Files {
			if f.Index == fileIndex {
				return f.URL
			}
		}
	}
	return ""
}

func (s *browseService) Snapshot() BrowseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BrowseState{
		Subjects:   append([]models.Subject(nil), s.subjects...),
		Filter:     s.filter,
		Papers:     models.ClonePapers(s.papers),
		Generation: s.gen,
	}
}
