package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
)

// fakeClient implements client.Client for service tests. Calls are counted
// per method; papersFn and voteFn override the canned answers when set.
type fakeClient struct {
	mu sync.Mutex

	calls map[string]int

	subjects    []models.Subject
	subjectsErr error
	addErr      error
	lastAdded   string

	papers    []models.Paper
	papersErr error
	papersFn  func(ctx context.Context, f models.Filter) ([]models.Paper, error)
	filters   []models.Filter

	voteErr   error
	voteFn    func(paperID string, fileIndex int, dir models.Direction) error
	lastVotes []string

	uploadRes  models.UploadResult
	uploadErr  error
	lastUpload models.UploadRequest

	feedbackReply string
	feedbackErr   error
	lastFeedback  models.Feedback

	adminUser    string
	adminPass    []byte
	adminPapers  []models.Paper
	adminErr     error
	deleteErr    error
	lastDeleteID string
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: make(map[string]int)}
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.hit("Ping")
	return nil
}

func (f *fakeClient) Subjects(ctx context.Context) ([]models.Subject, error) {
	f.hit("Subjects")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Subject(nil), f.subjects...), f.subjectsErr
}

func (f *fakeClient) AddSubject(ctx context.Context, name string) error {
	f.hit("AddSubject")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastAdded = name
	if f.addErr == nil {
		f.subjects = append(f.subjects, models.Subject{ID: "new", Name: name})
	}
	return f.addErr
}

func (f *fakeClient) Papers(ctx context.Context, filter models.Filter) ([]models.Paper, error) {
	f.hit("Papers")
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	fn := f.papersFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, filter)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.ClonePapers(f.papers), f.papersErr
}

func (f *fakeClient) setPapers(p []models.Paper) {
	f.mu.Lock()
	f.papers = p
	f.mu.Unlock()
}

func (f *fakeClient) Vote(ctx context.Context, paperID string, fileIndex int, dir models.Direction) error {
	f.hit("Vote")
	f.mu.Lock()
	f.lastVotes = append(f.lastVotes, models.MarkerKey{PaperID: paperID, FileIndex: fileIndex, Direction: dir}.String())
	fn := f.voteFn
	err := f.voteErr
	f.mu.Unlock()
	if fn != nil {
		return fn(paperID, fileIndex, dir)
	}
	return err
}

func (f *fakeClient) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	f.hit("Upload")
	f.lastUpload = req
	return f.uploadRes, f.uploadErr
}

func (f *fakeClient) SendFeedback(ctx context.Context, fb models.Feedback) (string, error) {
	f.hit("SendFeedback")
	f.lastFeedback = fb
	return f.feedbackReply, f.feedbackErr
}

func (f *fakeClient) SetAdminCredentials(username string, password []byte) {
	f.hit("SetAdminCredentials")
	f.adminUser = username
	f.adminPass = append([]byte(nil), password...)
}

func (f *fakeClient) ClearAdminCredentials() {
	f.hit("ClearAdminCredentials")
	f.adminUser = ""
	f.adminPass = nil
}

func (f *fakeClient) AdminPapers(ctx context.Context) ([]models.Paper, error) {
	f.hit("AdminPapers")
	if f.adminErr != nil {
		return nil, f.adminErr
	}
	if f.adminUser == "" {
		return nil, client.ErrUnauthorized
	}
	return models.ClonePapers(f.adminPapers), nil
}

func (f *fakeClient) AdminDeletePaper(ctx context.Context, paperID string) error {
	f.hit("AdminDeletePaper")
	f.lastDeleteID = paperID
	return f.deleteErr
}

var _ client.Client = (*fakeClient)(nil)

func yes(string) bool { return true }
func no(string) bool  { return false }
