package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/logging"
)

// DeletePrompt is shown before a paper is deleted.
const DeletePrompt = "Delete this paper and ALL its files?"

// AdminService manages submissions on behalf of an authenticated admin.
// Credentials live only in memory, inside the API client.
type AdminService interface {
	Login(ctx context.Context, username string, password []byte) ([]models.Paper, error)
	List(ctx context.Context) ([]models.Paper, error)
	Delete(ctx context.Context, paperID string, confirm ConfirmFunc) error
	Logout()

	LoggedIn() bool
	Papers() []models.Paper
}

type adminService struct {
	client client.Client
	log    logging.Logger

	mu       sync.Mutex
	loggedIn bool
	papers   []models.Paper
}

func NewAdminService(c client.Client, log logging.Logger) AdminService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &adminService{client: c, log: log.With("component", "admin")}
}

// Login checks the credentials by fetching the admin paper list. Failed
// logins leave no credentials behind.
func (s *adminService) Login(ctx context.Context, username string, password []byte) ([]models.Paper, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is empty", client.ErrUnauthorized)
	}

	s.client.SetAdminCredentials(username, password)
	papers, err := s.client.AdminPapers(ctx)
	if err != nil {
		s.Logout()
		s.log.Warn(ctx, "admin login failed", "username", username, "error", err)
		return nil, fmt.Errorf("admin login: %w", err)
	}

	s.mu.Lock()
	s.loggedIn = true
	s.papers = papers
	s.mu.Unlock()

	s.log.Info(ctx, "admin logged in", "username", username, "papers", len(papers))
	return models.ClonePapers(papers), nil
}

func (s *adminService) List(ctx context.Context) ([]models.Paper, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	papers, err := s.client.AdminPapers(ctx)
	if err != nil {
		s.log.Warn(ctx, "admin list failed", "error", err)
		if errors.Is(err, client.ErrUnauthorized) {
			s.Logout()
		}
		return nil, fmt.Errorf("admin list: %w", err)
	}

	s.mu.Lock()
	s.papers = papers
	s.mu.Unlock()
	return models.ClonePapers(papers), nil
}

// Delete removes a paper after confirm agrees and drops it from the local
// list.
func (s *adminService) Delete(ctx context.Context, paperID string, confirm ConfirmFunc) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	if confirm == nil || !confirm(DeletePrompt) {
		return ErrDeleteCanceled
	}

	if err := s.client.AdminDeletePaper(ctx, paperID); err != nil {
		s.log.Warn(ctx, "admin delete failed", "paper_id", paperID, "error", err)
		return fmt.Errorf("delete paper %s: %w", paperID, err)
	}

	s.mu.Lock()
	kept := s.papers[:0:0]
	for _, p := range s.papers {
		if p.ID != paperID {
			kept = append(kept, p)
		}
	}
	s.papers = kept
	s.mu.Unlock()

	s.log.Info(ctx, "paper deleted", "paper_id", paperID)
	return nil
}

// Logout forgets the credentials and the paper list.
func (s *adminService) Logout() {
	s.client.ClearAdminCredentials()
	s.mu.Lock()
	s.loggedIn = false
	s.papers = nil
	s.mu.Unlock()
}

func (s *adminService) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Papers returns a copy of the last fetched admin list.
func (s *adminService) Papers() []models.Paper {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.ClonePapers(s.papers)
}
