package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/logging"
)

type SubjectService interface {
	// AddSubject creates a subject and reloads the browse subject list.
	// It returns the trimmed name that was stored.
	AddSubject(ctx context.Context, name string) (string, error)
}

type subjectService struct {
	client client.Client
	browse BrowseService
	log    logging.Logger
}

func NewSubjectService(c client.Client, browse BrowseService, log logging.Logger) SubjectService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &subjectService{client: c, browse: browse, log: log.With("component", "subjects")}
}

func (s *subjectService) AddSubject(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptySubject
	}

	if err := s.client.AddSubject(ctx, name); err != nil {
		s.log.Warn(ctx, "add subject failed", "name", name, "error", err)
		return "", fmt.Errorf("add subject: %w", err)
	}
	s.log.Info(ctx, "subject added", "name", name)

	// LoadSubjects logs its own failure; the subject exists either way.
	_ = s.browse.LoadSubjects(ctx)
	return name, nil
}
