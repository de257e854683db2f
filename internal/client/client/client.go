package client

import (
	"context"

	"github.com/dmitrijs2005/iapapers/internal/client/models"
)

// Client is the contract of the remote Papers API.
type Client interface {
	Ping(ctx context.Context) error

	Subjects(ctx context.Context) ([]models.Subject, error)
	AddSubject(ctx context.Context, name string) error

	// Papers returns the papers matching filter. File URLs are already
	// resolved against the API base URL; unusable ones are empty.
	Papers(ctx context.Context, filter models.Filter) ([]models.Paper, error)
	Vote(ctx context.Context, paperID string, fileIndex int, direction models.Direction) error

	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)
	SendFeedback(ctx context.Context, fb models.Feedback) (string, error)

	// Admin calls carry the credentials set with SetAdminCredentials.
	SetAdminCredentials(username string, password []byte)
	ClearAdminCredentials()
	AdminPapers(ctx context.Context) ([]models.Paper, error)
	AdminDeletePaper(ctx context.Context, paperID string) error
}
