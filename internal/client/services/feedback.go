package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/logging"
)

// DefaultFeedbackReply is shown when the backend acknowledges feedback
// without a message.
const DefaultFeedbackReply = "Feedback sent"

type FeedbackService interface {
	Send(ctx context.Context, fb models.Feedback) (string, error)
}

type feedbackService struct {
	client client.Client
	log    logging.Logger
}

func NewFeedbackService(c client.Client, log logging.Logger) FeedbackService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &feedbackService{client: c, log: log.With("component", "feedback")}
}

// Send submits fb and returns the backend's reply for display.
func (s *feedbackService) Send(ctx context.Context, fb models.Feedback) (string, error) {
	fb.Name = strings.TrimSpace(fb.Name)
	fb.Email = strings.TrimSpace(fb.Email)
	fb.Message = strings.TrimSpace(fb.Message)
	if fb.Message == "" {
		return "", ErrEmptyFeedback
	}

	reply, err := s.client.SendFeedback(ctx, fb)
	if err != nil {
		s.log.Warn(ctx, "feedback failed", "error", err)
		return "", fmt.Errorf("send feedback: %w", err)
	}
	if reply == "" {
		reply = DefaultFeedbackReply
	}
	return reply, nil
}
