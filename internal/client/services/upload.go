package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/common"
	"github.com/dmitrijs2005/iapapers/internal/logging"
)

type UploadService interface {
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)
}

type uploadService struct {
	client client.Client
	log    logging.Logger
}

func NewUploadService(c client.Client, log logging.Logger) UploadService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &uploadService{client: c, log: log.With("component", "upload")}
}

// Upload validates req and submits it. A backend answer with success=false
// is returned together with an ErrUploadRejected error.
func (s *uploadService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	req, err := normalizeUpload(req)
	if err != nil {
		return models.UploadResult{}, err
	}

	res, err := s.client.Upload(ctx, req)
	if err != nil {
		s.log.Warn(ctx, "upload failed", "subject", req.Subject, "semester", req.Semester, "error", err)
		return models.UploadResult{}, fmt.Errorf("upload: %w", err)
	}
	if !res.Success {
		s.log.Warn(ctx, "upload rejected", "message", res.Message)
		return res, fmt.Errorf("%w: %s", ErrUploadRejected, res.Message)
	}

	s.log.Info(ctx, "paper uploaded", "subject", req.Subject, "semester", req.Semester, "files", len(req.Files))
	return res, nil
}

func normalizeUpload(req models.UploadRequest) (models.UploadRequest, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Subject == "" {
		return req, fmt.Errorf("%w: subject is required", ErrInvalidUpload)
	}

	sem, err := common.ParseSemester(req.Semester)
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	req.Semester = sem
	req.Description = strings.TrimSpace(req.Description)

	if len(req.Files) == 0 {
		return req, fmt.Errorf("%w: at least one file is required", ErrInvalidUpload)
	}
	for _, f := range req.Files {
		if err := checkUploadFile(f); err != nil {
			return req, err
		}
	}
	return req, nil
}

func checkUploadFile(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	if !st.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInvalidUpload, path)
	}
	if !IsAcceptedUpload(path) {
		return fmt.Errorf("%w: %s is neither an image nor a PDF", ErrInvalidUpload, filepath.Base(path))
	}
	return nil
}

// IsAcceptedUpload reports whether the file extension names an image or a
// PDF document.
func IsAcceptedUpload(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	ctype, _, _ := mime.ParseMediaType(mime.TypeByExtension(ext))
	return ctype == "application/pdf" || strings.HasPrefix(ctype, "image/")
}
