package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("data"), 0o600))
	return p
}

func TestUpload_Validation(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "paper.pdf")
	txt := writeFile(t, dir, "notes.txt")

	tests := []struct {
		name string
		req  models.UploadRequest
	}{
		{"no subject", models.UploadRequest{Subject: "  ", Semester: "3", Files: []string{pdf}}},
		{"no semester", models.UploadRequest{Subject: "Maths", Files: []string{pdf}}},
		{"semester too high", models.UploadRequest{Subject: "Maths", Semester: "9", Files: []string{pdf}}},
		{"semester zero", models.UploadRequest{Subject: "Maths", Semester: "0", Files: []string{pdf}}},
		{"no files", models.UploadRequest{Subject: "Maths", Semester: "3"}},
		{"missing file", models.UploadRequest{Subject: "Maths", Semester: "3", Files: []string{filepath.Join(dir, "gone.pdf")}}},
		{"directory", models.UploadRequest{Subject: "Maths", Semester: "3", Files: []string{dir}}},
		{"wrong type", models.UploadRequest{Subject: "Maths", Semester: "3", Files: []string{pdf, txt}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFakeClient()
			svc := NewUploadService(fc, nil)

			_, err := svc.Upload(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidUpload)
			assert.Equal(t, 0, fc.count("Upload"))
		})
	}
}

func TestUpload_NormalizesAndSends(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "paper.PDF")
	jpg := writeFile(t, dir, "scan.jpg")

	fc := newFakeClient()
	fc.uploadRes = models.UploadResult{Success: true, Message: "ok"}
	svc := NewUploadService(fc, nil)

	res, err := svc.Upload(context.Background(), models.UploadRequest{
		Subject:     " Maths ",
		Semester:    "03",
		Description: "  mid term ",
		Files:       []string{pdf, jpg},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.Equal(t, models.UploadRequest{
		Subject:     "Maths",
		Semester:    "3",
		Description: "mid term",
		Files:       []string{pdf, jpg},
	}, fc.lastUpload)
}

func TestUpload_Rejected(t *testing.T) {
	dir := t.TempDir()
	fc := newFakeClient()
	fc.uploadRes = models.UploadResult{Success: false, Message: "too large"}
	svc := NewUploadService(fc, nil)

	res, err := svc.Upload(context.Background(), models.UploadRequest{
		Subject: "Maths", Semester: "1", Files: []string{writeFile(t, dir, "a.png")},
	})
	require.ErrorIs(t, err, ErrUploadRejected)
	assert.Contains(t, err.Error(), "too large")
	assert.Equal(t, "too large", res.Message)
}

func TestUpload_TransportError(t *testing.T) {
	dir := t.TempDir()
	fc := newFakeClient()
	fc.uploadErr = client.ErrUnavailable
	svc := NewUploadService(fc, nil)

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		Subject: "Maths", Semester: "1", Files: []string{writeFile(t, dir, "a.pdf")},
	})
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestIsAcceptedUpload(t *testing.T) {
	for name, want := range map[string]bool{
		"a.pdf":  true,
		"a.PNG":  true,
		"a.jpeg": true,
		"a.gif":  true,
		"a.webp": true,
		"a.txt":  false,
		"a.docx": false,
		"noext":  false,
	} {
		assert.Equal(t, want, IsAcceptedUpload(name), name)
	}
}
