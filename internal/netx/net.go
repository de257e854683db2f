// Package netx downloads file references served by the Papers API or by
// whatever host the file URL points at.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/dmitrijs2005/iapapers/internal/filex"
	"github.com/google/uuid"
)

// FileName derives a local file name from a file URL: the last path
// segment, or "file" when the URL has none.
func FileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "file"
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

// Download streams rawURL into dir and returns the written path. The body
// goes to a temporary file first so a failed transfer never leaves a
// truncated document under the final name.
func Download(ctx context.Context, client *http.Client, rawURL, dir string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	dir, err = filex.EnsureDir(dir)
	if err != nil {
		return "", err
	}

	tmp := filepath.Join(dir, "."+uuid.NewString()+".part")
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}

	dst, err := filex.FreePath(dir, FileName(rawURL))
	if err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return dst, nil
}
