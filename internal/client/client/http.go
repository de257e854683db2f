package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/common"
	"github.com/dmitrijs2005/iapapers/internal/logging"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger

	mu            sync.RWMutex
	adminUsername string
	adminPassword []byte
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.http.Timeout = d
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !models.IsQualifiedURL(u.String()) {
		return nil, fmt.Errorf("base url must be an absolute http(s) url: %q", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		log:     logging.NewNopLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// BaseURL returns the normalized API root.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

// HTTP exposes the underlying client, e.g. for downloads.
func (c *HTTPClient) HTTP() *http.Client {
	return c.http
}

func (c *HTTPClient) SetAdminCredentials(username string, password []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	common.WipeByteArray(c.adminPassword)
	c.adminUsername = username
	c.adminPassword = append([]byte(nil), password...)
}

func (c *HTTPClient) ClearAdminCredentials() {
	c.mu.Lock()
	defer c.mu.Unlock()
	common.WipeByteArray(c.adminPassword)
	c.adminUsername = ""
	c.adminPassword = nil
}

// endpoint resolves the escaped path p against the base URL.
func (c *HTTPClient) endpoint(p string, query url.Values) string {
	escaped := strings.TrimPrefix(p, "/")
	plain, err := url.PathUnescape(escaped)
	if err != nil {
		plain = escaped
	}
	ref := &url.URL{Path: plain, RawPath: escaped}
	u := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *HTTPClient) newRequest(ctx context.Context, method, p string, query url.Values, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(p, query), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	if strings.HasPrefix(p, "/admin") {
		c.mu.RLock()
		if c.adminUsername != "" {
			req.Header.Set(common.AdminUsernameHeader, c.adminUsername)
			req.Header.Set(common.AdminPasswordHeader, string(c.adminPassword))
		}
		c.mu.RUnlock()
	}
	return req, nil
}

func (c *HTTPClient) newJSONRequest(ctx context.Context, method, p string, payload any) (*http.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, method, p, nil, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do sends req and returns the body of a 2xx answer. Anything else goes
// through mapError.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	reqID := req.Header.Get(common.RequestIDHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(req.Context(), "request failed",
			"method", req.Method, "path", req.URL.Path, "request_id", reqID, "error", err)
		return nil, c.mapError(req.Context(), err)
	}
	defer resp.Body.Close()

	c.log.Debug(req.Context(), "request done",
		"method", req.Method, "path", req.URL.Path, "request_id", reqID,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, statusError(resp.StatusCode, b)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.mapError(req.Context(), err)
	}
	return b, nil
}

func (c *HTTPClient) mapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return context.Canceled
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func statusError(status int, body []byte) error {
	var m messageResponse
	msg := ""
	if json.Unmarshal(body, &m) == nil {
		msg = m.text()
	} else {
		msg = strings.TrimSpace(string(body))
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return wrapStatus(ErrUnauthorized, msg)
	case status == http.StatusNotFound:
		return wrapStatus(ErrNotFound, msg)
	case status >= http.StatusBadGateway && status <= http.StatusGatewayTimeout:
		return wrapStatus(ErrUnavailable, msg)
	default:
		return &StatusError{Status: status, Message: msg}
	}
}

func wrapStatus(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// Ping reports whether the API root answers at all. Any HTTP response,
// whatever its status, counts as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(ctx, err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	return resp.Body.Close()
}

func (c *HTTPClient) Subjects(ctx context.Context) ([]models.Subject, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/subjects", nil, nil)
	if err != nil {
		return nil, err
	}
	b, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeSubjects(b)
}

func (c *HTTPClient) AddSubject(ctx context.Context, name string) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/subjects", addSubjectRequest{Name: name})
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) Papers(ctx context.Context, filter models.Filter) ([]models.Paper, error) {
	q := url.Values{}
	q.Set("subject", strings.ToLower(filter.Subject))
	q.Set("semester", filter.Semester)

	req, err := c.newRequest(ctx, http.MethodGet, "/papers", q, nil)
	if err != nil {
		return nil, err
	}
	b, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return c.decodePapers(ctx, b)
}

func (c *HTTPClient) decodePapers(ctx context.Context, b []byte) ([]models.Paper, error) {
	return decodePaperList(c.baseURL, b, func(i int, err error) {
		c.log.Warn(ctx, "malformed paper skipped", "position", i, "error", err)
	})
}

// paperSegment escapes a paper id into one path segment. Ids that would
// be read as dot segments are refused.
func paperSegment(id string) (string, error) {
	switch strings.TrimSpace(id) {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidPaperID, id)
	}
	return url.PathEscape(id), nil
}

func (c *HTTPClient) Vote(ctx context.Context, paperID string, fileIndex int, direction models.Direction) error {
	seg, err := paperSegment(paperID)
	if err != nil {
		return err
	}
	p := "/papers/" + seg + "/files/" + strconv.Itoa(fileIndex) + "/" + string(direction)
	req, err := c.newRequest(ctx, http.MethodPut, p, nil, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *HTTPClient) Upload(ctx context.Context, r models.UploadRequest) (models.UploadResult, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := [][2]string{
		{"subject", r.Subject},
		{"semester", r.Semester},
		{"description", strings.TrimSpace(r.Description)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return models.UploadResult{}, fmt.Errorf("write field %s: %w", f[0], err)
		}
	}
	for _, fp := range r.Files {
		if err := writeFilePart(w, fp); err != nil {
			return models.UploadResult{}, err
		}
	}
	if err := w.Close(); err != nil {
		return models.UploadResult{}, fmt.Errorf("close multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", nil, body)
	if err != nil {
		return models.UploadResult{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	b, err := c.do(req)
	if err != nil {
		return models.UploadResult{}, err
	}

	var m messageResponse
	if len(bytes.TrimSpace(b)) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			return models.UploadResult{}, fmt.Errorf("decode upload response: %w", err)
		}
	}
	res := models.UploadResult{Success: m.Success == nil || *m.Success, Message: m.text()}
	return res, nil
}

func writeFilePart(w *multipart.Writer, fp string) error {
	f, err := os.Open(fp)
	if err != nil {
		return fmt.Errorf("open %s: %w", fp, err)
	}
	defer f.Close()

	name := filepath.Base(fp)
	ctype := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ctype == "" {
		ctype = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, name))
	h.Set("Content-Type", ctype)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", name, err)
	}
	return nil
}

func (c *HTTPClient) SendFeedback(ctx context.Context, fb models.Feedback) (string, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/feedback", feedbackRequest{
		Name:    fb.Name,
		Email:   fb.Email,
		Message: fb.Message,
	})
	if err != nil {
		return "", err
	}
	b, err := c.do(req)
	if err != nil {
		return "", err
	}

	var m messageResponse
	if len(bytes.TrimSpace(b)) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			return "", fmt.Errorf("decode feedback response: %w", err)
		}
	}
	return m.text(), nil
}

func (c *HTTPClient) AdminPapers(ctx context.Context) ([]models.Paper, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/admin/papers", nil, nil)
	if err != nil {
		return nil, err
	}
	b, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return c.decodePapers(ctx, b)
}

func (c *HTTPClient) AdminDeletePaper(ctx context.Context, paperID string) error {
	seg, err := paperSegment(paperID)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodDelete, "/admin/papers/"+seg, nil, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

var _ Client = (*HTTPClient)(nil)
