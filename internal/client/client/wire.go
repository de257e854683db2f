package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/common"
)

// flexInt accepts both 3 and "3". Semesters come back as strings for papers
// uploaded through multipart forms.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("not an integer: %q", s)
		}
		*n = flexInt(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return fmt.Errorf("not an integer: %s", b)
	}
	*n = flexInt(v)
	return nil
}

type subjectDTO struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	Name    string `json:"name"`
}

func (s subjectDTO) model() models.Subject {
	id := s.MongoID
	if id == "" {
		id = s.ID
	}
	return models.Subject{ID: id, Name: s.Name}
}

type fileDTO struct {
	ID            string   `json:"_id"`
	URL           string   `json:"url"`
	Upvotes       *flexInt `json:"upvotes"`
	Downvotes     *flexInt `json:"downvotes"`
	UpvoteCount   *flexInt `json:"upvoteCount"`
	DownvoteCount *flexInt `json:"downvoteCount"`
}

func firstCount(vals ...*flexInt) int {
	for _, v := range vals {
		if v != nil {
			if *v < 0 {
				return 0
			}
			return int(*v)
		}
	}
	return 0
}

type paperDTO struct {
	MongoID     string    `json:"_id"`
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Semester    flexInt   `json:"semester"`
	Description string    `json:"description"`
	Files       []fileDTO `json:"files"`
}

func (p paperDTO) model(base *url.URL) (models.Paper, error) {
	id := p.MongoID
	if id == "" {
		id = p.ID
	}
	sem := int(p.Semester)
	if sem < common.MinSemester || sem > common.MaxSemester {
		return models.Paper{}, fmt.Errorf("paper %q: semester %d out of range", id, sem)
	}
	out := models.Paper{
		ID:          id,
		Subject:     p.Subject,
		Semester:    sem,
		Description: p.Description,
		Files:       make([]models.File, 0, len(p.Files)),
	}
	for i, f := range p.Files {
		out.Files = append(out.Files, models.File{
			ID:            f.ID,
			Index:         i,
			URL:           resolveFileURL(base, f.URL),
			UpvoteCount:   firstCount(f.Upvotes, f.UpvoteCount),
			DownvoteCount: firstCount(f.Downvotes, f.DownvoteCount),
		})
	}
	return out, nil
}

// decodePaperList decodes a paper list record by record. A record that does
// not decode, or has a semester outside the accepted range, is reported to
// skip and left out; only a body that is not a JSON array fails.
func decodePaperList(base *url.URL, b []byte, skip func(i int, err error)) ([]models.Paper, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []models.Paper{}, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode papers: %w", err)
	}

	out := make([]models.Paper, 0, len(raw))
	for i, r := range raw {
		var dto paperDTO
		if err := json.Unmarshal(r, &dto); err != nil {
			skip(i, err)
			continue
		}
		p, err := dto.model(base)
		if err != nil {
			skip(i, err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// resolveFileURL turns a file reference into an absolute URL. Relative
// references are resolved against the API base; blank or unparsable ones
// become "".
func resolveFileURL(base *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// decodeSubjects accepts both the bare array and the {"subjects": [...]}
// envelope; the API has served both.
func decodeSubjects(b []byte) ([]models.Subject, error) {
	b = bytes.TrimSpace(b)

	var list []subjectDTO
	switch {
	case len(b) == 0:
		return []models.Subject{}, nil
	case b[0] == '[':
		if err := json.Unmarshal(b, &list); err != nil {
			return nil, fmt.Errorf("decode subjects: %w", err)
		}
	default:
		var env struct {
			Subjects []subjectDTO `json:"subjects"`
		}
		if err := json.Unmarshal(b, &env); err != nil {
			return nil, fmt.Errorf("decode subjects: %w", err)
		}
		list = env.Subjects
	}

	out := make([]models.Subject, 0, len(list))
	for _, s := range list {
		out = append(out, s.model())
	}
	return out, nil
}

type addSubjectRequest struct {
	Name string `json:"name"`
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type messageResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (m messageResponse) text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
