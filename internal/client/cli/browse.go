package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/client/services"
	"github.com/dmitrijs2005/iapapers/internal/common"
	"github.com/dmitrijs2005/iapapers/internal/netx"
)

// Subjects reloads and prints the subject list.
func (a *App) Subjects(ctx context.Context) error {
	if err := a.browse.LoadSubjects(ctx); err != nil {
		return err
	}
	a.printSubjects()
	return nil
}

func (a *App) printSubjects() {
	subjects := a.browse.Snapshot().Subjects
	if len(subjects) == 0 {
		fmt.Fprintln(a.out, "No subjects yet. Add one with: addsubject <name>")
		return
	}
	fmt.Fprintln(a.out, "Subjects:")
	for i, s := range subjects {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, s.Name)
	}
}

// AddSubject adds the subject named by args, or asks for a name.
func (a *App) AddSubject(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		name, err = getSimpleText(a.reader, "Enter new subject", a.out)
		if err != nil {
			return err
		}
	}

	added, err := a.subjects.AddSubject(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Subject %q added.\n", added)
	return nil
}

// Filter selects subject and semester and shows the matching papers.
// The last argument is the semester; the rest is the subject, either by
// name or by its number in the subject list. Without arguments both are
// asked for.
func (a *App) Filter(ctx context.Context, args []string) error {
	var subject, semester string
	switch len(args) {
	case 0:
		var err error
		if subject, err = getSimpleText(a.reader, "Enter subject (name or number)", a.out); err != nil {
			return err
		}
		if semester, err = getSimpleText(a.reader, "Enter semester (1-8)", a.out); err != nil {
			return err
		}
	case 1:
		return usageError("filter <subject> <semester>")
	default:
		subject = strings.Join(args[:len(args)-1], " ")
		semester = args[len(args)-1]
	}

	subject = a.resolveSubject(strings.TrimSpace(subject))
	if semester = strings.TrimSpace(semester); semester != "" {
		canon, err := common.ParseSemester(semester)
		if err != nil {
			return err
		}
		semester = canon
	}

	if err := a.browse.LoadPapers(ctx, subject, semester); err != nil {
		return err
	}
	return a.Papers(ctx)
}

// resolveSubject maps a subject number to its name. Other input is taken
// as the name itself.
func (a *App) resolveSubject(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	subjects := a.browse.Snapshot().Subjects
	if n < 1 || n > len(subjects) {
		return s
	}
	return subjects[n-1].Name
}

// Papers prints the current result set with vote counts and markers.
func (a *App) Papers(ctx context.Context) error {
	snap := a.browse.Snapshot()
	if !snap.Filter.Complete() {
		fmt.Fprintln(a.out, "Select a subject and semester first: filter <subject> <semester>")
		return nil
	}
	if len(snap.Papers) == 0 {
		fmt.Fprintf(a.out, "No papers found for %s, semester %s.\n", snap.Filter.Subject, snap.Filter.Semester)
		return nil
	}

	for i, p := range snap.Papers {
		fmt.Fprintf(a.out, "[%d] %s\n", i+1, p)
		if p.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", p.Description)
		}
		if len(p.Files) == 0 {
			fmt.Fprintln(a.out, "    (no files)")
		}
		for j, f := range p.Files {
			fmt.Fprintf(a.out, "    %d) %s  up %d%s  down %d%s\n", j+1, f.URL,
				f.UpvoteCount, a.votedMark(ctx, p.ID, f.Index, models.Upvote),
				f.DownvoteCount, a.votedMark(ctx, p.ID, f.Index, models.Downvote))
		}
	}
	return nil
}

func (a *App) votedMark(ctx context.Context, paperID string, fileIndex int, dir models.Direction) string {
	voted, err := a.browse.Voted(ctx, paperID, fileIndex, dir)
	if err != nil || !voted {
		return ""
	}
	return "*"
}

// pick resolves "<paper#> <file#>" against the current result set.
func (a *App) pick(args []string, usage string) (models.Paper, models.File, error) {
	if len(args) != 2 {
		return models.Paper{}, models.File{}, usageError(usage)
	}
	pn, err1 := strconv.Atoi(args[0])
	fn, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return models.Paper{}, models.File{}, usageError(usage)
	}

	papers := a.browse.Snapshot().Papers
	if pn < 1 || pn > len(papers) {
		return models.Paper{}, models.File{}, fmt.Errorf("paper #%d: %w", pn, services.ErrUnknownFile)
	}
	p := papers[pn-1]
	if fn < 1 || fn > len(p.Files) {
		return models.Paper{}, models.File{}, fmt.Errorf("paper #%d file #%d: %w", pn, fn, services.ErrUnknownFile)
	}
	return p, p.Files[fn-1], nil
}

// Vote casts an up or down vote on a file of the current result set and
// shows the refreshed list.
func (a *App) Vote(ctx context.Context, dir models.Direction, args []string) error {
	usage := "up|down <paper#> <file#>"
	p, f, err := a.pick(args, usage)
	if err != nil {
		return err
	}

	if err := a.browse.Vote(ctx, p.ID, f.Index, dir, a.confirm); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Vote recorded.")
	return a.Papers(ctx)
}

// Votes lists the votes this machine has cast.
func (a *App) Votes(ctx context.Context) error {
	records, err := a.browse.Votes(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No votes cast yet.")
		return nil
	}
	for _, r := range records {
		fmt.Fprintf(a.out, "  %s  paper %s  file index %d", r.Key.Direction, r.Key.PaperID, r.Key.FileIndex)
		if r.URL != "" {
			fmt.Fprintf(a.out, "  %s", r.URL)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// Open downloads a file of the current result set.
func (a *App) Open(ctx context.Context, args []string) error {
	_, f, err := a.pick(args, "open <paper#> <file#>")
	if err != nil {
		return err
	}

	path, err := netx.Download(ctx, a.http, f.URL, a.config.DownloadDir)
	if err != nil {
		a.log.Warn(ctx, "download failed", "url", f.URL, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Saved to %s\n", path)
	return nil
}

func (a *App) confirm(prompt string) bool {
	return confirmFn(a.reader, prompt, a.out)
}
