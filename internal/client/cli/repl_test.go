package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(call string, args []string) error {
	if len(args) > 0 {
		call += " " + strings.Join(args, " ")
	}
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) Subjects(context.Context) error { return f.record("subjects", nil) }
func (f *fakeExec) AddSubject(_ context.Context, args []string) error {
	return f.record("addsubject", args)
}
func (f *fakeExec) Filter(_ context.Context, args []string) error { return f.record("filter", args) }
func (f *fakeExec) Papers(context.Context) error                  { return f.record("papers", nil) }
func (f *fakeExec) Vote(_ context.Context, dir models.Direction, args []string) error {
	return f.record(string(dir), args)
}
func (f *fakeExec) Open(_ context.Context, args []string) error  { return f.record("open", args) }
func (f *fakeExec) Votes(context.Context) error                  { return f.record("votes", nil) }
func (f *fakeExec) Upload(context.Context) error                 { return f.record("upload", nil) }
func (f *fakeExec) Feedback(context.Context) error               { return f.record("feedback", nil) }
func (f *fakeExec) Admin(_ context.Context, args []string) error { return f.record("admin", args) }

func TestRunREPL_Dispatch(t *testing.T) {
	var out bytes.Buffer

	input := strings.Join([]string{
		"help",
		"subjects",
		"addsubject Data Structures",
		"filter Maths 3",
		"",
		"papers",
		"up 1 2",
		"down 1 1",
		"open 2 1",
		"votes",
		"upload",
		"feedback",
		"admin login",
		"foobar",
		"exit",
		"subjects",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(online)" }, rdr(input), &out)

	assert.Equal(t, []string{
		"subjects",
		"addsubject Data Structures",
		"filter Maths 3",
		"papers",
		"upvote 1 2",
		"downvote 1 1",
		"open 2 1",
		"votes",
		"upload",
		"feedback",
		"admin login",
	}, exec.calls)

	assert.Contains(t, out.String(), "papers (online)> ")
	assert.Contains(t, out.String(), helpText)
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("papers"), io.Discard)
	assert.Equal(t, []string{"papers"}, exec.calls)
}

func TestRunREPL_ErrorsBecomeNotices(t *testing.T) {
	var out bytes.Buffer

	exec := &fakeExec{err: services.ErrAlreadyVoted}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("up 1 1\nexit\n"), &out)

	require.Len(t, exec.calls, 1)
	assert.Contains(t, out.String(), "You have already voted on this file.")
}

func TestNotice(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{usageError("open <paper#> <file#>"), "Usage: open <paper#> <file#>"},
		{fmt.Errorf("vote: %w", services.ErrAlreadyVoted), "You have already voted on this file."},
		{fmt.Errorf("paper #3: %w", services.ErrUnknownFile), "No such paper or file in the current list. Run: papers"},
		{services.ErrVoteCancelled, "Vote cancelled."},
		{services.ErrVoteInProgress, "A vote for this file is already being sent."},
		{services.ErrDeleteCanceled, "Delete cancelled."},
		{services.ErrNotLoggedIn, "Log in first: admin login"},
		{context.Canceled, "Cancelled."},
		{fmt.Errorf("load: %w", client.ErrUnavailable), "Server unavailable, please try again later."},
		{client.ErrUnauthorized, "Authentication failed."},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, notice(tt.err))
	}
}
