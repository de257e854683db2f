package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/iapapers/internal/client/client"
	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/client/services"
)

const helpText = `Available commands:
  subjects                     list subjects
  addsubject [name]            add a subject
  filter <subject> <semester>  select subject and semester and load papers
  papers                       show the current papers
  up <paper#> <file#>          upvote a file
  down <paper#> <file#>        downvote a file
  open <paper#> <file#>        download a file
  votes                        list the votes cast from this machine
  upload                       submit a paper
  feedback                     send feedback
  admin login|list|delete|logout
  exit | quit`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Subjects(ctx context.Context) error
	AddSubject(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Papers(ctx context.Context) error
	Vote(ctx context.Context, dir models.Direction, args []string) error
	Open(ctx context.Context, args []string) error
	Votes(ctx context.Context) error
	Upload(ctx context.Context) error
	Feedback(ctx context.Context) error
	Admin(ctx context.Context, args []string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit" and
// dispatches them to a. Prompts and notices go to out; the prompt shows
// statusFn. A failed command prints a notice and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "papers %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)

		case "subjects":
			cmdErr = a.Subjects(ctx)

		case "addsubject":
			cmdErr = a.AddSubject(ctx, args)

		case "filter":
			cmdErr = a.Filter(ctx, args)

		case "papers", "l", "list":
			cmdErr = a.Papers(ctx)

		case "up":
			cmdErr = a.Vote(ctx, models.Upvote, args)

		case "down":
			cmdErr = a.Vote(ctx, models.Downvote, args)

		case "open":
			cmdErr = a.Open(ctx, args)

		case "votes":
			cmdErr = a.Votes(ctx)

		case "upload":
			cmdErr = a.Upload(ctx)

		case "feedback":
			cmdErr = a.Feedback(ctx)

		case "admin":
			cmdErr = a.Admin(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, notice(cmdErr))
		}
		if err != nil {
			return
		}
	}
}

// usageError is a malformed command line; its text is the usage hint.
type usageError string

func (e usageError) Error() string { return string(e) }

// notice turns a command error into the message shown to the user.
func notice(err error) string {
	var usage usageError
	switch {
	case errors.As(err, &usage):
		return "Usage: " + string(usage)
	case errors.Is(err, services.ErrAlreadyVoted):
		return "You have already voted on this file."
	case errors.Is(err, services.ErrVoteInProgress):
		return "A vote for this file is already being sent."
	case errors.Is(err, services.ErrUnknownFile):
		return "No such paper or file in the current list. Run: papers"
	case errors.Is(err, services.ErrVoteCancelled):
		return "Vote cancelled."
	case errors.Is(err, services.ErrDeleteCanceled):
		return "Delete cancelled."
	case errors.Is(err, services.ErrNotLoggedIn):
		return "Log in first: admin login"
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, please try again later."
	case errors.Is(err, client.ErrUnauthorized):
		return "Authentication failed."
	default:
		return "Error: " + err.Error()
	}
}
