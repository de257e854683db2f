package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/iapapers/internal/client/models"
)

// Upload asks for the paper details and submits them.
func (a *App) Upload(ctx context.Context) error {
	subject, err := getSimpleText(a.reader, "Enter subject (name or number)", a.out)
	if err != nil {
		return err
	}
	semester, err := getSimpleText(a.reader, "Enter semester (1-8)", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}
	files, err := getMultiline(a.reader, "Enter file paths (images or PDF), one per line", a.out)
	if err != nil {
		return err
	}

	req := models.UploadRequest{
		Subject:     a.resolveSubject(strings.TrimSpace(subject)),
		Semester:    semester,
		Description: description,
		Files:       splitLines(files),
	}

	res, err := a.upload.Upload(ctx, req)
	if err != nil {
		return err
	}
	msg := "Paper submitted successfully!"
	if res.Message != "" {
		msg += " " + res.Message
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func splitLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Feedback asks for an optional name and email and a message and sends them.
func (a *App) Feedback(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name (optional)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Your email (optional)", a.out)
	if err != nil {
		return err
	}
	message, err := getMultiline(a.reader, "Your message", a.out)
	if err != nil {
		return err
	}

	reply, err := a.feedback.Send(ctx, models.Feedback{Name: name, Email: email, Message: message})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, reply)
	return nil
}
