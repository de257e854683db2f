package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	var parts []string
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if a.admin != nil && a.admin.LoggedIn() {
		parts = append(parts, "admin")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root loads the subject list, starts the connectivity watcher and runs the
// REPL until the user leaves.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to the IA papers CLI (type 'help' for commands)")

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	// Passive load: a failure is logged by the service and the list stays empty.
	if err := a.browse.LoadSubjects(ctx); err == nil {
		a.printSubjects()
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
