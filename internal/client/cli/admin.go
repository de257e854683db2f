package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/iapapers/internal/client/models"
	"github.com/dmitrijs2005/iapapers/internal/common"
)

const adminUsage = "admin login|list|delete <paper#|id>|logout"

// Admin dispatches the admin subcommands.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(adminUsage)
	}

	switch args[0] {
	case "login":
		return a.adminLogin(ctx)
	case "list":
		papers, err := a.admin.List(ctx)
		if err != nil {
			return err
		}
		a.printAdminPapers(papers)
		return nil
	case "delete":
		if len(args) != 2 {
			return usageError(adminUsage)
		}
		return a.adminDelete(ctx, args[1])
	case "logout":
		a.admin.Logout()
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	default:
		return usageError(adminUsage)
	}
}

func (a *App) adminLogin(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	papers, err := a.admin.Login(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful.")
	a.printAdminPapers(papers)
	return nil
}

// adminDelete accepts a number from the last admin list or a paper id.
func (a *App) adminDelete(ctx context.Context, ref string) error {
	id := ref
	if n, err := strconv.Atoi(ref); err == nil {
		papers := a.admin.Papers()
		if n < 1 || n > len(papers) {
			return fmt.Errorf("no paper #%d in the admin list", n)
		}
		id = papers[n-1].ID
	}

	if err := a.admin.Delete(ctx, id, a.confirm); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Paper deleted.")
	return nil
}

func (a *App) printAdminPapers(papers []models.Paper) {
	if len(papers) == 0 {
		fmt.Fprintln(a.out, "No papers submitted.")
		return
	}
	for i, p := range papers {
		fmt.Fprintf(a.out, "[%d] %s  id=%s  files=%d\n", i+1, p, p.ID, len(p.Files))
		if p.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", p.Description)
		}
		for _, f := range p.Files {
			fmt.Fprintf(a.out, "    - %s\n", f.URL)
		}
	}
}
