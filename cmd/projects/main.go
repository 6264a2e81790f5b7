// Command projects signs in to the registry and browses research projects.
//
// Usage:
//
//	projects [flags] list
//	projects [flags] search <text>
//	projects [flags] show <id>
//	projects [flags] researchers
//	projects [flags] next-id
//	projects [flags] create [--id N] --title T --field F --start YYYY-MM-DD --end YYYY-MM-DD --budget B --lead R
//	projects [flags] update --id N [--title T] [--field F] [--start D] [--end D] [--budget B] [--lead R]
//	projects [flags] remove <id>
//	projects [flags] register --id N --email E --name NAME [--role 1-4]
//
// Credentials come from --email/--password or REGISTRY_EMAIL and
// REGISTRY_PASSWORD. create and update require an admin or editor account;
// remove and register require an admin account. create suggests the next
// free id when --id is omitted. register reads the new account's password
// from REGISTRY_NEW_PASSWORD unless --password is given.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/research-registry/internal/app"
	"github.com/heartmarshall/research-registry/internal/config"
	"github.com/heartmarshall/research-registry/internal/domain"
	"github.com/heartmarshall/research-registry/pkg/ctxutil"
)

var errUsage = errors.New("usage: projects [flags] list|search <text>|show <id>|researchers|next-id|create [flags]|update --id N [flags]|remove <id>|register [flags]")

func main() {
	_ = godotenv.Load()

	emailFlag := flag.String("email", os.Getenv("REGISTRY_EMAIL"), "account email")
	passwordFlag := flag.String("password", os.Getenv("REGISTRY_PASSWORD"), "account password")
	orderFlag := flag.String("order", domain.FieldProjectID, "sort field for list")
	descFlag := flag.Bool("desc", false, "sort descending")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, errUsage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx := ctxutil.NewRequestID(context.Background())
	if cfg.Database.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Database.QueryTimeout)
		defer cancel()
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("start", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	acct, err := a.Accounts.SignIn(ctx, *emailFlag, *passwordFlag)
	if err != nil {
		logger.ErrorContext(ctx, "sign in", slog.String("error", err.Error()))
		a.Close()
		os.Exit(1)
	}
	ctx = ctxutil.WithAccountID(ctx, acct.AccountID)

	order := domain.Order{Field: *orderFlag, Ascending: !*descFlag}
	if err := run(ctx, a, acct, order, flag.Args(), os.Stdout); err != nil {
		code := 1
		if errors.Is(err, errUsage) {
			code = 2
		}
		logger.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
		a.Close()
		os.Exit(code)
	}
}

func run(ctx context.Context, a *app.App, acct *domain.UserAccount, order domain.Order, args []string, out io.Writer) error {
	switch args[0] {
	case "list":
		projects, err := a.Projects.GetAllIncludeOrderBy(ctx, order)
		if err != nil {
			return err
		}
		return printProjects(out, projects)

	case "search":
		projects, err := a.Projects.SearchByText(ctx, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return printProjects(out, projects)

	case "show":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		p, err := a.Projects.GetByIDInclude(ctx, &id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return printProjects(out, []domain.ResearchProject{*p})

	case "researchers":
		researchers, err := a.Projects.ListResearchers(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, r := range researchers {
			fmt.Fprintf(w, "%d\t%s\n", r.ResearcherID, r.FullName)
		}
		return w.Flush()

	case "next-id":
		id, err := a.Projects.NextProjectID(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, id)
		return err

	case "create", "update":
		if !acct.Role.CanWrite() {
			return fmt.Errorf("%s as %s: %w", args[0], acct.Role, domain.ErrForbidden)
		}
		f := newProjectFlags(args[0])
		if err := f.fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		p, err := writeProject(ctx, a.Projects, args[0] == "create", f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "project %d %sd\n", p.ProjectID, args[0])
		return err

	case "register":
		if !acct.Role.CanManageAccounts() {
			return fmt.Errorf("register as %s: %w", acct.Role, domain.ErrForbidden)
		}
		created, err := registerAccount(ctx, a.Accounts, args[1:])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "account %d registered as %s\n", created.AccountID, created.Role)
		return err

	case "remove":
		if !acct.Role.CanDelete() {
			return fmt.Errorf("remove as %s: %w", acct.Role, domain.ErrForbidden)
		}
		id, err := idArg(args)
		if err != nil {
			return err
		}
		p, err := a.Projects.GetByID(ctx, &id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return a.Projects.Remove(ctx, p)

	default:
		return errUsage
	}
}

func idArg(args []string) (int, error) {
	if len(args) != 2 {
		return 0, errUsage
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("project id %q: %w", args[1], domain.ErrValidation)
	}
	return id, nil
}

func printProjects(out io.Writer, projects []domain.ResearchProject) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tFIELD\tSTART\tEND\tBUDGET\tLEAD")
	for _, p := range projects {
		lead := "-"
		if p.LeadResearcher != nil {
			lead = p.LeadResearcher.FullName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ProjectID, p.ProjectTitle, p.ResearchField,
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"),
			p.Budget.StringFixed(2), lead)
	}
	return w.Flush()
}
