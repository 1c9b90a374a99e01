// Package cli implements the terminal portal: a REPL over the application
// services, with per-view pagination and interactive prompts.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shelterdesk/portal/internal/api"
	"github.com/shelterdesk/portal/internal/config"
	"github.com/shelterdesk/portal/internal/logging"
	"github.com/shelterdesk/portal/internal/services"
	"github.com/shelterdesk/portal/internal/session"
)

// pagerCtl is the non-generic control surface of a services.Pager, enough
// for the REPL to flip pages of whatever view is active.
type pagerCtl interface {
	LoadPage(ctx context.Context, n int) error
	SetPage(ctx context.Context, n int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page() int
	TotalPages() int
	TotalCount() int
	Err() error
}

// listView is the currently open list: its pager plus a renderer for the
// loaded items.
type listView struct {
	name   string
	pager  pagerCtl
	render func(w io.Writer)
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session session.Reader

	auth          services.AuthService
	species       services.SpeciesService
	animals       services.AnimalService
	volunteers    services.VolunteerService
	discussions   services.DiscussionService
	files         services.FileService
	notifications services.NotificationService

	reader *bufio.Reader
	view   *listView
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	store := session.NewStore()

	apiClient, err := api.NewClient(cfg.APIBaseURL, store, log, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	fileClient, err := api.NewClient(cfg.FileServiceBaseURL, store, log, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	auth := services.NewAuthService(apiClient, store, log)
	apiClient.SetRefresher(auth)
	fileClient.SetRefresher(auth)

	return &App{
		config:        cfg,
		log:           log,
		session:       store,
		auth:          auth,
		species:       services.NewSpeciesService(apiClient),
		animals:       services.NewAnimalService(apiClient),
		volunteers:    services.NewVolunteerService(apiClient),
		discussions:   services.NewDiscussionService(apiClient),
		files:         services.NewFileService(fileClient, nil),
		notifications: services.NewNotificationService(cfg.NotificationWSURL, store, log),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) getStatus() string {
	if user, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", user.UserName)
	}
	return "(guest)"
}

// Run bootstraps the session from the refresh cookie (best effort) and
// enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.auth.Refresh(ctx); err != nil {
		a.log.Debug(ctx, "no session to restore", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// openView loads the first page of v and makes it the active list.
func (a *App) openView(ctx context.Context, v *listView) error {
	if err := v.pager.LoadPage(ctx, 1); err != nil {
		return err
	}
	a.view = v
	a.printView()
	return nil
}

func (a *App) printView() {
	v := a.view
	if v == nil {
		return
	}
	v.render(os.Stdout)
	fmt.Printf("-- %s: page %d of %d (%d total) --\n",
		v.name, v.pager.Page(), v.pager.TotalPages(), v.pager.TotalCount())
}

// flipPage applies fn to the active view's pager. Failed loads keep the
// previous page on screen.
func (a *App) flipPage(ctx context.Context, fn func(pagerCtl) error) error {
	if a.view == nil {
		printlnFn("No list is open. Try: species, animals, volunteers, requests, discussions")
		return nil
	}
	if err := fn(a.view.pager); err != nil {
		printlnFn("Could not load page, showing the last loaded one:", err.Error())
	}
	a.printView()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	return a.flipPage(ctx, func(p pagerCtl) error { return p.Next(ctx) })
}

func (a *App) Prev(ctx context.Context) error {
	return a.flipPage(ctx, func(p pagerCtl) error { return p.Prev(ctx) })
}

func (a *App) Goto(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: page <n>")
		return nil
	}
	n, err := parsePositiveInt(args[0])
	if err != nil {
		printlnFn("Page must be a positive number")
		return nil
	}
	return a.flipPage(ctx, func(p pagerCtl) error { return p.SetPage(ctx, n) })
}
