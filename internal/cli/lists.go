package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shelterdesk/portal/internal/models"
	"github.com/shelterdesk/portal/internal/services"
)

// Species opens the species list. An optional argument is passed through to
// the backend as a search filter.
func (a *App) Species(ctx context.Context, args []string) error {
	search := strings.Join(args, " ")

	pager := services.NewPager(func(ctx context.Context, page, pageSize int) (models.Page[models.Species], error) {
		return a.species.List(ctx, page, pageSize, search)
	}, a.config.PageSize)

	name := "species"
	if search != "" {
		name = fmt.Sprintf("species (search %q)", search)
	}

	return a.reportOpenErr(a.openView(ctx, &listView{
		name:  name,
		pager: pager,
		render: func(w io.Writer) {
			for _, s := range pager.Items() {
				fmt.Fprintf(w, "%s  %-20s breeds: %d\n", s.ID, s.Name, s.BreedCount)
			}
		},
	}))
}

func (a *App) Breeds(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: breeds <speciesID>")
		return nil
	}
	breeds, err := a.species.Breeds(ctx, args[0])
	if err != nil {
		printlnFn("Could not load breeds:", err.Error())
		return err
	}
	for _, b := range breeds {
		printlnFn(b.ID, " ", b.Name)
	}
	return nil
}

// Animals opens the animal list, optionally filtered by status.
func (a *App) Animals(ctx context.Context, args []string) error {
	var filter services.AnimalFilter
	if len(args) > 0 {
		filter.Status = args[0]
	}

	pager := services.NewPager(func(ctx context.Context, page, pageSize int) (models.Page[models.Animal], error) {
		return a.animals.List(ctx, page, pageSize, filter)
	}, a.config.PageSize)

	return a.reportOpenErr(a.openView(ctx, &listView{
		name:  "animals",
		pager: pager,
		render: func(w io.Writer) {
			for _, an := range pager.Items() {
				fmt.Fprintf(w, "%s  %-16s %-12s %s\n", an.ID, an.Name, an.Status, an.SpeciesName)
			}
		},
	}))
}

func (a *App) Volunteers(ctx context.Context) error {
	pager := services.NewPager(func(ctx context.Context, page, pageSize int) (models.Page[models.Volunteer], error) {
		return a.volunteers.List(ctx, page, pageSize)
	}, a.config.PageSize)

	return a.reportOpenErr(a.openView(ctx, &listView{
		name:  "volunteers",
		pager: pager,
		render: func(w io.Writer) {
			for _, v := range pager.Items() {
				fmt.Fprintf(w, "%s  %-24s skills: %s\n", v.ID, v.FullName, strings.Join(v.Profile.Skills, ", "))
			}
		},
	}))
}

func (a *App) Requests(ctx context.Context) error {
	pager := services.NewPager(func(ctx context.Context, page, pageSize int) (models.Page[models.VolunteerRequest], error) {
		return a.volunteers.PendingRequests(ctx, page, pageSize)
	}, a.config.PageSize)

	return a.reportOpenErr(a.openView(ctx, &listView{
		name:  "pending requests",
		pager: pager,
		render: func(w io.Writer) {
			for _, r := range pager.Items() {
				fmt.Fprintf(w, "%s  %-24s %s  %s\n", r.ID, r.FullName, r.CreatedAt.Format("2006-01-02"), r.Message)
			}
		},
	}))
}

func (a *App) Discussions(ctx context.Context) error {
	pager := services.NewPager(func(ctx context.Context, page, pageSize int) (models.Page[models.Discussion], error) {
		return a.discussions.List(ctx, page, pageSize)
	}, a.config.PageSize)

	return a.reportOpenErr(a.openView(ctx, &listView{
		name:  "discussions",
		pager: pager,
		render: func(w io.Writer) {
			for _, d := range pager.Items() {
				fmt.Fprintf(w, "%s  %-32s %d messages, last %s\n", d.ID, d.Topic, d.MessageCount, d.LastMessageAt.Format("2006-01-02 15:04"))
			}
		},
	}))
}

func (a *App) Approve(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: approve <requestID>")
		return nil
	}
	if err := a.volunteers.Approve(ctx, args[0]); err != nil {
		printlnFn("Approve failed:", err.Error())
		return err
	}
	printlnFn("Request approved")
	return nil
}

func (a *App) Reject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: reject <requestID>")
		return nil
	}
	reason, err := getSimpleText(a.reader, "Reason", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.volunteers.Reject(ctx, args[0], reason); err != nil {
		printlnFn("Reject failed:", err.Error())
		return err
	}
	printlnFn("Request rejected")
	return nil
}

func (a *App) reportOpenErr(err error) error {
	if err != nil {
		printlnFn("Could not load list:", err.Error())
	}
	return err
}
