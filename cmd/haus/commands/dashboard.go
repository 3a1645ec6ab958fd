package commands

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"haus/internal/domain"
)

type dashboard struct {
	User    domain.Username          `json:"user" yaml:"user"`
	Chores  []domain.Chore           `json:"chores" yaml:"chores"`
	Members []domain.HouseholdMember `json:"members" yaml:"members"`
}

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your chores and the household at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.requireSession()
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return c.wire.Chores.Refresh(ctx) })
			g.Go(func() error { return c.wire.Household.Refresh(ctx) })
			if err := g.Wait(); err != nil {
				return err
			}

			d := dashboard{
				User:    user,
				Chores:  c.wire.Chores.Chores(),
				Members: c.wire.Household.Members(),
			}
			return c.render(d, func(p *printer) {
				p.line("Chores for %s", d.User)
				p.row("ID", "CHORE", "DUE")
				for _, ch := range d.Chores {
					due := "-"
					if ch.Deadline != nil {
						due = ch.Deadline.String()
					}
					p.row(ch.ID.String(), ch.Name, due)
				}
				p.line("")
				p.line("Household")
				for _, m := range d.Members {
					p.row(m.Name)
				}
			})
		},
	}
}
