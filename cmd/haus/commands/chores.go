package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"haus/internal/domain"
)

func (c *cli) choresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chores",
		Short: "List your chores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.requireSession(); err != nil {
				return err
			}
			if err := c.wire.Chores.Refresh(cmd.Context()); err != nil {
				return err
			}
			return c.renderChores(c.wire.Chores.Chores())
		},
	}
}

func (c *cli) completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [chore-id]",
		Short: "Mark a chore as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.requireSession(); err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := c.wire.Chores.Refresh(ctx); err != nil {
				return err
			}
			id := domain.ChoreID(args[0])
			if !hasChore(c.wire.Chores.Chores(), id) {
				fmt.Fprintf(c.errw, "haus: no chore with id %s\n", id)
			}
			if err := c.wire.Chores.Complete(ctx, id); err != nil {
				return err
			}
			if err := c.wire.Chores.Wait(); err != nil {
				return err
			}
			return c.renderChores(c.wire.Chores.Chores())
		},
	}
}

func hasChore(list []domain.Chore, id domain.ChoreID) bool {
	for _, ch := range list {
		if ch.ID == id {
			return true
		}
	}
	return false
}

func (c *cli) renderChores(list []domain.Chore) error {
	return c.render(list, func(p *printer) {
		if len(list) == 0 {
			p.line("No chores. Enjoy the day off.")
			return
		}
		p.row("ID", "CHORE", "DUE", "DESCRIPTION")
		for _, ch := range list {
			due := "-"
			if ch.Deadline != nil {
				due = ch.Deadline.String()
			}
			p.row(ch.ID.String(), ch.Name, due, ch.Description)
		}
	})
}
