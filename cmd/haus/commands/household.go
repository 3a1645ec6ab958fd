package commands

import (
	"github.com/spf13/cobra"

	"haus/internal/domain"
)

func (c *cli) membersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List household members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.wire.Household.Refresh(cmd.Context()); err != nil {
				return err
			}
			return c.renderMembers(c.wire.Household.Members())
		},
	}
}

func (c *cli) addChoreCmd() *cobra.Command {
	var (
		description string
		frequency   int
		duration    int
	)
	cmd := &cobra.Command{
		Use:   "add-chore [name]",
		Short: "Create a household chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.requireSession(); err != nil {
				return err
			}

			c.wire.Household.OpenAddChore()
			err := c.wire.Household.AddChore(cmd.Context(), domain.NewChore{
				Name:            args[0],
				Description:     description,
				FrequencyDays:   frequency,
				DurationMinutes: duration,
			})
			if err != nil {
				return err
			}
			if err := c.wire.Household.Wait(); err != nil {
				return err
			}
			return c.renderChores(c.wire.Chores.Chores())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&description, "description", "d", "", "what the chore involves")
	f.IntVar(&frequency, "frequency", domain.DefaultFrequencyDays, "repeat every N days")
	f.IntVar(&duration, "duration", domain.DefaultDurationMinutes, "expected minutes")
	return cmd
}

func (c *cli) renderMembers(list []domain.HouseholdMember) error {
	return c.render(list, func(p *printer) {
		p.row("NAME", "ID")
		for _, m := range list {
			p.row(m.Name, m.UserID.String())
		}
	})
}
