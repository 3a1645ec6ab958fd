package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"haus/internal/domain"
)

func (c *cli) loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Log in with an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := c.readPassword("Password: ")
			if err != nil {
				return err
			}

			c.wire.Auth.ShowLogin()
			sess, err := c.wire.Auth.SubmitLogin(cmd.Context(), domain.Username(args[0]), password)
			if err != nil {
				return err
			}
			if err := c.formRejected(); err != nil {
				return err
			}
			return c.render(sess, func(p *printer) {
				p.line("Logged in as %s", sess.Username)
			})
		},
	}
	cmd.Flags().StringVar(&c.password, "password", "", "password (read from stdin when omitted)")
	return cmd
}

func (c *cli) joinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [username]",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := c.readPassword("Choose a password: ")
			if err != nil {
				return err
			}

			c.wire.Auth.ShowCreateAccount()
			sess, err := c.wire.Auth.CreateAccount(cmd.Context(), domain.Username(args[0]), password)
			if err != nil {
				return err
			}
			if err := c.formRejected(); err != nil {
				return err
			}
			return c.render(sess, func(p *printer) {
				p.line("Welcome, %s", sess.Username)
			})
		},
	}
	cmd.Flags().StringVar(&c.password, "password", "", "password (read from stdin when omitted)")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.wire.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			return c.render(c.wire.Session.Current(), func(p *printer) {
				p.line("Logged out")
			})
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := c.wire.Session.Current()
			return c.render(sess, func(p *printer) {
				if !sess.Authenticated {
					p.line("Not logged in")
					return
				}
				p.line("%s", sess.Username)
			})
		},
	}
}

func (c *cli) deleteAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.requireSession()
			if err != nil {
				return err
			}
			password, err := c.readPassword(fmt.Sprintf("Password for %s: ", user))
			if err != nil {
				return err
			}

			c.wire.Household.OpenDeleteAccount()
			deleted, err := c.wire.Household.DeleteAccount(cmd.Context(), password)
			if err != nil {
				return err
			}
			if !deleted {
				return c.formRejected()
			}
			return c.render(c.wire.Session.Current(), func(p *printer) {
				p.line("Deleted account %s", user)
			})
		},
	}
	cmd.Flags().StringVar(&c.password, "password", "", "password (read from stdin when omitted)")
	return cmd
}
