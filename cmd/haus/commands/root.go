package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"haus/internal/app"
	"haus/internal/backend"
	"haus/internal/domain"
)

// cli carries flag values and the dependency graph for one invocation.
type cli struct {
	home       string
	backendURL string
	output     string
	logLevel   string
	password   string

	in   *bufio.Reader
	out  io.Writer
	errw io.Writer

	wire *app.Wire
}

// Execute runs the CLI against the process's stdio.
func Execute() error {
	root := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	err := root.Execute()
	if err != nil {
		reportError(os.Stderr, err)
	}
	return err
}

// reportError prints err; backend outages get the unavailable banner.
func reportError(w io.Writer, err error) {
	if backend.IsUnavailable(err) {
		fmt.Fprintf(w, "haus: backend unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(w, "haus: %v\n", err)
}

// NewRootCmd builds the command tree reading from in and writing to out and errw.
func NewRootCmd(in io.Reader, out, errw io.Writer) *cobra.Command {
	c := &cli{in: bufio.NewReader(in), out: out, errw: errw}

	root := &cobra.Command{
		Use:           "haus",
		Short:         "Household chores from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.teardown()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errw)

	pf := root.PersistentFlags()
	pf.StringVar(&c.home, "home", "", "session dir (default ~/.haus, env HAUS_HOME_DIR)")
	pf.StringVar(&c.backendURL, "backend", "", "backend base URL (env HAUS_BACKEND_URL)")
	pf.StringVarP(&c.output, "output", "o", "table", "output format: table, json or yaml")
	pf.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error (env HAUS_LOG_LEVEL)")

	root.AddCommand(
		c.loginCmd(), c.joinCmd(), c.logoutCmd(), c.whoamiCmd(),
		c.choresCmd(), c.completeCmd(),
		c.membersCmd(), c.addChoreCmd(), c.deleteAccountCmd(),
		c.dashboardCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	switch c.output {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.output)
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("home") {
		cfg.Home = c.home
	}
	if flags.Changed("backend") {
		cfg.BackendURL = c.backendURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}

	logger, err := app.InitLogger(cfg.LogLevel, cfg.LogFormat, c.errw)
	if err != nil {
		return err
	}
	c.wire, err = app.NewWire(cmd.Context(), cfg, app.WithLogger(logger))
	return err
}

func (c *cli) teardown() error {
	if c.wire == nil {
		return nil
	}
	err := c.wire.Wait()
	return errors.Join(err, c.wire.Close())
}

// requireSession fails unless someone is logged in.
func (c *cli) requireSession() (domain.Username, error) {
	user, ok := c.wire.Session.Username()
	if !ok {
		return "", errors.New("not logged in; run `haus login <username>` first")
	}
	return user, nil
}

// readPassword returns --password, or the first line of stdin.
func (c *cli) readPassword(prompt string) (string, error) {
	if c.password != "" {
		return c.password, nil
	}
	fmt.Fprint(c.errw, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// formRejected turns the current form error into a command error.
func (c *cli) formRejected() error {
	state := c.wire.Errors.Current()
	if state.IsZero() {
		return nil
	}
	return fmt.Errorf("%s: %s", state.Field, state.Message)
}
