package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ibamconsole/internal/domain"
	"ibamconsole/internal/planner"
)

var (
	// Version is set at build time
	Version = "dev"
)

// App holds the CLI application state. One App drives one planner; opening a
// program loads it into the planner before the command acts on it.
type App struct {
	cfg     *Config
	api     domain.ScheduleAPI
	planner *planner.Planner
	out     io.Writer
	root    *cobra.Command
}

// NewApp creates a new CLI application talking to the given backend.
func NewApp(cfg *Config, api domain.ScheduleAPI, out io.Writer) *App {
	a := &App{
		cfg:     cfg,
		api:     api,
		planner: planner.New(api, cfg.Timeout()),
		out:     out,
	}

	a.root = &cobra.Command{
		Use:           "ibamctl",
		Short:         "Schedule console for the institute's departments",
		Long:          "ibamctl manages schedule programs (emplois du temps), their sessions, and the reference data they draw from, against a running console backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.root.SetOut(out)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.loginCmd())
	a.root.AddCommand(a.logoutCmd())
	a.root.AddCommand(a.programCmd())
	a.root.AddCommand(a.sessionCmd())
	a.root.AddCommand(a.gridCmd())
	a.root.AddCommand(a.refsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "ibamctl %s\n", Version)
		},
	}
}

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "server: %s\n", a.cfg.Server.URL)
			fmt.Fprintf(a.out, "timeout: %s\n", a.cfg.Timeout())
			if a.cfg.Server.Token == "" {
				fmt.Fprintln(a.out, "token: (none)")
			} else {
				fmt.Fprintln(a.out, "token: set")
			}
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
