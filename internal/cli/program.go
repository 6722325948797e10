package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ibamconsole/internal/domain"
)

func (a *App) programCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage schedule programs",
	}
	cmd.AddCommand(a.programListCmd())
	cmd.AddCommand(a.programCreateCmd())
	cmd.AddCommand(a.programDeleteCmd())
	return cmd
}

func (a *App) programListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List programs on the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			programs, err := a.api.ListPrograms(cmd.Context())
			if err != nil {
				return err
			}
			if len(programs) == 0 {
				fmt.Fprintln(a.out, "no programs")
				return nil
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			bold := color.New(color.Bold)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				bold.Sprint("ID"), bold.Sprint("TITLE"), bold.Sprint("DEPARTMENT"), bold.Sprint("START"), bold.Sprint("END"))
			for _, p := range programs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.DepartmentID, p.StartDate, p.EndDate)
			}
			return tw.Flush()
		},
	}
}

func (a *App) programCreateCmd() *cobra.Command {
	var title, department, start, end string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a program and persist it to the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			endDate, err := domain.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
			info := domain.ProgramInfo{
				Title:        title,
				DepartmentID: department,
				StartDate:    startDate,
				EndDate:      endDate,
			}
			if err := a.planner.SetInfo(cmd.Context(), info); err != nil {
				return err
			}
			if err := a.planner.Persist(cmd.Context()); err != nil {
				return err
			}
			p := a.planner.Program()
			fmt.Fprintf(a.out, "created program %s (%s)\n", p.ID, p.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "program title, e.g. \"MIAGE S6\"")
	cmd.Flags().StringVar(&department, "department", "", "department ID")
	cmd.Flags().StringVar(&start, "start", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "range end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func (a *App) programDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <programID>",
		Short: "Delete a program from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.planner.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := a.planner.Remove(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted program %s\n", args[0])
			return nil
		},
	}
}
