package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *App) refsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refs",
		Short: "List the reference data the session form draws from",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "departments",
		Short: "List departments",
		RunE: func(c *cobra.Command, _ []string) error {
			items, err := a.api.ListDepartments(c.Context())
			if err != nil {
				return err
			}
			tw := a.refTable("ID", "CODE", "NAME")
			for _, d := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Code, d.Name)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "teachers",
		Short: "List teachers",
		RunE: func(c *cobra.Command, _ []string) error {
			items, err := a.api.ListTeachers(c.Context())
			if err != nil {
				return err
			}
			tw := a.refTable("ID", "NAME", "EMAIL", "SUBJECT")
			for _, t := range items {
				fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", t.ID, t.FirstName, t.LastName, t.Email, t.Subject)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "courses",
		Short: "List courses",
		RunE: func(c *cobra.Command, _ []string) error {
			items, err := a.api.ListCourses(c.Context())
			if err != nil {
				return err
			}
			tw := a.refTable("ID", "CODE", "NAME", "HOURS")
			for _, course := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", course.ID, course.Code, course.Name, course.Hours)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rooms",
		Short: "List rooms",
		RunE: func(c *cobra.Command, _ []string) error {
			items, err := a.api.ListRooms(c.Context())
			if err != nil {
				return err
			}
			tw := a.refTable("ID", "NAME", "CAPACITY", "BUILDING")
			for _, r := range items {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ID, r.Name, r.Capacity, r.Building)
			}
			return tw.Flush()
		},
	})

	return cmd
}

func (a *App) refTable(columns ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	bold := color.New(color.Bold)
	for i, c := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, bold.Sprint(c))
	}
	fmt.Fprintln(tw)
	return tw
}
