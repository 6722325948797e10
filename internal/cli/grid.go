package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ibamconsole/internal/domain"
	"ibamconsole/internal/planner"
)

func (a *App) gridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid <programID>",
		Short: "Show a program's schedule grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.planner.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			p := a.planner.Program()
			fmt.Fprintf(a.out, "%s  (%s to %s)\n\n", color.New(color.Bold).Sprint(p.Title), p.StartDate, p.EndDate)
			return renderGrid(a.out, a.planner)
		},
	}
}

// renderGrid prints the grid with slots as rows and weekdays as columns.
// Occupied cells show the course ID, empty cells a dash.
func renderGrid(w io.Writer, p *planner.Planner) error {
	days := domain.WeekDays()
	slots := domain.Slots()
	grid := p.Grid()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := color.New(color.FgCyan, color.Bold)
	occupied := color.New(color.FgGreen)

	fmt.Fprint(tw, header.Sprint("SLOT"))
	for _, day := range days {
		fmt.Fprintf(tw, "\t%s", header.Sprint(string(day)))
	}
	fmt.Fprintln(tw)

	for i, slot := range slots {
		fmt.Fprintf(tw, "%s-%s", slot.Start, slot.End)
		for j := range days {
			if s := grid[i][j]; s != nil {
				fmt.Fprintf(tw, "\t%s", occupied.Sprint(s.CourseID))
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
