package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ibamconsole/internal/domain"
)

func (a *App) sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the sessions of a program",
	}
	cmd.AddCommand(a.sessionAddCmd())
	cmd.AddCommand(a.sessionEditCmd())
	cmd.AddCommand(a.sessionDeleteCmd())
	return cmd
}

// sessionFlags binds the full session form. Add and edit take the same set;
// the form is always submitted whole.
type sessionFlags struct {
	day     string
	slotID  int
	course  string
	teacher string
	room    string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.day, "day", "", "weekday of the grid (Lundi..Samedi)")
	cmd.Flags().IntVar(&f.slotID, "slot", 0, "time slot ID from the catalog")
	cmd.Flags().StringVar(&f.course, "course", "", "course ID")
	cmd.Flags().StringVar(&f.teacher, "teacher", "", "teacher ID")
	cmd.Flags().StringVar(&f.room, "room", "", "room ID")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("slot")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("teacher")
	_ = cmd.MarkFlagRequired("room")
}

func (f *sessionFlags) info() domain.SessionInfo {
	return domain.SessionInfo{
		Day:       domain.WeekDay(f.day),
		SlotID:    f.slotID,
		CourseID:  f.course,
		TeacherID: f.teacher,
		RoomID:    f.room,
	}
}

func (a *App) sessionAddCmd() *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "add <programID>",
		Short: "Place a session on a program's grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.planner.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			session, err := a.planner.AddSession(cmd.Context(), flags.info())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "added session %s on %s %s-%s\n", session.ID, session.Date, session.StartTime, session.EndTime)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *App) sessionEditCmd() *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "edit <programID> <sessionID>",
		Short: "Rewrite a session, possibly moving it to another cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.planner.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			session, err := a.planner.EditSession(cmd.Context(), args[1], flags.info())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "updated session %s, now on %s %s-%s\n", session.ID, session.Date, session.StartTime, session.EndTime)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *App) sessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <programID> <sessionID>",
		Short: "Delete a session from a program",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.planner.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := a.planner.DeleteSession(cmd.Context(), args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted session %s\n", args[1])
			return nil
		},
	}
}
