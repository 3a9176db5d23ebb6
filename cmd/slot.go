package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/render"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/timetable"
)

var doneCmd = &cobra.Command{
	Use:   "done <slot-id>",
	Short: "Mark a study or revision slot done (or pending with --undo)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

var moveCmd = &cobra.Command{
	Use:   "move <slot-id>",
	Short: "Move a slot to another day of the plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runMove,
}

func init() {
	doneCmd.Flags().Bool("undo", false, "Set the slot back to pending")
	moveCmd.Flags().String("to", "", "Target day (YYYY-MM-DD)")
	_ = moveCmd.MarkFlagRequired("to")
}

func runDone(cmd *cobra.Command, args []string) error {
	status := timetable.StatusDone
	if undo, _ := cmd.Flags().GetBool("undo"); undo {
		status = timetable.StatusPending
	}
	return mutateLatestPlan(cmd, func(plan *timetable.Plan) error {
		return timetable.MarkSlot(plan, args[0], status)
	})
}

func runMove(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("to")
	return mutateLatestPlan(cmd, func(plan *timetable.Plan) error {
		return timetable.MoveSlot(plan, args[0], target)
	})
}

// mutateLatestPlan loads the latest plan, applies the mutation to a deep
// copy, saves and renders the result.
func mutateLatestPlan(cmd *cobra.Command, mutate func(*timetable.Plan) error) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	plan, err := st.PlanRepo().Latest()
	if errors.Is(err, store.ErrNotFound) {
		return errors.New("no plan yet; run 'studyplan generate' first")
	}
	if err != nil {
		return err
	}

	updated := plan.Clone()
	if err := mutate(updated); err != nil {
		return err
	}
	if err := st.PlanRepo().Save(updated); err != nil {
		return err
	}

	fmt.Print(render.Summaries(updated))
	return nil
}
