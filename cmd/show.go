package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/render"
	"github.com/abhisek/studyplan/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the latest generated plan",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("day", "", "Show a single day (YYYY-MM-DD)")
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if date, _ := cmd.Flags().GetString("day"); date != "" {
		idx := plan.DayIndex(date)
		if idx < 0 {
			return fmt.Errorf("day %s not in plan", date)
		}
		fmt.Print(render.Day(&plan.Days[idx]))
		return nil
	}

	fmt.Print(render.Plan(plan))
	return nil
}
