package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/profile"
	"github.com/abhisek/studyplan/internal/render"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/timetable"
)

var rebalanceCmd = &cobra.Command{
	Use:   "rebalance",
	Short: "Move a missed day's sessions into the following days",
	Long: `Mark the study sessions of --missed DATE as missed and relocate them
into the rest capacity of subsequent days. A date outside the plan
leaves it unchanged.`,
	RunE: runRebalance,
}

func init() {
	rebalanceCmd.Flags().String("missed", "", "Date of the missed day (YYYY-MM-DD)")
	_ = rebalanceCmd.MarkFlagRequired("missed")
}

func runRebalance(cmd *cobra.Command, args []string) error {
	missedVal, _ := cmd.Flags().GetString("missed")
	missed, err := time.Parse(profile.DateLayout, missedVal)
	if err != nil {
		return fmt.Errorf("invalid --missed date %q: %w", missedVal, err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	plan, err := st.PlanRepo().Latest()
	if errors.Is(err, store.ErrNotFound) {
		return errors.New("no plan to rebalance; run 'studyplan generate' first")
	}
	if err != nil {
		return err
	}

	rebalanced := timetable.Rebalance(plan, missed)
	if err := st.PlanRepo().Save(rebalanced); err != nil {
		return err
	}

	fmt.Print(render.Plan(rebalanced))
	return nil
}
