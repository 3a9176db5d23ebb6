package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/profile"
	"github.com/abhisek/studyplan/internal/render"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/timetable"
	"github.com/abhisek/studyplan/internal/timetable/runner"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study plan from a profile",
	Long: `Generate a plan from --profile FILE, or from the active saved profile.

The plan is saved as the latest plan unless --no-save is given.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("profile", "", "Path to a profile JSON document")
	generateCmd.Flags().String("start", "", "Plan start date (YYYY-MM-DD)")
	generateCmd.Flags().Int("span", 0, "Number of days to plan (default: profile setting)")
	generateCmd.Flags().Int("revision-every", 0, "Revision cadence in days (default: profile setting)")
	generateCmd.Flags().Bool("all-days", false, "Schedule every weekday, ignoring preferred study days")
	generateCmd.Flags().Bool("no-save", false, "Print the plan without persisting it")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	p, err := loadGenerateProfile(cmd, st)
	if err != nil {
		return err
	}

	opts, err := generateOptions(cmd)
	if err != nil {
		return err
	}

	plan, err := runner.Run(cmd.Context(), p, opts, nil)
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		if err := st.ProfileRepo().Save(p); err != nil {
			return err
		}
		if err := st.PlanRepo().Save(plan); err != nil {
			return err
		}
	}

	fmt.Print(render.Plan(plan))
	return nil
}

// loadGenerateProfile resolves the profile: an explicit document via
// --profile, otherwise the active saved profile.
func loadGenerateProfile(cmd *cobra.Command, st *store.Store) (*profile.Profile, error) {
	if path, _ := cmd.Flags().GetString("profile"); path != "" {
		p, err := profile.Load(path)
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	p, err := st.ProfileRepo().Active()
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "No active profile. Import one with 'studyplan profile import <file>'.")
		return nil, errors.New("no profile to generate from")
	}
	return p, err
}

func generateOptions(cmd *cobra.Command) (timetable.Options, error) {
	var opts timetable.Options
	if s, _ := cmd.Flags().GetString("start"); s != "" {
		t, err := time.Parse(profile.DateLayout, s)
		if err != nil {
			return opts, fmt.Errorf("invalid --start date %q: %w", s, err)
		}
		opts.StartDate = &t
	}
	opts.SpanDays, _ = cmd.Flags().GetInt("span")
	opts.RevisionEvery, _ = cmd.Flags().GetInt("revision-every")
	opts.AllDays, _ = cmd.Flags().GetBool("all-days")
	return opts, nil
}
