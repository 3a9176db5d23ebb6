package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved profiles",
}

var profileImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and save a profile document, making it active",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileImport,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE:  runProfileList,
}

var profileUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Make a saved profile the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUse,
}

var profileSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a ready-to-edit example profile document",
	RunE:  runProfileSample,
}

func init() {
	profileCmd.AddCommand(profileImportCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileSampleCmd)
}

func runProfileImport(cmd *cobra.Command, args []string) error {
	p, err := profile.Load(args[0])
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.ProfileRepo()
	if err := repo.Save(p); err != nil {
		return err
	}
	if err := repo.SetActive(p.ID); err != nil {
		return err
	}
	fmt.Printf("Imported profile %q (%s), now active.\n", p.Name, p.ID)
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	infos, err := st.ProfileRepo().List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No saved profiles.")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %s  (updated %s)\n", info.ID, info.Name, info.UpdatedAt.Format("2006-01-02"))
	}
	return nil
}

func runProfileUse(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.ProfileRepo().SetActive(args[0]); err != nil {
		return err
	}
	fmt.Println("Active profile set to", args[0])
	return nil
}

func runProfileSample(cmd *cobra.Command, args []string) error {
	out, err := json.MarshalIndent(profile.Sample(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode sample profile: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
