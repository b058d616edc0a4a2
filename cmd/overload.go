package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/fatigue"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var overloadSave bool

var overloadCmd = &cobra.Command{
	Use:   "overload [file]",
	Short: "Score homeostatic disruption for a training week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := utils.ParseAssessmentInputFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if in.Overload.Sets == 0 {
			return fmt.Errorf("no [overload] section found in %s", args[0])
		}

		d := fatigue.ScoreDisruption(in.Overload)
		load := fatigue.WeeklyLoad(in.Overload)

		cyan := color.New(color.FgCyan).SprintFunc()
		levelColor := color.New(color.FgGreen).SprintFunc()
		switch d.Level {
		case fatigue.LevelHigh:
			levelColor = color.New(color.FgYellow).SprintFunc()
		case fatigue.LevelExcessive:
			levelColor = color.New(color.FgRed).SprintFunc()
		}

		fmt.Printf("\n%s: %.1f [%s]\n", cyan("Disruption score"), d.Score, levelColor(d.Level))
		fmt.Printf("  %s\n", d.Description)
		fmt.Printf("  recovery: %s\n", d.RecoveryTime)
		fmt.Printf("  breakdown: volume %.1f, intensity %.0f, frequency %.0f, failure %.0f\n",
			d.Breakdown["volume"], d.Breakdown["intensity"], d.Breakdown["frequency"], d.Breakdown["failure"])
		fmt.Printf("\n%s: %.0f (%s intensity, %d sets/session)\n\n",
			cyan("Weekly load"), load.WeeklyLoad, load.RelativeIntensity, load.SetsPerSession)

		if overloadSave {
			st := storage.NewStorage()
			id, err := st.SaveAssessment(storage.AssessmentOverload, d)
			if err != nil {
				return fmt.Errorf("failed to save assessment: %w", err)
			}
			fmt.Printf("✅ Overload assessment saved (%s)\n", id)
		}
		return nil
	},
}

func init() {
	overloadCmd.Flags().BoolVar(&overloadSave, "save", false, "Persist the assessment")
	rootCmd.AddCommand(overloadCmd)
}
