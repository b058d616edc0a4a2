package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/fatigue"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var fatigueSave bool

var fatigueCmd = &cobra.Command{
	Use:   "fatigue [file]",
	Short: "Assess fatigue across fuel, nervous, messenger and tissue categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := utils.ParseAssessmentInputFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if in.Overload.Sets == 0 {
			return fmt.Errorf("the [overload] section is required to derive weekly load")
		}

		load := fatigue.WeeklyLoad(in.Overload)
		report := fatigue.Assess(in.Fatigue, load, in.Lifestyle)

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		severityColor := func(level string) string {
			switch level {
			case fatigue.SeverityHigh:
				return yellow(level)
			case fatigue.SeveritySevere:
				return red(level)
			default:
				return green(level)
			}
		}

		for _, category := range []string{"fuel", "nervous", "messengers", "tissues"} {
			c := report.Contributors[category]
			fmt.Printf("\n%s: %.1f [%s]\n", cyan(category), c.Score, severityColor(c.Level))
			fmt.Printf("  %s (recovery: %s)\n", c.Description, c.RecoveryTime)
		}

		state := report.OverallState
		stateLabel := green(state.State)
		if state.State != fatigue.StateNormal {
			stateLabel = red(state.State)
		}
		fmt.Printf("\n%s: %s (risk %s)\n", cyan("Overall state"), stateLabel, state.RiskLevel)
		fmt.Printf("  %s\n", state.Description)
		fmt.Printf("  action: %s\n", state.Action)

		if len(report.Strategies) > 0 {
			fmt.Printf("\n%s\n", cyan("Management strategies"))
			fmt.Println(strings.Repeat("-", 60))
			for _, s := range report.Strategies {
				fmt.Printf("  %s: %s", s.Type, s.Description)
				if s.Duration != "" {
					fmt.Printf(" (%s)", s.Duration)
				}
				fmt.Println()
			}
		}
		fmt.Println()

		if fatigueSave {
			st := storage.NewStorage()
			id, err := st.SaveAssessment(storage.AssessmentFatigue, report)
			if err != nil {
				return fmt.Errorf("failed to save assessment: %w", err)
			}
			fmt.Printf("✅ Fatigue assessment saved (%s)\n", id)
		}
		return nil
	},
}

func init() {
	fatigueCmd.Flags().BoolVar(&fatigueSave, "save", false, "Persist the assessment")
	rootCmd.AddCommand(fatigueCmd)
}
