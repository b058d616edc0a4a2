package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var showWeekFilter int // Optional week filter, 0 shows all.

var showProgramCmd = &cobra.Command{
	Use:   "show-program [name]",
	Short: "Display a stored program week by week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		prog, err := st.GetProgram(args[0])
		if err != nil {
			return fmt.Errorf("failed to load program: %w", err)
		}

		printProgramSummary(prog.Name, prog.Document)
		return nil
	},
}

func printProgramSummary(name string, doc *models.ExportedProgramDocument) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("\n%s\n", green(strings.ToUpper(name)))
	fmt.Printf("%s: %s (loading option %d, %s)\n",
		cyan("Template"), doc.Meta.TemplateID, doc.Meta.LoadingOption, doc.Meta.Units)
	fmt.Println(strings.Repeat("=", 60))

	for _, week := range doc.Weeks {
		if showWeekFilter != 0 && week.Week != showWeekFilter {
			continue
		}

		label := fmt.Sprintf("Week %d", week.Week)
		if week.Deload {
			label += " (deload)"
		}
		fmt.Printf("\n%s\n", yellow(label))
		fmt.Println(strings.Repeat("-", 60))

		for _, day := range week.Days {
			fmt.Printf("\n%s (TM %.1f)\n", cyan(day.Lift), day.TrainingMax)

			for _, set := range day.Warmups {
				fmt.Printf("  warm-up %3.0f%% x%d  %.1f\n", set.Percent, set.Reps, set.Weight)
			}
			for _, set := range day.Main {
				reps := fmt.Sprintf("%d", set.Reps)
				if set.AMRAP {
					reps += "+"
				}
				fmt.Printf("  main    %3.0f%% x%s  %.1f\n", set.Percent, reps, set.Weight)
			}
			if sup := day.Supplemental; sup != nil {
				fmt.Printf("  %s %s %dx%d @%.0f%%  %.1f\n",
					sup.Type, sup.TargetLift, sup.Sets, sup.Reps, sup.PercentOfTM, sup.Weight)
			}
			for _, item := range day.Assistance {
				fmt.Printf("  assist  %s %dx%s", item.Name, item.Sets, item.Reps)
				if item.LoadHint != "" {
					fmt.Printf(" (%s)", item.LoadHint)
				}
				fmt.Println()
			}
			if day.Conditioning.TemplateID != "" {
				fmt.Printf("  cond    %s (%s, %d sessions/week)\n",
					day.Conditioning.TemplateID, day.Conditioning.Type, day.Conditioning.Sessions)
			}
		}
	}
	fmt.Println()
}

func init() {
	showProgramCmd.Flags().IntVar(&showWeekFilter, "week", 0, "Show only this week (1-4)")
	rootCmd.AddCommand(showProgramCmd)
}
