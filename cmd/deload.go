package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/misterclayt0n/forja/internal/volume"
	"github.com/spf13/cobra"
)

var deloadKind string

var deloadCmd = &cobra.Command{
	Use:   "deload [file]",
	Short: "Build a one-week deload plan from current volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := utils.ParseAssessmentInputFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		plan, err := volume.DeloadProtocol(deloadKind, in.Volume)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("\n%s - %s (%s)\n", green(plan.Name), plan.Description, plan.Duration)
		for _, t := range plan.Targets {
			fmt.Printf("  %s: %d sets @ %s  (%s)\n",
				cyan(t.MuscleGroup), t.TargetVolume, t.TargetIntensity, t.Note)
		}
		fmt.Printf("\nMonitor: ")
		for i, m := range plan.Monitoring {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(m)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	deloadCmd.Flags().StringVar(&deloadKind, "kind", volume.DeloadVolume, "Deload kind: volume, intensity or complete")
	rootCmd.AddCommand(deloadCmd)
}
