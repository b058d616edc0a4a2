package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/misterclayt0n/forja/internal/volume"
	"github.com/spf13/cobra"
)

var (
	volumeWeek   int
	volumeLength int
	volumeSave   bool
)

var volumeCheckCmd = &cobra.Command{
	Use:   "volume-check [file]",
	Short: "Classify current weekly volume against computed landmarks",
	Long: `Reads [factors.<muscle>] and [volume] sections from the TOML file,
computes each muscle's landmark window, and classifies the reported volume.
When [feedback.<muscle>] sections are present, proposed landmark adjustments
are printed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := utils.ParseAssessmentInputFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if len(in.Factors) == 0 || len(in.Volume) == 0 {
			return fmt.Errorf("input needs [factors.<muscle>] and [volume] sections")
		}

		landmarks := make(map[string]volume.Landmark, len(in.Factors))
		for muscle, factors := range in.Factors {
			landmarks[muscle] = volume.ComputeLandmark(muscle, factors)
		}

		assessments := volume.AssessCurrent(in.Volume, landmarks, volumeWeek, volumeLength)

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		muscles := make([]string, 0, len(assessments))
		for m := range assessments {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)

		for _, muscle := range muscles {
			a := assessments[muscle]

			status := a.Status
			switch a.Status {
			case volume.StatusOptimal:
				status = green(a.Status)
			case volume.StatusAboveMAV:
				status = yellow(a.Status)
			case volume.StatusBelowMEV, volume.StatusAboveMRV:
				status = red(a.Status)
			}

			fmt.Printf("\n%s: %d sets [%s]  (MEV %d, MAV %d, MRV %d)\n",
				cyan(muscle), a.CurrentVolume, status, a.MEV, a.TargetMAV, a.MRV)
			fmt.Printf("  %s\n", a.Recommendation)
			fmt.Printf("  %s\n", a.NextWeek)
			for _, w := range a.Warnings {
				fmt.Printf("  %s %s\n", yellow("warning:"), w)
			}

			if fb, ok := in.Feedback[muscle]; ok {
				adj := volume.AdjustLandmarks(landmarks[muscle], fb)
				fmt.Printf("  adjusted: MEV %d -> %d, MRV %d -> %d (%s confidence)\n",
					a.MEV, adj.NewMEV, a.MRV, adj.NewMRV, adj.Confidence)
				for _, r := range adj.Reasons {
					fmt.Printf("    - %s\n", r)
				}
			}
		}
		fmt.Println()

		if volumeSave {
			st := storage.NewStorage()
			id, err := st.SaveAssessment(storage.AssessmentVolume, assessments)
			if err != nil {
				return fmt.Errorf("failed to save assessment: %w", err)
			}
			fmt.Printf("✅ Volume assessment saved (%s)\n", id)
		}
		return nil
	},
}

func init() {
	volumeCheckCmd.Flags().IntVar(&volumeWeek, "week", 1, "Current mesocycle week")
	volumeCheckCmd.Flags().IntVar(&volumeLength, "length", 4, "Mesocycle length in weeks")
	volumeCheckCmd.Flags().BoolVar(&volumeSave, "save", false, "Persist the assessment")
	rootCmd.AddCommand(volumeCheckCmd)
}
