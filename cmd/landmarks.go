package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/misterclayt0n/forja/internal/volume"
	"github.com/spf13/cobra"
)

var (
	landmarksLength int
	landmarksSave   bool
)

var landmarksCmd = &cobra.Command{
	Use:   "landmarks [file]",
	Short: "Compute volume landmarks (MEV/MAV/MRV) from a factors TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := utils.ParseAssessmentInputFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if len(in.Factors) == 0 {
			return fmt.Errorf("no [factors.<muscle>] sections found in %s", args[0])
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		muscles := make([]string, 0, len(in.Factors))
		for m := range in.Factors {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)

		landmarks := make(map[string]volume.Landmark, len(muscles))
		for _, muscle := range muscles {
			lm := volume.ComputeLandmark(muscle, in.Factors[muscle])
			landmarks[muscle] = lm

			fmt.Printf("\n%s: MEV %d, MRV %d\n", cyan(muscle), lm.MEV, lm.MRV)
			for _, w := range lm.Warnings {
				fmt.Printf("  %s %s\n", yellow("warning:"), w)
			}

			var targets []string
			for _, wk := range volume.Progression(lm.MEV, lm.MRV, landmarksLength) {
				label := fmt.Sprintf("w%d:%d", wk.Week, wk.TargetMAV)
				if wk.DeloadRecommended {
					label += " (deload next)"
				}
				targets = append(targets, label)
			}
			fmt.Printf("  MAV targets: %s\n", strings.Join(targets, "  "))
		}
		fmt.Println()

		if landmarksSave {
			st := storage.NewStorage()
			id, err := st.SaveAssessment(storage.AssessmentLandmarks, landmarks)
			if err != nil {
				return fmt.Errorf("failed to save landmarks: %w", err)
			}
			fmt.Printf("✅ Landmarks saved (%s)\n", id)
		}
		return nil
	},
}

func init() {
	landmarksCmd.Flags().IntVar(&landmarksLength, "length", 4, "Mesocycle length in weeks")
	landmarksCmd.Flags().BoolVar(&landmarksSave, "save", false, "Persist the computed landmarks")
	rootCmd.AddCommand(landmarksCmd)
}
