package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/volume"
	"github.com/spf13/cobra"
)

var (
	stimulusMMC        int
	stimulusPump       int
	stimulusDisruption int
)

var stimulusCmd = &cobra.Command{
	Use:   "stimulus",
	Short: "Score a session's stimulus from mind-muscle connection, pump and workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := volume.ScoreStimulus(stimulusMMC, stimulusPump, stimulusDisruption)

		c := color.New(color.FgGreen).SprintFunc()
		switch s.Action {
		case volume.ActionAddSets:
			c = color.New(color.FgYellow).SprintFunc()
		case volume.ActionReduceSets:
			c = color.New(color.FgRed).SprintFunc()
		}

		fmt.Printf("%s\n", c(s.Advice))
		return nil
	},
}

func init() {
	stimulusCmd.Flags().IntVar(&stimulusMMC, "mmc", 0, "Mind-muscle connection (0-3)")
	stimulusCmd.Flags().IntVar(&stimulusPump, "pump", 0, "Pump quality (0-3)")
	stimulusCmd.Flags().IntVar(&stimulusDisruption, "workload", 0, "Workload disruption (0-3)")
	rootCmd.AddCommand(stimulusCmd)
}
