package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var showTMCmd = &cobra.Command{
	Use:   "show-tm",
	Short: "Display the stored training maxes",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		tms, err := st.GetTrainingMaxes()
		if err != nil {
			return fmt.Errorf("failed to load training maxes: %w", err)
		}

		if len(tms) == 0 {
			fmt.Println("No training maxes stored yet. Use 'forja set-tm' first.")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		for _, lift := range models.CanonicalLifts {
			tm, ok := tms[lift]
			if !ok {
				fmt.Printf("%s: %s\n", cyan(lift), yellow("not set"))
				continue
			}
			fmt.Printf("%s: %.1f\n", cyan(lift), tm)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showTMCmd)
}
