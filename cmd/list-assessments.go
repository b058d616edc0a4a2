package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listAssessmentsKind string
	listAssessmentsFull bool // Print the stored JSON result as well.
)

var listAssessmentsCmd = &cobra.Command{
	Use:   "list-assessments",
	Short: "List saved assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		assessments, err := st.ListAssessments(listAssessmentsKind)
		if err != nil {
			return err
		}

		if len(assessments) == 0 {
			fmt.Println("No assessments saved yet. Use the --save flag on an assessment command first.")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		for _, a := range assessments {
			fmt.Printf("%s - %s (%s)\n", a.CreatedAt.Format("2006-01-02 15:04"), cyan(a.Kind), a.ID)
			if listAssessmentsFull {
				fmt.Printf("%s\n", a.Result)
			}
		}
		return nil
	},
}

func init() {
	listAssessmentsCmd.Flags().StringVar(&listAssessmentsKind, "kind", "", "Filter by kind (volume, overload, fatigue or landmarks)")
	listAssessmentsCmd.Flags().BoolVar(&listAssessmentsFull, "full", false, "Print the stored result body")
	rootCmd.AddCommand(listAssessmentsCmd)
}
