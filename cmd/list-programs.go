package cmd

import (
	"fmt"

	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var listProgramsCmd = &cobra.Command{
	Use:   "list-programs",
	Short: "List all stored programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		programs, err := st.ListPrograms()
		if err != nil {
			return err
		}

		if len(programs) == 0 {
			fmt.Println("No programs stored yet. Use 'forja generate' first.")
			return nil
		}

		for _, p := range programs {
			fmt.Printf("%s - %s (%s, %s)\n", p.CreatedAt.Format("2006-01-02"), p.Name, p.Template, p.Units)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listProgramsCmd)
}
