package cmd

import (
	"fmt"

	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var deleteProgramCmd = &cobra.Command{
	Use:   "delete-program [name]",
	Short: "Delete a stored program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		if err := st.DeleteProgram(args[0]); err != nil {
			return fmt.Errorf("Failed to delete program: %w", err)
		}

		fmt.Printf("✅ Program '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteProgramCmd)
}
