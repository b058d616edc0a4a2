package cmd

import (
	"fmt"

	"github.com/misterclayt0n/forja/internal/export"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOut  string // JSON output path, empty prints to stdout.
	exportXLSX string // Optional xlsx output path.
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export a stored program as JSON (and optionally xlsx)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		prog, err := st.GetProgram(args[0])
		if err != nil {
			return fmt.Errorf("failed to load program: %w", err)
		}

		if exportXLSX != "" {
			if err := export.WriteXLSX(prog.Document, exportXLSX); err != nil {
				return err
			}
			fmt.Printf("✅ Workbook written to %s\n", exportXLSX)
			if exportOut == "" {
				return nil
			}
		}

		if err := export.WriteJSON(prog.Document, exportOut); err != nil {
			return err
		}
		if exportOut != "" {
			fmt.Printf("✅ Program written to %s\n", exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write JSON to this file instead of stdout")
	exportCmd.Flags().StringVar(&exportXLSX, "xlsx", "", "Also write an xlsx workbook to this file")
	rootCmd.AddCommand(exportCmd)
}
