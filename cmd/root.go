package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forja",
	Short: "CLI 5/3/1 program generator with volume and fatigue assessment",
}

func Execute() error {
	return rootCmd.Execute()
}
