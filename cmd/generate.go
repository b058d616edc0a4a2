package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/config"
	"github.com/misterclayt0n/forja/internal/engine"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/misterclayt0n/forja/internal/utils"
	"github.com/spf13/cobra"
)

var (
	generateName   string // Override the program name from the config file.
	generateNoSave bool   // Print without persisting.
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a 4-week program from a TOML config and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := utils.ParseProgramConfigFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		if generateName != "" {
			cfg.Name = generateName
		}
		if cfg.Name == "" {
			return fmt.Errorf("program name must be set in the config or via --name")
		}

		// Fields the file leaves unset come from the configured defaults.
		config.ApplyProgramDefaults(cfg, config.LoadOrDefault().Defaults)

		// Fill missing training maxes from the stored profile.
		st := storage.NewStorage()
		stored, err := st.GetTrainingMaxes()
		if err != nil {
			return fmt.Errorf("failed to load training maxes: %w", err)
		}
		if cfg.TrainingMaxes == nil {
			cfg.TrainingMaxes = make(map[string]float64)
		}
		for lift, tm := range stored {
			if _, ok := cfg.TrainingMaxes[lift]; !ok {
				cfg.TrainingMaxes[lift] = tm
			}
		}

		doc, err := engine.AssembleProgram(*cfg)
		if err != nil {
			if verr, ok := engine.AsValidation(err); ok {
				red := color.New(color.FgRed).SprintFunc()
				fmt.Println(red("Invalid program config:"))
				for _, v := range verr.Violations {
					fmt.Printf("  - %s\n", v)
				}
				return fmt.Errorf("%d violation(s) found", len(verr.Violations))
			}
			return err
		}

		if generateNoSave {
			printProgramSummary(cfg.Name, doc)
			return nil
		}

		if _, err := st.SaveProgram(cfg.Name, doc); err != nil {
			return fmt.Errorf("failed to save program: %w", err)
		}

		printProgramSummary(cfg.Name, doc)
		fmt.Printf("✅ Program '%s' generated and saved\n", cfg.Name)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateName, "name", "", "Program name (overrides the config file)")
	generateCmd.Flags().BoolVar(&generateNoSave, "no-save", false, "Print the program without storing it")
	rootCmd.AddCommand(generateCmd)
}
