package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/forja/internal/engine"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/spf13/cobra"
)

var templateDescriptions = map[string]string{
	engine.TemplateBBB:                "Big But Boring: 5x10 supplemental volume, minimal assistance",
	engine.TemplateTriumvirate:        "Three movements per day: main lift plus two assistance picks",
	engine.TemplatePeriodizationBible: "High assistance volume: three categories per day",
	engine.TemplateBodyweight:         "Assistance restricted to bodyweight movements",
	engine.TemplateJackShit:           "Main lift only, nothing else",
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the known templates and their per-lift assistance",
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		for _, id := range engine.TemplateIDs {
			fmt.Printf("\n%s - %s\n", green(id), templateDescriptions[id])
			fmt.Println(strings.Repeat("-", 60))

			for _, lift := range models.CanonicalLifts {
				items := engine.SelectAssistance(id, lift)
				if len(items) == 0 {
					fmt.Printf("  %s: (none)\n", cyan(lift))
					continue
				}
				names := make([]string, 0, len(items))
				for _, it := range items {
					names = append(names, fmt.Sprintf("%s %dx%s", it.Name, it.Sets, it.Reps))
				}
				fmt.Printf("  %s: %s\n", cyan(lift), strings.Join(names, ", "))
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
