package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/forja/internal/config"
	"github.com/misterclayt0n/forja/internal/engine"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/spf13/cobra"
)

var (
	tmUnits   string
	tmFromMax bool // Treat the value as a tested 1RM.
	tmRepMax  int  // Treat the value as a rep-max weight, estimate the 1RM.
	tmPercent float64
)

var setTMCmd = &cobra.Command{
	Use:   "set-tm [lift] [weight]",
	Short: "Store a training max for one of the four lifts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lift := args[0]
		if !models.IsCanonicalLift(lift) {
			return fmt.Errorf("unknown lift %q (expected press, bench, squat or deadlift)", lift)
		}

		defaults := config.LoadOrDefault().Defaults
		if !cmd.Flags().Changed("units") {
			tmUnits = defaults.Units
		}
		if !cmd.Flags().Changed("tm-percent") {
			tmPercent = defaults.TMPercent
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q: %w", args[1], err)
		}

		rounding := models.DefaultRounding(tmUnits)
		tm := value
		switch {
		case tmRepMax > 0:
			oneRM := engine.Estimate1RM(value, tmRepMax)
			tm = engine.EffectiveTM(oneRM, tmPercent, rounding)
		case tmFromMax:
			tm = engine.EffectiveTM(value, tmPercent, rounding)
		}

		st := storage.NewStorage()
		if err := st.SetTrainingMax(lift, tm, tmUnits); err != nil {
			return fmt.Errorf("failed to save training max: %w", err)
		}

		fmt.Printf("✅ Training max for %s set to %.1f %s\n", lift, tm, tmUnits)
		return nil
	},
}

func init() {
	setTMCmd.Flags().StringVar(&tmUnits, "units", "lbs", "Weight units (lbs or kg)")
	setTMCmd.Flags().BoolVar(&tmFromMax, "from-1rm", false, "Treat the weight as a tested 1RM and derive the training max")
	setTMCmd.Flags().IntVar(&tmRepMax, "reps", 0, "Treat the weight as a rep max with this many reps, estimate the 1RM first")
	setTMCmd.Flags().Float64Var(&tmPercent, "tm-percent", 90, "Training max as a percent of the 1RM")
	rootCmd.AddCommand(setTMCmd)
}
