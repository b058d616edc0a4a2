package engine

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/forja/internal/models"
)

// WeeksPerCycle is fixed: three working weeks plus the deload.
const WeeksPerCycle = 4

// ValidateConfig checks every invariant independently and returns the
// complete list of violations; it never stops at the first one.
func ValidateConfig(cfg models.ProgramConfig) []string {
	var violations []string

	for _, lift := range models.CanonicalLifts {
		if cfg.TrainingMaxes[lift] <= 0 {
			violations = append(violations, fmt.Sprintf("training max for %s must be set and positive", lift))
		}
	}

	freq := cfg.Schedule.Frequency
	if freq < 2 || freq > 4 {
		violations = append(violations, fmt.Sprintf("frequency must be 2, 3 or 4 sessions/week, got %d", freq))
	}
	if len(cfg.Schedule.Order) != freq {
		violations = append(violations, fmt.Sprintf("schedule order length %d must match frequency %d", len(cfg.Schedule.Order), freq))
	}
	seen := make(map[string]bool)
	for _, lift := range cfg.Schedule.Order {
		if !models.IsCanonicalLift(lift) {
			violations = append(violations, fmt.Sprintf("schedule contains invalid lift %q", lift))
			continue
		}
		if seen[lift] {
			violations = append(violations, fmt.Sprintf("schedule lists %s more than once", lift))
		}
		seen[lift] = true
	}

	if cfg.Schedule.IncludeWarmups {
		ws := cfg.Schedule.WarmupScheme
		if len(ws.Percentages) == 0 || len(ws.Percentages) != len(ws.Reps) {
			violations = append(violations, "warm-up scheme percentages and reps must be non-empty and equal length")
		}
	}

	switch cfg.Supplemental.Strategy {
	case models.SupplementalNone, "":
	case models.SupplementalBBB:
		if cfg.Supplemental.Sets != 5 || cfg.Supplemental.Reps != 10 {
			violations = append(violations, "bbb supplemental requires 5x10")
		}
		if cfg.Supplemental.PercentOfTM < 50 || cfg.Supplemental.PercentOfTM > 70 {
			violations = append(violations, fmt.Sprintf("bbb percent of TM must be 50-70, got %g", cfg.Supplemental.PercentOfTM))
		}
		if cfg.Supplemental.Pairing != models.PairingSame && cfg.Supplemental.Pairing != models.PairingOpposite {
			violations = append(violations, fmt.Sprintf("bbb pairing must be same or opposite, got %q", cfg.Supplemental.Pairing))
		}
	default:
		violations = append(violations, fmt.Sprintf("unknown supplemental strategy %q", cfg.Supplemental.Strategy))
	}

	if cfg.LoadingOption != 1 && cfg.LoadingOption != 2 {
		violations = append(violations, fmt.Sprintf("loading option must be 1 or 2, got %d", cfg.LoadingOption))
	}

	if cfg.Conditioning != "" {
		if _, ok := ConditioningTemplates[cfg.Conditioning]; !ok {
			violations = append(violations, fmt.Sprintf("unknown conditioning template %q", cfg.Conditioning))
		}
	}

	return violations
}

// AssembleProgram validates the configuration and composes the full 4-week
// exported document. On validation failure it returns a *ValidationError
// carrying every violation; it never reorders or repairs the input.
func AssembleProgram(cfg models.ProgramConfig) (*models.ExportedProgramDocument, error) {
	if violations := ValidateConfig(cfg); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	conditioning, err := PickConditioning(cfg.Schedule.Frequency, cfg.Conditioning)
	if err != nil {
		return nil, err
	}

	weeks := make([]models.ProgramWeek, 0, WeeksPerCycle)
	for wi := 0; wi < WeeksPerCycle; wi++ {
		days := make([]models.ProgramDay, 0, len(cfg.Schedule.Order))
		for _, lift := range cfg.Schedule.Order {
			day, err := buildDay(cfg, lift, wi, conditioning)
			if err != nil {
				return nil, fmt.Errorf("week %d, %s day: %w", wi+1, lift, err)
			}
			days = append(days, day)
		}
		weeks = append(weeks, models.ProgramWeek{
			Week:   wi + 1,
			Deload: wi == DeloadWeekIndex,
			Days:   days,
		})
	}

	return &models.ExportedProgramDocument{
		Meta: models.DocumentMeta{
			SchemaVersion:  models.SchemaVersion,
			CatalogVersion: CatalogVersion,
			TemplateID:     cfg.TemplateID,
			Units:          cfg.Units,
			LoadingOption:  cfg.LoadingOption,
			CreatedAt:      time.Now().UTC(),
		},
		TrainingMaxes: cfg.TrainingMaxes,
		Rounding:      cfg.Rounding,
		Schedule:      cfg.Schedule,
		Supplemental:  cfg.Supplemental,
		Weeks:         weeks,
	}, nil
}

func buildDay(cfg models.ProgramConfig, lift string, weekIndex int, conditioning models.ConditioningBlock) (models.ProgramDay, error) {
	tm := cfg.TrainingMaxes[lift]

	warmups := []models.SetPrescription{}
	if cfg.Schedule.IncludeWarmups {
		var err error
		warmups, err = BuildWarmupSets(tm, cfg.Schedule.WarmupScheme, cfg.Rounding)
		if err != nil {
			return models.ProgramDay{}, err
		}
	}

	main, err := BuildMainSets(tm, weekIndex, cfg.LoadingOption, cfg.Rounding)
	if err != nil {
		return models.ProgramDay{}, err
	}

	supplemental, err := BuildSupplemental(cfg.Supplemental, cfg.TrainingMaxes, lift, cfg.Rounding)
	if err != nil {
		return models.ProgramDay{}, err
	}

	return models.ProgramDay{
		Lift:         lift,
		TrainingMax:  tm,
		Warmups:      warmups,
		Main:         main,
		Supplemental: supplemental,
		Assistance:   SelectAssistance(cfg.TemplateID, lift),
		Conditioning: conditioning,
	}, nil
}
