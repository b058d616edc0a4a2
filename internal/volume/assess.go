package volume

import (
	"fmt"
	"math"
	"sort"

	"github.com/misterclayt0n/forja/internal/models"
)

// Volume status relative to the landmark window.
const (
	StatusBelowMEV = "below_mev"
	StatusOptimal  = "optimal"
	StatusAboveMAV = "above_mav"
	StatusAboveMRV = "above_mrv"
)

// Assessment classifies one muscle group's current weekly volume.
type Assessment struct {
	MuscleGroup    string   `json:"muscle_group"`
	CurrentVolume  int      `json:"current_volume"`
	TargetMAV      int      `json:"target_mav"`
	MEV            int      `json:"mev"`
	MRV            int      `json:"mrv"`
	Status         string   `json:"status"`
	Recommendation string   `json:"recommendation"`
	NextWeek       string   `json:"next_week"`
	Warnings       []string `json:"warnings,omitempty"`
}

// AssessCurrent classifies each tracked muscle's volume against its landmark
// window for the given week. Boundary ties resolve to the lower-risk status:
// a volume exactly at the MAV target is optimal, exactly at MRV is above_mav.
// Muscles without a landmark are skipped. Volume above MRV is reported with a
// warning rather than an error; it is an expected, actionable state.
func AssessCurrent(current map[string]int, landmarks map[string]Landmark, week, mesocycleLength int) map[string]Assessment {
	out := make(map[string]Assessment, len(current))
	for muscle, v := range current {
		lm, ok := landmarks[muscle]
		if !ok {
			continue
		}

		target := MAV(lm.MEV, lm.MRV, week, mesocycleLength)
		a := Assessment{
			MuscleGroup:   muscle,
			CurrentVolume: v,
			TargetMAV:     target,
			MEV:           lm.MEV,
			MRV:           lm.MRV,
			Warnings:      append([]string(nil), lm.Warnings...),
		}

		switch {
		case v < lm.MEV:
			a.Status = StatusBelowMEV
			a.Recommendation = fmt.Sprintf("Increase volume by %d sets minimum", lm.MEV-v)
		case v <= target:
			a.Status = StatusOptimal
			a.Recommendation = "Volume in optimal range for adaptation"
		case v <= lm.MRV:
			a.Status = StatusAboveMAV
			a.Recommendation = "Monitor recovery - approaching MRV"
		default:
			a.Status = StatusAboveMRV
			a.Recommendation = "Reduce volume - risk of overreaching"
			a.Warnings = append(a.Warnings, fmt.Sprintf("current volume %d exceeds MRV %d", v, lm.MRV))
		}

		a.NextWeek = progressionSuggestion(v, lm, week, mesocycleLength)
		out[muscle] = a
	}
	return out
}

func progressionSuggestion(current int, lm Landmark, week, mesocycleLength int) string {
	if week >= mesocycleLength {
		return "End of mesocycle - implement deload week"
	}
	next := MAV(lm.MEV, lm.MRV, week+1, mesocycleLength)
	switch diff := next - current; {
	case diff > 0:
		return fmt.Sprintf("Next week: add %d sets (target %d)", diff, next)
	case diff < 0:
		return fmt.Sprintf("Next week: reduce %d sets (target %d)", -diff, next)
	default:
		return fmt.Sprintf("Next week: maintain %d sets", current)
	}
}

// Adjustment is a proposed landmark revision from performance feedback.
type Adjustment struct {
	NewMEV     int      `json:"new_mev"`
	NewMRV     int      `json:"new_mrv"`
	Reasons    []string `json:"reasons"`
	Confidence string   `json:"confidence"`
}

// AdjustLandmarks revises a landmark from subjective weekly feedback. Each
// signal contributes a fixed delta and the deltas accumulate. The revised MEV
// never drops below 4 sets and the revised MRV never drops below MEV+6, so
// the window stays open no matter how many negative signals stack up.
func AdjustLandmarks(lm Landmark, fb models.PerformanceFeedback) Adjustment {
	var mevDelta, mrvDelta int
	var reasons []string

	if fb.Performance == models.PerformanceDeclining {
		mrvDelta -= 2
		reasons = append(reasons, "Performance declining - reduce MRV")
	}
	if fb.Recovery == models.RecoveryPoor {
		mrvDelta -= 3
		reasons = append(reasons, "Poor recovery - significantly reduce MRV")
	}
	if fb.Soreness == models.SorenessExcessive {
		mrvDelta -= 2
		reasons = append(reasons, "Excessive soreness - reduce volume tolerance")
	}
	if fb.Pump == models.PumpNone {
		mevDelta++
		reasons = append(reasons, "No pump - may need more volume for stimulus")
	}
	if fb.Recovery == models.RecoveryExcellent && fb.Performance == models.PerformanceImproving {
		mrvDelta += 2
		reasons = append(reasons, "Excellent recovery - can handle more volume")
	}

	newMEV := lm.MEV + mevDelta
	if newMEV < 4 {
		newMEV = 4
	}
	newMRV := lm.MRV + mrvDelta
	if newMRV < newMEV+6 {
		newMRV = newMEV + 6
	}

	confidence := "medium"
	if len(reasons) >= 2 {
		confidence = "high"
	}
	return Adjustment{
		NewMEV:     newMEV,
		NewMRV:     newMRV,
		Reasons:    reasons,
		Confidence: confidence,
	}
}

// Stimulus actions.
const (
	ActionAddSets    = "add_sets"
	ActionMaintain   = "maintain"
	ActionReduceSets = "reduce_sets"
)

// Stimulus grades a single session's stimulus quality on a 0-9 scale from
// three 0-3 subjective inputs.
type Stimulus struct {
	Score     int    `json:"score"`
	Advice    string `json:"advice"`
	Action    string `json:"action"`
	SetChange int    `json:"set_change"`
}

// ScoreStimulus sums mind-muscle connection, pump, and workload disruption
// (each clamped to 0-3). Scores of 3 or below call for two extra sets, 4-6
// maintains, 7+ drops a set.
func ScoreStimulus(mmc, pump, disruption int) Stimulus {
	total := clamp03(mmc) + clamp03(pump) + clamp03(disruption)

	s := Stimulus{Score: total}
	switch {
	case total <= 3:
		s.Advice = fmt.Sprintf("Stimulus too low (%d/9) - add 2 sets next session", total)
		s.Action = ActionAddSets
		s.SetChange = 2
	case total <= 6:
		s.Advice = fmt.Sprintf("Stimulus adequate (%d/9) - keep sets the same", total)
		s.Action = ActionMaintain
		s.SetChange = 0
	default:
		s.Advice = fmt.Sprintf("Stimulus excessive (%d/9) - remove 1-2 sets next session", total)
		s.Action = ActionReduceSets
		s.SetChange = -1
	}
	return s
}

func clamp03(v int) int {
	if v < 0 {
		return 0
	}
	if v > 3 {
		return 3
	}
	return v
}

// Deload kinds.
const (
	DeloadVolume    = "volume"
	DeloadIntensity = "intensity"
	DeloadComplete  = "complete"
)

// DeloadTarget is the per-muscle prescription for a deload week.
type DeloadTarget struct {
	MuscleGroup     string `json:"muscle_group"`
	TargetVolume    int    `json:"target_volume"`
	TargetIntensity string `json:"target_intensity"`
	Note            string `json:"note"`
}

// DeloadPlan is a one-week recovery protocol.
type DeloadPlan struct {
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"`
	Targets     []DeloadTarget `json:"targets,omitempty"`
	Monitoring  []string       `json:"monitoring"`
}

// DeloadProtocol builds a one-week deload plan. A volume deload halves sets
// and keeps intensity high; an intensity deload keeps sets and drops load to
// 60-75%; complete rest prescribes no training and carries no targets.
// Unknown kinds are rejected.
func DeloadProtocol(kind string, currentVolume map[string]int) (*DeloadPlan, error) {
	plan := &DeloadPlan{
		Kind:     kind,
		Duration: "1 week",
		Monitoring: []string{
			"Sleep quality improvement",
			"Motivation restoration",
			"Reduced muscle soreness",
			"Improved workout performance",
		},
	}

	switch kind {
	case DeloadVolume:
		plan.Name = "Volume Deload"
		plan.Description = "Reduce volume by 40-60% while maintaining intensity"
		for _, muscle := range sortedKeys(currentVolume) {
			plan.Targets = append(plan.Targets, DeloadTarget{
				MuscleGroup:     muscle,
				TargetVolume:    int(math.Round(float64(currentVolume[muscle]) * 0.5)),
				TargetIntensity: "85-95%",
				Note:            "Focus on movement quality and neural patterns",
			})
		}
	case DeloadIntensity:
		plan.Name = "Intensity Deload"
		plan.Description = "Reduce intensity by 20-30% while maintaining volume"
		for _, muscle := range sortedKeys(currentVolume) {
			plan.Targets = append(plan.Targets, DeloadTarget{
				MuscleGroup:     muscle,
				TargetVolume:    currentVolume[muscle],
				TargetIntensity: "60-75%",
				Note:            "Higher reps, focus on muscle connection",
			})
		}
	case DeloadComplete:
		plan.Name = "Complete Rest"
		plan.Description = "No training for 3-7 days"
		plan.Duration = "3-7 days"
	default:
		return nil, fmt.Errorf("unknown deload kind %q", kind)
	}

	return plan, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
