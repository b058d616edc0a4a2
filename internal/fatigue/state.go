package fatigue

import "github.com/misterclayt0n/forja/internal/models"

// Overall training states, worst first in the decision order.
const (
	StateNormal       = "normal"
	StateFOR          = "functional_overreaching"
	StateNFOR         = "non_functional_overreaching"
	StateOvertraining = "overtraining"
)

// OverallState is the derived training state. It is always computed from the
// four contributor assessments, never supplied directly.
type OverallState struct {
	State       string `json:"state"`
	Description string `json:"description"`
	Action      string `json:"action"`
	RiskLevel   string `json:"risk_level"`
}

// DetermineState collapses the four contributors into one state. The cascade
// checks the worst states first, so a single severe contributor can never be
// masked by three minimal ones.
func DetermineState(fuel, nervous, messengers, tissues Contributor) OverallState {
	all := []Contributor{fuel, nervous, messengers, tissues}

	var severeCount, highCount int
	var maxScore, sum float64
	for _, c := range all {
		if c.Level == SeveritySevere {
			severeCount++
		}
		if c.Level == SeverityHigh {
			highCount++
		}
		if c.Score > maxScore {
			maxScore = c.Score
		}
		sum += c.Score
	}
	avgScore := sum / float64(len(all))

	var st OverallState
	switch {
	case severeCount >= 2 || maxScore > 30:
		st.State = StateOvertraining
		st.Description = "Net-negative state requiring extended recovery"
		st.Action = "Active rest phase (1/4 normal volume) for 4-8 weeks"
	case severeCount >= 1 || highCount >= 2 || maxScore > 25:
		st.State = StateNFOR
		st.Description = "Accidental overreach affecting performance"
		st.Action = "Immediate deload (50% volume) for 1-2 weeks"
	case highCount >= 1 || avgScore > 18:
		st.State = StateFOR
		st.Description = "Intentional overreach before planned deload"
		st.Action = "Continue 1-3 weeks then deload"
	default:
		st.State = StateNormal
		st.Description = "At or below MRV, positive adaptations occurring"
		st.Action = "Continue current training load"
	}

	switch {
	case severeCount >= 1:
		st.RiskLevel = "high"
	case highCount >= 2:
		st.RiskLevel = "moderate"
	default:
		st.RiskLevel = "low"
	}
	return st
}

// Strategy is one fatigue-management intervention. Strategies are appended
// independently per trigger; a bad enough week collects several.
type Strategy struct {
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Protocol    map[string]string `json:"protocol,omitempty"`
	Duration    string            `json:"duration,omitempty"`
	Impact      string            `json:"impact,omitempty"`
}

// ManagementStrategies derives interventions from the overall state and
// lifestyle factors.
func ManagementStrategies(state OverallState, lifestyle models.Lifestyle) []Strategy {
	var strategies []Strategy

	if state.State == StateFOR || state.State == StateNFOR {
		strategies = append(strategies, Strategy{
			Type:        "light_sessions",
			Description: "Low volume, high intensity sessions to maintain adaptations",
			Protocol: map[string]string{
				"volume":    "50-60% of normal",
				"intensity": "80-90% of normal",
				"frequency": "every other planned session",
			},
			Duration: "1-2 weeks",
		})
	}

	if state.State != StateNormal {
		volume := "50% of normal volume"
		duration := "1-2 weeks"
		if state.State == StateOvertraining {
			volume = "25% of normal volume"
			duration = "4-8 weeks"
		}
		strategies = append(strategies, Strategy{
			Type:        "deload",
			Description: "Reduce training volume while holding intensity near normal",
			Protocol: map[string]string{
				"volume":    volume,
				"intensity": "maintain or slightly reduce",
				"focus":     "movement quality and recovery",
			},
			Duration: duration,
		})
	}

	if state.State == StateOvertraining {
		strategies = append(strategies, Strategy{
			Type:        "active_rest",
			Description: "Complete break from intense training",
			Protocol: map[string]string{
				"volume":     "25% of normal volume",
				"intensity":  "40-60%",
				"activities": "light movement, mobility work, recreation",
			},
			Duration: "4-12 weeks depending on severity",
		})
	}

	if lifestyle.SleepHours < 7 {
		strategies = append(strategies, Strategy{
			Type:        "sleep_optimization",
			Description: "Prioritize sleep quantity and quality",
			Protocol: map[string]string{
				"target":      "7-9 hours nightly",
				"consistency": "fixed bedtime",
				"environment": "dark, cool room",
			},
			Impact: "Improves all fatigue categories",
		})
	}

	if lifestyle.Stress >= 7 {
		strategies = append(strategies, Strategy{
			Type:        "stress_management",
			Description: "Reduce external stressors that impair recovery",
			Protocol: map[string]string{
				"methods": "meditation, time management, social support",
			},
			Impact: "Increases MRV and recovery capacity",
		})
	}

	return strategies
}

// RecoveryWindow estimates recovery for one contributor category.
type RecoveryWindow struct {
	Timeframe string   `json:"timeframe"`
	Priority  string   `json:"priority"`
	Methods   []string `json:"methods"`
}

// RecoveryTimeline orders the four categories by how fast they respond to
// intervention: fuel recovers in hours, tissues in months.
func RecoveryTimeline(fuel, nervous, messengers, tissues Contributor) map[string]RecoveryWindow {
	return map[string]RecoveryWindow{
		"fuel": {
			Timeframe: fuel.RecoveryTime,
			Priority:  "immediate",
			Methods:   []string{"Increase carbohydrates", "Post-workout nutrition", "Hydration"},
		},
		"nervous": {
			Timeframe: nervous.RecoveryTime,
			Priority:  "short-term",
			Methods:   []string{"Reduce volume/intensity", "Improve sleep", "Stress management"},
		},
		"messengers": {
			Timeframe: messengers.RecoveryTime,
			Priority:  "medium-term",
			Methods:   []string{"Low-volume phases", "Anti-inflammatory foods", "Hormone support"},
		},
		"tissues": {
			Timeframe: tissues.RecoveryTime,
			Priority:  "long-term",
			Methods:   []string{"Active rest", "Physical therapy", "Load management"},
		},
	}
}

// Report is the complete fatigue assessment.
type Report struct {
	Contributors map[string]Contributor    `json:"contributors"`
	OverallState OverallState              `json:"overall_state"`
	Strategies   []Strategy                `json:"strategies"`
	Timeline     map[string]RecoveryWindow `json:"recovery_timeline"`
}

// Assess runs the four contributor assessors against the weekly load, derives
// the overall state, and attaches management strategies and the recovery
// timeline.
func Assess(in models.FatigueInput, load TrainingLoad, lifestyle models.Lifestyle) Report {
	fuel := AssessFuel(in.Fuel, load)
	nervous := AssessNervous(in.Nervous, load)
	messengers := AssessMessengers(in.Messengers, load)
	tissues := AssessTissues(in.Tissues, load)

	state := DetermineState(fuel, nervous, messengers, tissues)

	return Report{
		Contributors: map[string]Contributor{
			"fuel":       fuel,
			"nervous":    nervous,
			"messengers": messengers,
			"tissues":    tissues,
		},
		OverallState: state,
		Strategies:   ManagementStrategies(state, lifestyle),
		Timeline:     RecoveryTimeline(fuel, nervous, messengers, tissues),
	}
}
