package engine

import (
	"fmt"

	"github.com/misterclayt0n/forja/internal/models"
)

// ConditioningTemplates is the fixed menu the picker chooses from.
var ConditioningTemplates = map[string]models.ConditioningBlock{
	"liss_walk_30": {
		TemplateID: "liss_walk_30",
		Type:       "LISS",
		Modality:   "Walking",
		Minutes:    30,
		Sessions:   2,
		Note:       "Easy pace, after lifting or on off days.",
	},
	"liss_bike_40": {
		TemplateID: "liss_bike_40",
		Type:       "LISS",
		Modality:   "Cycling",
		Minutes:    40,
		Sessions:   2,
	},
	"hiit_hills": {
		TemplateID: "hiit_hills",
		Type:       "HIIT",
		Modality:   "Hill Sprints",
		Minutes:    15,
		Sessions:   2,
		Note:       "Full recovery between sprints.",
	},
	"hiit_prowler": {
		TemplateID: "hiit_prowler",
		Type:       "HIIT",
		Modality:   "Prowler Pushes",
		Minutes:    15,
		Sessions:   2,
	},
	"mixed_2_1": {
		TemplateID: "mixed_2_1",
		Type:       "Mixed",
		Modality:   "Hill Sprints + Walking",
		Sessions:   3,
		Note:       "1 HIIT + 2 LISS sessions, HIIT capped at 2/week.",
	},
}

// PickConditioning chooses a conditioning template from weekly lifting
// frequency. An explicit override always wins; an unknown override id is a
// configuration error rather than a silent fallback.
func PickConditioning(frequency int, override string) (models.ConditioningBlock, error) {
	if override != "" {
		tpl, ok := ConditioningTemplates[override]
		if !ok {
			return models.ConditioningBlock{}, fmt.Errorf("unknown conditioning template %q", override)
		}
		return tpl, nil
	}

	// More lifting days leave less recovery headroom per session but more
	// total slots, so the mixed plan only fires at 4-day frequency.
	switch {
	case frequency >= 4:
		return ConditioningTemplates["mixed_2_1"], nil
	case frequency == 3:
		return ConditioningTemplates["hiit_hills"], nil
	default:
		return ConditioningTemplates["liss_walk_30"], nil
	}
}
