package models

import "time"

// SchemaVersion guards the export document shape: field names and nesting of
// weeks[].days[] are the compatibility surface, renames require a bump.
const SchemaVersion = "1.0.0"

type DocumentMeta struct {
	SchemaVersion  string    `json:"schema_version"`
	CatalogVersion string    `json:"catalog_version"`
	TemplateID     string    `json:"template_id"`
	Units          string    `json:"units"`
	LoadingOption  int       `json:"loading_option"`
	CreatedAt      time.Time `json:"created_at"`
}

// SetPrescription is one resolved set line: weight already rounded,
// reps copied verbatim from the scheme.
type SetPrescription struct {
	Percent float64 `json:"percent"`
	Reps    int     `json:"reps"`
	Weight  float64 `json:"weight"`
	AMRAP   bool    `json:"amrap,omitempty"`
}

type SupplementalBlock struct {
	Type        string  `json:"type"`
	TargetLift  string  `json:"target_lift"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	PercentOfTM float64 `json:"percent_of_tm"`
	Weight      float64 `json:"weight"`
	Units       string  `json:"units"`
}

type AssistanceItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"`
	LoadHint string `json:"load_hint,omitempty"`
}

type ConditioningBlock struct {
	TemplateID string `json:"template_id"`
	Type       string `json:"type"`
	Modality   string `json:"modality"`
	Minutes    int    `json:"minutes,omitempty"`
	Sessions   int    `json:"sessions_per_week"`
	Note       string `json:"note,omitempty"`
}

type ProgramDay struct {
	Lift         string             `json:"lift"`
	TrainingMax  float64            `json:"training_max"`
	Warmups      []SetPrescription  `json:"warmups"`
	Main         []SetPrescription  `json:"main"`
	Supplemental *SupplementalBlock `json:"supplemental,omitempty"`
	Assistance   []AssistanceItem   `json:"assistance"`
	Conditioning ConditioningBlock  `json:"conditioning"`
}

type ProgramWeek struct {
	Week   int          `json:"week"`
	Deload bool         `json:"deload"`
	Days   []ProgramDay `json:"days"`
}

// ExportedProgramDocument is the externally consumed artifact. It is purely
// derived: recomputed on every export, no identity beyond its creation time.
type ExportedProgramDocument struct {
	Meta          DocumentMeta       `json:"meta"`
	TrainingMaxes map[string]float64 `json:"training_maxes"`
	Rounding      Rounding           `json:"rounding"`
	Schedule      Schedule           `json:"schedule"`
	Supplemental  Supplemental       `json:"supplemental"`
	Weeks         []ProgramWeek      `json:"weeks"`
}
