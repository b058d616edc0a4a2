package models

const (
	LiftSquat    = "squat"
	LiftBench    = "bench"
	LiftDeadlift = "deadlift"
	LiftPress    = "press"
)

// CanonicalLifts is the only set of lift names the engine accepts,
// in the classic 4-day order (press first).
var CanonicalLifts = []string{LiftPress, LiftDeadlift, LiftBench, LiftSquat}

func IsCanonicalLift(name string) bool {
	for _, l := range CanonicalLifts {
		if l == name {
			return true
		}
	}
	return false
}

const (
	RoundNearest = "nearest"
	RoundUp      = "up"
	RoundDown    = "down"
)

const (
	UnitsLbs = "lbs"
	UnitsKg  = "kg"
)

// Rounding is applied to every derived weight, never to percentages or reps.
type Rounding struct {
	Increment float64 `json:"increment" toml:"increment"`
	Mode      string  `json:"mode" toml:"mode"`
	Units     string  `json:"units" toml:"units"`
}

// DefaultRounding returns the conventional increment for the unit system.
func DefaultRounding(units string) Rounding {
	if units == UnitsKg {
		return Rounding{Increment: 2.5, Mode: RoundNearest, Units: UnitsKg}
	}
	return Rounding{Increment: 5, Mode: RoundNearest, Units: UnitsLbs}
}

type WarmupScheme struct {
	Percentages []float64 `json:"percentages" toml:"percentages"`
	Reps        []int     `json:"reps" toml:"reps"`
}

// DefaultWarmupScheme is the Wendler 40/50/60 x 5/5/3 ramp.
func DefaultWarmupScheme() WarmupScheme {
	return WarmupScheme{
		Percentages: []float64{40, 50, 60},
		Reps:        []int{5, 5, 3},
	}
}

type Schedule struct {
	Frequency      int          `json:"frequency" toml:"frequency"`
	Order          []string     `json:"order" toml:"order"`
	IncludeWarmups bool         `json:"include_warmups" toml:"include_warmups"`
	WarmupScheme   WarmupScheme `json:"warmup_scheme" toml:"warmup_scheme"`
}

const (
	SupplementalNone = "none"
	SupplementalBBB  = "bbb"
)

const (
	PairingSame     = "same"
	PairingOpposite = "opposite"
)

type Supplemental struct {
	Strategy    string  `json:"strategy" toml:"strategy"`
	Sets        int     `json:"sets" toml:"sets"`
	Reps        int     `json:"reps" toml:"reps"`
	PercentOfTM float64 `json:"percent_of_tm" toml:"percent_of_tm"`
	Pairing     string  `json:"pairing" toml:"pairing"`
}

// ProgramConfig is the fully resolved input to program assembly: the
// presentation layer (or a TOML file) fills it in, the engine only reads it.
type ProgramConfig struct {
	Name          string             `json:"name" toml:"name"`
	TemplateID    string             `json:"template_id" toml:"template"`
	LoadingOption int                `json:"loading_option" toml:"loading_option"`
	Units         string             `json:"units" toml:"units"`
	TrainingMaxes map[string]float64 `json:"training_maxes" toml:"training_maxes"`
	Rounding      Rounding           `json:"rounding" toml:"rounding"`
	Schedule      Schedule           `json:"schedule" toml:"schedule"`
	Supplemental  Supplemental       `json:"supplemental" toml:"supplemental"`

	// Conditioning is an optional template id override; empty means
	// "pick from weekly frequency".
	Conditioning string `json:"conditioning,omitempty" toml:"conditioning"`
}
