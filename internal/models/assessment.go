package models

const (
	FiberBalanced = "balanced"
	FiberFast     = "fast"
	FiberSlow     = "slow"
)

const (
	AgeBeginner     = "beginner"
	AgeIntermediate = "intermediate"
	AgeAdvanced     = "advanced"
)

// MuscleFactors are the individual inputs that scale the base volume
// landmarks. Scores are 0-10 subjective ratings supplied fresh on each
// assessment; nothing here is persisted by the engine itself.
type MuscleFactors struct {
	FiberType        string  `json:"fiber_type" toml:"fiber_type"`
	TrainingAge      string  `json:"training_age" toml:"training_age"`
	RecoveryScore    float64 `json:"recovery_score" toml:"recovery_score"`
	StressLevel      float64 `json:"stress_level" toml:"stress_level"`
	SleepQuality     float64 `json:"sleep_quality" toml:"sleep_quality"`
	NutritionQuality float64 `json:"nutrition_quality" toml:"nutrition_quality"`
}

const (
	PerformanceDeclining = "declining"
	PerformanceStable    = "stable"
	PerformanceImproving = "improving"

	RecoveryPoor      = "poor"
	RecoveryNormal    = "normal"
	RecoveryExcellent = "excellent"

	SorenessNormal    = "normal"
	SorenessExcessive = "excessive"

	PumpNone   = "none"
	PumpNormal = "normal"
)

// PerformanceFeedback drives landmark adjustment between mesocycles.
type PerformanceFeedback struct {
	Performance string `json:"performance" toml:"performance"`
	Recovery    string `json:"recovery" toml:"recovery"`
	Soreness    string `json:"soreness" toml:"soreness"`
	Pump        string `json:"pump" toml:"pump"`
}

// OverloadInput describes one week of training for disruption scoring.
type OverloadInput struct {
	Sets             int     `json:"sets" toml:"sets"`
	Reps             int     `json:"reps" toml:"reps"`
	Intensity        float64 `json:"intensity" toml:"intensity"`
	Frequency        int     `json:"frequency" toml:"frequency"`
	FailureProximity float64 `json:"failure_proximity" toml:"failure_proximity"` // RIR
}

// FuelInput holds the fuel-store fatigue proxies, all 0-10.
type FuelInput struct {
	GlycogenStores     float64 `json:"glycogen_stores" toml:"glycogen_stores"`
	MuscleFullness     float64 `json:"muscle_fullness" toml:"muscle_fullness"`
	EnergyLevels       float64 `json:"energy_levels" toml:"energy_levels"`
	PostWorkoutFatigue float64 `json:"post_workout_fatigue" toml:"post_workout_fatigue"`
}

type NervousInput struct {
	ForceOutput      float64 `json:"force_output" toml:"force_output"`
	TechniqueQuality float64 `json:"technique_quality" toml:"technique_quality"`
	Motivation       float64 `json:"motivation" toml:"motivation"`
	LearningRate     float64 `json:"learning_rate" toml:"learning_rate"`
	SleepQuality     float64 `json:"sleep_quality" toml:"sleep_quality"`
}

type MessengerInput struct {
	MoodSwings      float64 `json:"mood_swings" toml:"mood_swings"`
	Inflammation    float64 `json:"inflammation" toml:"inflammation"`
	HormoneSymptoms float64 `json:"hormone_symptoms" toml:"hormone_symptoms"`
	RecoveryRate    float64 `json:"recovery_rate" toml:"recovery_rate"`
	Soreness        float64 `json:"soreness" toml:"soreness"`
}

type TissueInput struct {
	JointPain       float64 `json:"joint_pain" toml:"joint_pain"`
	MuscleTightness float64 `json:"muscle_tightness" toml:"muscle_tightness"`
	TendonIssues    float64 `json:"tendon_issues" toml:"tendon_issues"`
	OveruseSymptoms float64 `json:"overuse_symptoms" toml:"overuse_symptoms"`
	InjuryHistory   float64 `json:"injury_history" toml:"injury_history"`
}

type FatigueInput struct {
	Fuel       FuelInput      `json:"fuel" toml:"fuel"`
	Nervous    NervousInput   `json:"nervous" toml:"nervous"`
	Messengers MessengerInput `json:"messengers" toml:"messengers"`
	Tissues    TissueInput    `json:"tissues" toml:"tissues"`
}

// Lifestyle feeds the recovery-enhancement strategies.
type Lifestyle struct {
	SleepHours float64 `json:"sleep_hours" toml:"sleep_hours"`
	Stress     float64 `json:"stress" toml:"stress"` // 0-10
}
