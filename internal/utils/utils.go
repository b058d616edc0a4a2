package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/forja/internal/models"
)

func ParseProgramConfigFromTOML(path string) (*models.ProgramConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg models.ProgramConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// AssessmentInputTOML bundles the inputs an assessment run can carry; each
// command reads only the sections it needs.
type AssessmentInputTOML struct {
	Factors   map[string]models.MuscleFactors       `toml:"factors"`
	Volume    map[string]int                        `toml:"volume"`
	Feedback  map[string]models.PerformanceFeedback `toml:"feedback"`
	Overload  models.OverloadInput                  `toml:"overload"`
	Fatigue   models.FatigueInput                   `toml:"fatigue"`
	Lifestyle models.Lifestyle                      `toml:"lifestyle"`
}

func ParseAssessmentInputFromTOML(path string) (*AssessmentInputTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var in AssessmentInputTOML
	if err := toml.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	return &in, nil
}
