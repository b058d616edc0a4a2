package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Assessment kinds.
const (
	AssessmentVolume    = "volume"
	AssessmentOverload  = "overload"
	AssessmentFatigue   = "fatigue"
	AssessmentLandmarks = "landmarks"
)

// StoredAssessment is one saved assessment result, kind-tagged JSON.
type StoredAssessment struct {
	ID        string
	Kind      string
	Result    json.RawMessage
	CreatedAt time.Time
}

// SaveAssessment persists an assessment result of any kind.
func (s *Storage) SaveAssessment(kind string, result any) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("Failed to encode assessment: %w", err)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = s.DB.Exec(
		`INSERT INTO assessments (id, kind, result, created_at) VALUES (?, ?, ?, ?)`,
		id, kind, string(payload), createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("Failed to save assessment: %w", err)
	}
	return id, nil
}

// ListAssessments returns saved assessments newest first, every kind when
// kind is empty.
func (s *Storage) ListAssessments(kind string) ([]StoredAssessment, error) {
	query := `SELECT id, kind, result, created_at FROM assessments ORDER BY created_at DESC`
	var args []any
	if kind != "" {
		query = `SELECT id, kind, result, created_at FROM assessments
         WHERE kind = ? ORDER BY created_at DESC`
		args = append(args, kind)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("Failed to query assessments: %w", err)
	}
	defer rows.Close()

	var out []StoredAssessment
	for rows.Next() {
		var a StoredAssessment
		var result, createdAt string
		if err := rows.Scan(&a.ID, &a.Kind, &result, &createdAt); err != nil {
			return nil, fmt.Errorf("Failed to scan assessment: %w", err)
		}
		a.Result = json.RawMessage(result)
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse created_at: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
