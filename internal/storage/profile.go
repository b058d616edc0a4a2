package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/misterclayt0n/forja/internal/models"
)

// SetTrainingMax upserts one lift's training max.
func (s *Storage) SetTrainingMax(lift string, trainingMax float64, units string) error {
	if !models.IsCanonicalLift(lift) {
		return fmt.Errorf("unknown lift %q", lift)
	}
	if trainingMax <= 0 {
		return fmt.Errorf("training max must be positive, got %.1f", trainingMax)
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.DB.Exec(
		`INSERT INTO lifter_profiles (lift, training_max, units, updated_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(lift) DO UPDATE SET
            training_max = excluded.training_max,
            units = excluded.units,
            updated_at = excluded.updated_at`,
		lift, trainingMax, units, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("Failed to save training max: %w", err)
	}
	return nil
}

// GetTrainingMaxes returns the stored training maxes keyed by lift.
func (s *Storage) GetTrainingMaxes() (map[string]float64, error) {
	rows, err := s.DB.Query(`SELECT lift, training_max FROM lifter_profiles`)
	if err != nil {
		return nil, fmt.Errorf("Failed to query training maxes: %w", err)
	}
	defer rows.Close()

	tms := make(map[string]float64)
	for rows.Next() {
		var lift string
		var tm float64
		if err := rows.Scan(&lift, &tm); err != nil {
			return nil, fmt.Errorf("Failed to scan training max: %w", err)
		}
		tms[lift] = tm
	}
	return tms, rows.Err()
}

// GetTrainingMax returns one lift's training max, or an error when unset.
func (s *Storage) GetTrainingMax(lift string) (float64, error) {
	var tm float64
	err := s.DB.QueryRow(
		`SELECT training_max FROM lifter_profiles WHERE lift = ?`, lift,
	).Scan(&tm)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no training max stored for %q", lift)
	}
	if err != nil {
		return 0, fmt.Errorf("Failed to query training max: %w", err)
	}
	return tm, nil
}
