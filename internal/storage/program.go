package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/forja/internal/models"
)

// StoredProgram is one generated program row. The full document is kept as
// JSON so schema changes in the document never require a migration.
type StoredProgram struct {
	ID        string
	Name      string
	Template  string
	Units     string
	CreatedAt time.Time
	Document  *models.ExportedProgramDocument
}

// SaveProgram persists a generated program under a unique name.
func (s *Storage) SaveProgram(name string, doc *models.ExportedProgramDocument) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("Failed to encode program document: %w", err)
	}

	programID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = s.DB.Exec(
		`INSERT INTO programs (id, name, template, units, document, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		programID, name, doc.Meta.TemplateID, doc.Meta.Units, string(payload), createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("Failed to save program: %w", err)
	}
	return programID, nil
}

// GetProgram loads a stored program by name.
func (s *Storage) GetProgram(name string) (*StoredProgram, error) {
	var p StoredProgram
	var payload, createdAt string

	err := s.DB.QueryRow(
		`SELECT id, name, template, units, document, created_at
         FROM programs WHERE name = ?`, name,
	).Scan(&p.ID, &p.Name, &p.Template, &p.Units, &payload, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("program %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to query program: %w", err)
	}

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse created_at: %w", err)
	}

	var doc models.ExportedProgramDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("Failed to decode program document: %w", err)
	}
	p.Document = &doc
	return &p, nil
}

// ListPrograms returns all stored programs, newest first, without documents.
func (s *Storage) ListPrograms() ([]StoredProgram, error) {
	rows, err := s.DB.Query(`
        SELECT id, name, template, units, created_at
        FROM programs
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query programs: %w", err)
	}
	defer rows.Close()

	var programs []StoredProgram
	for rows.Next() {
		var p StoredProgram
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Template, &p.Units, &createdAt); err != nil {
			return nil, fmt.Errorf("Failed to scan program: %w", err)
		}
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse created_at: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// DeleteProgram removes a stored program by name.
func (s *Storage) DeleteProgram(name string) error {
	res, err := s.DB.Exec(`DELETE FROM programs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("Failed to delete program: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Failed to check deletion: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("program %q not found", name)
	}
	return nil
}
