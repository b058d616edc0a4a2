package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/misterclayt0n/forja/internal/models"
)

// WriteJSON writes the document as indented JSON, or to stdout when path is
// empty.
func WriteJSON(doc *models.ExportedProgramDocument, path string) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode program document: %w", err)
	}
	payload = append(payload, '\n')

	if path == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
