package util

import (
	"encoding/json"
	"fmt"
	"os"

	"gradebook-server/models"
)

// ReadGradebookResponseFromJSON loads a raw GradebookResponse from JSON on disk.
func ReadGradebookResponseFromJSON(filePath string) (*models.GradebookResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.GradebookResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GradebookResponse: %w", err)
	}
	return &resp, nil
}

// ReadStudentIds loads a slice of student IDs from JSON on disk.
func ReadStudentIds(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal student IDs: %w", err)
	}
	return ids, nil
}
