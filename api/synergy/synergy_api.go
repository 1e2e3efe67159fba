package synergy

import (
	"gradebook-server/models"
)

// SynergyAPI defines the interface for interacting with the Synergy
// school-information API.
type SynergyAPI interface {
	GetGradebook(studentID string) (*models.GradebookResponse, error)
	GetGradebookForPeriod(studentID string, period int) (*models.GradebookResponse, error)
	SetCredentials(apiKey string)
}
