package synergy

import (
	"fmt"

	"gradebook-server/config"
	"gradebook-server/models"
	"gradebook-server/util"
)

// SynergyApiClientMock serves the gradebook fixture instead of calling the
// district's Synergy instance.
type SynergyApiClientMock struct {
}

// NewSynergyApiClientMock creates a new instance of SynergyApiClientMock
func NewSynergyApiClientMock() *SynergyApiClientMock {
	return &SynergyApiClientMock{}
}

// GetGradebook reads the fixture gradebook record for any student ID.
func (c *SynergyApiClientMock) GetGradebook(studentID string) (*models.GradebookResponse, error) {
	response, err := util.ReadGradebookResponseFromJSON(config.GetResourcePath(config.GRADEBOOK_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read gradebook response from json")
		return nil, err
	}

	return response, nil
}

// GetGradebookForPeriod reads the fixture record regardless of period.
func (c *SynergyApiClientMock) GetGradebookForPeriod(studentID string, period int) (*models.GradebookResponse, error) {
	return c.GetGradebook(studentID)
}

// SetCredentials is a no-op on the mock.
func (c *SynergyApiClientMock) SetCredentials(apiKey string) {
}
