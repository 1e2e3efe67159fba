package synergy

import (
	"net/url"
	"strconv"

	"gradebook-server/api"
	"gradebook-server/models"
)

// SynergyApiClient embeds the common HTTPClient
type SynergyApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewSynergyApiClient creates a new instance of SynergyApiClient
func NewSynergyApiClient(httpClient *api.HTTPClient) *SynergyApiClient {
	return &SynergyApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key sent with every request.
func (c *SynergyApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

func (c *SynergyApiClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + c.apiKey}
}

// GetGradebook retrieves the raw gradebook record for a student's current
// grading period.
func (c *SynergyApiClient) GetGradebook(studentID string) (*models.GradebookResponse, error) {
	var response models.GradebookResponse
	err := c.Request("GET", "/students/"+studentID+"/gradebook", c.headers(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetGradebookForPeriod retrieves the raw gradebook record for a specific
// grading period index.
func (c *SynergyApiClient) GetGradebookForPeriod(studentID string, period int) (*models.GradebookResponse, error) {
	query := url.Values{}
	query.Set("reportPeriod", strconv.Itoa(period))

	var response models.GradebookResponse
	err := c.Request("GET", "/students/"+studentID+"/gradebook", c.headers(), query, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
