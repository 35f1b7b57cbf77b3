package patients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type patientBackendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewPatientBackendClient(baseUrl string, httpClient *http.Client) contracts.PatientBackend {
	return &patientBackendClient{
		BaseUrl:    fmt.Sprintf("%s/%s", baseUrl, constvars.ResourcePatients),
		HTTPClient: httpClient,
	}
}

func (c *patientBackendClient) FindByClinic(ctx context.Context, clinicID string) ([]models.PatientRecord, error) {
	query := url.Values{}
	query.Set(constvars.QueryParamClinicID, clinicID)
	endpoint := fmt.Sprintf("%s?%s", c.BaseUrl, query.Encode())

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrRemoteCall(err, constvars.MethodGet, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrRemoteStatus(constvars.MethodGet, endpoint, resp.StatusCode)
	}

	var records []models.PatientRecord
	err = json.NewDecoder(resp.Body).Decode(&records)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}
	return records, nil
}
