package staff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type staffBackendClient struct {
	BaseUrl    string
	Resource   string
	HTTPClient *http.Client
}

// NewStaffBackendClient talks to the REST collection of one role, for example
// {baseUrl}/doctors.
func NewStaffBackendClient(baseUrl, resource string, httpClient *http.Client) contracts.EntityOperations {
	return &staffBackendClient{
		BaseUrl:    fmt.Sprintf("%s/%s", baseUrl, resource),
		Resource:   resource,
		HTTPClient: httpClient,
	}
}

func (c *staffBackendClient) Fetch(ctx context.Context, clinicID string) ([]models.Entity, error) {
	query := url.Values{}
	query.Set(constvars.QueryParamClinicID, clinicID)
	endpoint := fmt.Sprintf("%s?%s", c.BaseUrl, query.Encode())

	var entities []models.Entity
	err := c.do(ctx, constvars.MethodGet, endpoint, nil, constvars.StatusOK, &entities)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []models.Entity{}
	}
	return entities, nil
}

func (c *staffBackendClient) Add(ctx context.Context, clinicID string, entity models.Entity) (*models.Entity, error) {
	entity.ClinicID = clinicID

	created := new(models.Entity)
	err := c.do(ctx, constvars.MethodPost, c.BaseUrl, entity, constvars.StatusCreated, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *staffBackendClient) Update(ctx context.Context, clinicID, entityID string, entity models.Entity) (*models.Entity, error) {
	entity.ClinicID = clinicID
	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(entityID))

	updated := new(models.Entity)
	err := c.do(ctx, constvars.MethodPatch, endpoint, entity, constvars.StatusOK, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *staffBackendClient) Delete(ctx context.Context, clinicID, entityID string) error {
	query := url.Values{}
	query.Set(constvars.QueryParamClinicID, clinicID)
	endpoint := fmt.Sprintf("%s/%s?%s", c.BaseUrl, url.PathEscape(entityID), query.Encode())

	return c.do(ctx, constvars.MethodDelete, endpoint, nil, constvars.StatusNoContent, nil)
}

func (c *staffBackendClient) do(ctx context.Context, method, endpoint string, body interface{}, expectedStatus int, out interface{}) error {
	var requestBody io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, requestBody)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrRemoteCall(err, method, endpoint)
	}
	defer resp.Body.Close()

	// some backends answer 200 where 201/204 is expected
	if resp.StatusCode != expectedStatus && resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrRemoteStatus(method, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, c.Resource)
	}
	return nil
}
