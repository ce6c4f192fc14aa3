package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/checklist/domain"
)

// GeocoderClient resolves jurisdictions through an external geocoding service.
// Each call makes exactly one attempt.
type GeocoderClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocoderClient creates a new geocoder client
func NewGeocoderClient(baseURL string, timeout time.Duration) *GeocoderClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GeocoderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type jurisdictionResponse struct {
	JurisdictionID string `json:"jurisdictionId"`
}

// Resolve calls GET {baseURL}/jurisdictions?address=...
func (c *GeocoderClient) Resolve(ctx context.Context, address string) (string, error) {
	u := fmt.Sprintf("%s/jurisdictions?address=%s", c.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call geocoder: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", domain.ErrJurisdictionNotFound
	default:
		return "", fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(body))
	}

	var jr jurisdictionResponse
	if err := json.Unmarshal(body, &jr); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if strings.TrimSpace(jr.JurisdictionID) == "" {
		return "", domain.ErrJurisdictionNotFound
	}
	return jr.JurisdictionID, nil
}
