package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// HTTPDirectory asks the user service over HTTP.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
}

var _ Directory = (*HTTPDirectory)(nil)

// NewHTTPDirectory creates a directory for the user service at baseURL.
// timeout bounds each request in addition to the caller's context.
func NewHTTPDirectory(baseURL string, timeout time.Duration) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (d *HTTPDirectory) GetUser(ctx context.Context, id uint) (*Identity, error) {
	return d.fetch(ctx, d.baseURL+"/api/users/"+strconv.FormatUint(uint64(id), 10))
}

func (d *HTTPDirectory) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	return d.fetch(ctx, d.baseURL+"/api/users/lookup?email="+url.QueryEscape(email))
}

func (d *HTTPDirectory) fetch(ctx context.Context, endpoint string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("user lookup returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode user lookup response: %w", err)
	}
	return &identity, nil
}
