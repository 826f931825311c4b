package s0_data

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/pkg/httputil"
)

// HTTPSource downloads the CSV dataset from a URL
type HTTPSource struct {
	url    string
	client *httputil.Client
}

// NewHTTPSource creates a new remote CSV source
func NewHTTPSource(url string, client *httputil.Client) *HTTPSource {
	return &HTTPSource{url: url, client: client}
}

// Name returns the source label used in logs and the load report
func (s *HTTPSource) Name() string {
	return "http:" + s.url
}

// Read downloads the whole body, then parses it as CSV
func (s *HTTPSource) Read(ctx context.Context) ([]contracts.RawRow, error) {
	body, err := s.client.Download(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrDataUnavailable, err)
	}
	return ReadCSV(ctx, s.Name(), bytes.NewReader(body))
}
