// Package aggregator talks to the external service that aggregates report
// items and tallies for a resolved date range. The engine only asks for and
// renders that data; it never computes it from raw records.
package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/edu-tools/board-atlas/pkg/adapters"
	"github.com/edu-tools/board-atlas/pkg/models/api"
	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Client fetches the aggregated report for a built request.
type Client interface {
	FetchReport(ctx context.Context, req api.ReportRequest) (domain.Report, error)
}

// TransportError is any aggregation-service failure: network, non-2xx, or
// malformed payload. It is terminal for the current generation attempt; the
// caller surfaces it with a "try again" action that re-issues the same
// request.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("aggregation service returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("aggregation service unreachable: %s", e.Message)
}

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) FetchReport(ctx context.Context, req api.ReportRequest) (domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		return domain.Report{}, fmt.Errorf("encoding report request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/reports/aggregate", bytes.NewReader(body))
	if err != nil {
		return domain.Report{}, fmt.Errorf("building report request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return domain.Report{}, &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error().
			Int("status", resp.StatusCode).
			Msg("aggregation request failed")
		return domain.Report{}, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	var envelope api.ReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return domain.Report{}, &TransportError{Message: fmt.Sprintf("malformed response: %v", err)}
	}

	report, err := adapters.MapReportResponseToDomain(envelope)
	if err != nil {
		return domain.Report{}, &TransportError{Message: err.Error()}
	}

	logger.Debug().
		Int("items", len(report.Items)).
		Msg("aggregated report fetched")
	return report, nil
}
