package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_FetchReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/reports/aggregate", r.URL.Path)

		var req api.ReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2025-03", req.Month)
		assert.Empty(t, req.StartDate)

		_ = json.NewEncoder(w).Encode(api.ReportResponse{
			Report: api.Report{
				Title: "March",
				Tallies: api.ReportTallies{
					Announcements: api.TallyGroup{Regular: 1, Alert: 0, Total: 1},
				},
				Items: []api.ReportItem{
					{ID: "a1", Kind: "announcement", Category: "regular", Status: "published"},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	report, err := client.FetchReport(context.Background(), api.ReportRequest{
		Month:  "2025-03",
		Fields: []string{"Announcements"},
	})

	require.NoError(t, err)
	assert.Equal(t, "March", report.Title)
	require.Len(t, report.Items, 1)
}

func TestHTTPClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := client.FetchReport(context.Background(), api.ReportRequest{})

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
	assert.Contains(t, te.Message, "backend unavailable")
}

func TestHTTPClient_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"report": {"tallies"`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := client.FetchReport(context.Background(), api.ReportRequest{})

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Contains(t, te.Message, "malformed response")
}

func TestHTTPClient_InconsistentTalliesAreTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.ReportResponse{
			Report: api.Report{
				Tallies: api.ReportTallies{
					Announcements: api.TallyGroup{Regular: 1, Alert: 1, Total: 5},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := client.FetchReport(context.Background(), api.ReportRequest{})

	var te *TransportError
	require.True(t, errors.As(err, &te))
}
