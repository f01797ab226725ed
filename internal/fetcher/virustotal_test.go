package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLIdentifier(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{"http://example.com", "aHR0cDovL2V4YW1wbGUuY29t"},
		{"https://www.google.com/", "aHR0cHM6Ly93d3cuZ29vZ2xlLmNvbS8"},
		{"a?>", "YT8-"},
		{"???", "Pz8_"},
		{"https://example.com/?a=~~~", "aHR0cHM6Ly9leGFtcGxlLmNvbS8_YT1-fn4"},
		{"http://ex.com/ü", "aHR0cDovL2V4LmNvbS_DvA"},
	}

	for _, tc := range testCases {
		got := URLIdentifier(tc.raw)
		assert.Equal(t, tc.want, got, "URLIdentifier(%q)", tc.raw)
		assert.NotContains(t, got, "=")
	}
}

func TestFetchURLReport(t *testing.T) {
	var (
		mu      sync.Mutex
		calls   int
		gotPath string
		gotKey  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-apikey")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"x","type":"url","attributes":{
			"last_analysis_stats":{"malicious":2,"harmless":60,"suspicious":1,"timeout":3},
			"total_votes":{"harmless":5},
			"last_analysis_results":{
				"ESET":{"category":"malicious","engine_name":"ESET","method":"blacklist","result":"phishing"},
				"Fortinet":{"category":"harmless","engine_name":"Fortinet","method":"blacklist","result":null},
				"Acronis":{"category":"undetected","engine_name":"Acronis","method":"blacklist"}
			}}}}`))
	}))
	defer srv.Close()

	client := NewVirusTotalClient("vt-key", srv.URL)
	attrs, err := client.FetchURLReport(context.Background(), "http://example.com")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "/api/v3/urls/aHR0cDovL2V4YW1wbGUuY29t", gotPath)
	assert.Equal(t, "vt-key", gotKey)

	assert.Equal(t, map[string]int{"malicious": 2, "harmless": 60, "suspicious": 1, "timeout": 3}, attrs.LastAnalysisStats)
	assert.Equal(t, map[string]int{"harmless": 5}, attrs.TotalVotes)
	require.Len(t, attrs.LastAnalysisResults, 3)
	require.NotNil(t, attrs.LastAnalysisResults["ESET"].Result)
	assert.Equal(t, "phishing", *attrs.LastAnalysisResults["ESET"].Result)
	assert.Nil(t, attrs.LastAnalysisResults["Fortinet"].Result)
	assert.Nil(t, attrs.LastAnalysisResults["Acronis"].Result)
}

func TestFetchURLReportNonOK(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusNoContent} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"code":"NotFoundError"}}`))
		}))

		client := NewVirusTotalClient("vt-key", srv.URL)
		attrs, err := client.FetchURLReport(context.Background(), "http://example.com")
		srv.Close()

		assert.Nil(t, attrs)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr), "status %d", status)
		assert.Equal(t, status, statusErr.StatusCode)
	}
}

func TestFetchURLReportBadBody(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"no data", `{}`},
		{"no attributes", `{"data":{"id":"x"}}`},
		{"no stats", `{"data":{"attributes":{"last_analysis_results":{}}}}`},
		{"non numeric stats", `{"data":{"attributes":{"last_analysis_stats":{"malicious":"two"}}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewVirusTotalClient("vt-key", srv.URL)
			attrs, err := client.FetchURLReport(context.Background(), "http://example.com")
			assert.Error(t, err)
			assert.Nil(t, attrs)

			var statusErr *StatusError
			assert.False(t, errors.As(err, &statusErr))
		})
	}
}

func TestFetchURLReportTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := NewVirusTotalClient("vt-key", baseURL)
	_, err := client.FetchURLReport(context.Background(), "http://example.com")
	assert.Error(t, err)
}
