// Package testutil provides common test utilities and helpers for Healing Guru tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/api"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/checkin"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/flow"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/guru"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/metrics"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/models"
	"github.com/rootedlightwithin-create/Healing-Guru/internal/store"
)

// TestingT is the subset of *testing.T used by the assertion helpers.
type TestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// FirstPicker always picks the first candidate so replies are deterministic.
var FirstPicker = guru.PickerFunc(func(int) int { return 0 })

// NewTestServer creates a test API server with in-memory dependencies,
// deterministic picking and metrics on a private registry.
// This centralizes the test server creation logic used across multiple test files.
func NewTestServer(opts ...api.Option) (*api.Server, store.Store) {
	st := store.NewInMemoryStore()
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	fl := flow.NewConversationFlow(st,
		flow.WithEngine(guru.NewEngine(guru.WithPicker(FirstPicker))),
		flow.WithRecorder(m),
	)
	base := []api.Option{api.WithMetrics(m), api.WithPicker(FirstPicker)}
	return api.NewServer(st, fl, checkin.NewService(st), append(base, opts...)...), st
}

// AssertHTTPStatus checks the HTTP status code and fails the test if it doesn't match.
func AssertHTTPStatus(t TestingT, expected, actual int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected status %d, got %d", context, expected, actual)
	}
}

// AssertJSONResponse decodes JSON response and validates the status field.
func AssertJSONResponse(t TestingT, rr *httptest.ResponseRecorder, expectedStatus models.APIStatus) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
		return nil
	}

	if status, ok := response["status"].(string); ok {
		if status != string(expectedStatus) {
			t.Errorf("expected status '%s', got '%s'", expectedStatus, status)
		}
	} else {
		t.Errorf("response missing or invalid 'status' field")
	}

	return response
}

// CreateHTTPRequest creates an HTTP request with optional JSON body for testing.
func CreateHTTPRequest(t TestingT, method, url string, body interface{}) *http.Request {
	t.Helper()
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to create HTTP request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// Serve runs req through h with an optional session id and returns the recorder.
func Serve(h http.Handler, req *http.Request, sessionID string) *httptest.ResponseRecorder {
	if sessionID != "" {
		req.Header.Set(api.SessionHeader, sessionID)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// MustUnmarshalJSON unmarshals JSON data into target and fails test on error.
func MustUnmarshalJSON(t TestingT, data []byte, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, target); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
}

var _ TestingT = (*testing.T)(nil)
