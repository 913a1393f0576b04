package addressvalidation_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"logistics/internal/adapters/out/addressvalidation"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("US", "Austin", "TX", "78701", []string{"100 Congress Ave"})
	require.NoError(t, err)
	return a
}

func newClient(url string, timeout time.Duration, m *metrics.Metrics) *addressvalidation.Client {
	return addressvalidation.NewClient(addressvalidation.Config{
		Endpoint: url + "/v1:validateAddress",
		APIKey:   "secret",
		Timeout:  timeout,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), m)
}

func TestClient_Validate_CompleteAddress(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1:validateAddress", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"result": {
				"verdict": {"addressComplete": true},
				"address": {
					"postalAddress": {
						"regionCode": "US",
						"locality": "Austin",
						"administrativeArea": "TX",
						"postalCode": "78701-1234",
						"addressLines": ["100 Congress Ave"]
					}
				}
			}
		}`)
	}))
	defer server.Close()
	m := metrics.New(metrics.DefaultConfig())

	verdict, err := newClient(server.URL, time.Second, m).Validate(t.Context(), testAddress(t))

	require.NoError(t, err)
	assert.True(t, verdict.IsValid)
	require.NotNil(t, verdict.Normalized)
	assert.Equal(t, "78701-1234", verdict.Normalized.PostalCode())

	address, ok := gotBody["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "US", address["regionCode"])
	assert.Equal(t, []any{"100 Congress Ave"}, address["addressLines"])
	assert.InDelta(t, 1, testutil.ToFloat64(m.AddressValidations.WithLabelValues(metrics.OutcomeSuccess)), 0)
}

func TestClient_Validate_IncompleteAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"result": {"verdict": {}, "address": {}}}`)
	}))
	defer server.Close()

	verdict, err := newClient(server.URL, time.Second, nil).Validate(t.Context(), testAddress(t))

	require.NoError(t, err)
	assert.False(t, verdict.IsValid)
	assert.Nil(t, verdict.Normalized)
}

func TestClient_Validate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newClient(server.URL, time.Second, nil).Validate(t.Context(), testAddress(t))

	require.ErrorIs(t, err, errs.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "address-validation")
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Validate_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	start := time.Now()
	_, err := newClient(server.URL, 50*time.Millisecond, nil).Validate(t.Context(), testAddress(t))

	require.ErrorIs(t, err, errs.ErrUpstreamFailure)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClient_Validate_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()
	client := newClient(server.URL, time.Second, nil)

	for range 8 {
		_, err := client.Validate(t.Context(), testAddress(t))
		require.ErrorIs(t, err, errs.ErrUpstreamFailure)
	}

	assert.Equal(t, int32(5), calls.Load())
}
