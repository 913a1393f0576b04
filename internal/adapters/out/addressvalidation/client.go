// Package addressvalidation checks destination addresses with the Google Address
// Validation API (v1:validateAddress).
package addressvalidation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"
	"logistics/internal/pkg/resilience"
)

const (
	ServiceName     = "address-validation"
	DefaultEndpoint = "https://addressvalidation.googleapis.com/v1:validateAddress"
	DefaultTimeout  = 5 * time.Second
)

type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client implements ports.AddressValidator. Every call is bounded by Config.Timeout
// and goes through a circuit breaker; transport failures, non-2xx answers and an
// open breaker are all reported as errs.UpstreamFailureError.
type Client struct {
	endpoint   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewClient(config Config, logger *slog.Logger, m *metrics.Metrics) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		endpoint:   config.Endpoint,
		apiKey:     config.APIKey,
		timeout:    config.Timeout,
		httpClient: &http.Client{Timeout: config.Timeout},
		breaker:    resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig(ServiceName), logger, m),
		logger:     logger.With("component", "addressvalidation"),
		metrics:    m,
	}
}

type postalAddress struct {
	RegionCode         string   `json:"regionCode"`
	Locality           string   `json:"locality,omitempty"`
	AdministrativeArea string   `json:"administrativeArea,omitempty"`
	PostalCode         string   `json:"postalCode,omitempty"`
	AddressLines       []string `json:"addressLines"`
}

type validateRequest struct {
	Address postalAddress `json:"address"`
}

type validateResponse struct {
	Result struct {
		Verdict struct {
			AddressComplete bool `json:"addressComplete"`
		} `json:"verdict"`
		Address struct {
			PostalAddress *postalAddress `json:"postalAddress"`
		} `json:"address"`
	} `json:"result"`
}

func (c *Client) Validate(ctx context.Context, address kernel.Address) (ports.AddressVerdict, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var resp validateResponse
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.call(ctx, address, &resp)
	})
	if err != nil {
		c.metrics.RecordAddressValidation(metrics.OutcomeFailure)
		c.logger.WarnContext(ctx, "address validation failed", "error", err)
		return ports.AddressVerdict{}, errs.NewUpstreamFailureErrorWithCause(ServiceName, err)
	}

	verdict := ports.AddressVerdict{IsValid: resp.Result.Verdict.AddressComplete}
	if pa := resp.Result.Address.PostalAddress; pa != nil && pa.RegionCode != "" {
		normalized := kernel.RestoreAddress(pa.RegionCode, pa.Locality, pa.AdministrativeArea, pa.PostalCode, pa.AddressLines)
		verdict.Normalized = &normalized
	}

	if verdict.IsValid {
		c.metrics.RecordAddressValidation(metrics.OutcomeSuccess)
	} else {
		c.metrics.RecordAddressValidation(metrics.OutcomeRejected)
	}
	return verdict, nil
}

func (c *Client) call(ctx context.Context, address kernel.Address, out *validateResponse) error {
	body, err := json.Marshal(validateRequest{Address: postalAddress{
		RegionCode:         address.RegionCode(),
		Locality:           address.Locality(),
		AdministrativeArea: address.AdministrativeArea(),
		PostalCode:         address.PostalCode(),
		AddressLines:       address.AddressLines(),
	}})
	if err != nil {
		return err
	}

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}
	q := endpoint.Query()
	q.Set("key", c.apiKey)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", res.StatusCode, bytes.TrimSpace(snippet))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
