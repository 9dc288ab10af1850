package sheets

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"libdash/config"
	"libdash/infras/otel"
	"libdash/shared/constant"
	"libdash/shared/failure"
)

const bookingsAltKey = "bookings"

// Credential is the upstream login endpoint's verdict on a
// username/password pair.
type Credential struct {
	OK       bool
	Username string
	Role     string
	Message  string
}

// Client fetches booking, directory, and resource rows from the
// sheet-backed upstream API.
type Client interface {
	FetchBookings(ctx context.Context) ([]Record, error)
	FetchLibraries(ctx context.Context) ([]Record, error)
	FetchFacilities(ctx context.Context) ([]Record, error)
	FetchResources(ctx context.Context) ([]Record, error)
	VerifyCredentials(ctx context.Context, username, password string) (Credential, error)
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(config *config.Config, otel otel.Otel) Client {
	timeout := time.Duration(config.Upstream.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &clientImpl{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		otel: otel,
	}
}

func (c *clientImpl) FetchBookings(ctx context.Context) (records []Record, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".FetchBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.fetchRecords(ctx, c.config.Upstream.BookingsURL, bookingsAltKey)
}

func (c *clientImpl) FetchLibraries(ctx context.Context) (records []Record, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".FetchLibraries")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.fetchRecords(ctx, c.config.Upstream.LibrariesURL, constant.Empty)
}

func (c *clientImpl) FetchFacilities(ctx context.Context) (records []Record, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".FetchFacilities")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.fetchRecords(ctx, c.config.Upstream.FacilitiesURL, constant.Empty)
}

func (c *clientImpl) FetchResources(ctx context.Context) (records []Record, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".FetchResources")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.fetchRecords(ctx, c.config.Upstream.ResourcesURL, constant.Empty)
}

func (c *clientImpl) fetchRecords(ctx context.Context, endpoint, altKey string) ([]Record, error) {
	payload, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	records, err := ExtractRecords(payload, altKey)
	if err != nil {
		log.Error().Str("endpoint", endpoint).Msg("Upstream returned an unrecognized payload shape")

		return nil, err
	}

	return records, nil
}

// VerifyCredentials checks a username/password pair against the upstream
// login endpoint. Transport failures are reported as a connection error so
// the caller can distinguish them from rejected credentials; a rejection
// carries the upstream message when one is given.
func (c *clientImpl) VerifyCredentials(ctx context.Context, username, password string) (credential Credential, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".VerifyCredentials")
	defer scope.End()
	defer scope.TraceIfError(err)

	loginURL, err := url.Parse(c.config.Upstream.LoginURL)
	if err != nil {
		return Credential{}, fmt.Errorf("failed to parse login URL: %w", err)
	}

	query := loginURL.Query()
	query.Set("username", username)
	query.Set("password", password)
	loginURL.RawQuery = query.Encode()

	payload, err := c.get(ctx, loginURL.String())
	if err != nil {
		return Credential{}, failure.ConnectionError
	}

	var result struct {
		Success  bool   `json:"success"`
		Username string `json:"username"`
		Role     string `json:"role"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		return Credential{}, failure.InvalidDataFormat
	}

	return Credential{
		OK:       result.Success,
		Username: result.Username,
		Role:     result.Role,
		Message:  result.Message,
	}, nil
}

func (c *clientImpl) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to reach upstream")

		return nil, fmt.Errorf("failed to reach upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure.BadGateway(fmt.Sprintf("upstream returned status %d", resp.StatusCode))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return payload, nil
}
