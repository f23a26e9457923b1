package transport

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/netvista-io/cellular-agent/internal/constants"
	"github.com/netvista-io/cellular-agent/internal/environment"
	"github.com/netvista-io/cellular-agent/internal/errs"
)

type Service struct {
	client *resty.Client
}

func NewService(env environment.Environment) *Service {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s", env.Controller)).
		SetTimeout(constants.RequestTimeout).
		SetHeader(constants.APIKeyHeader, env.APIKey).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: !env.VerifySSL}) //nolint:gosec // gateways ship self-signed certificates

	// Close connection after each request.
	// Failover can renumber the gateway's uplinks, a kept-alive connection may
	// end up pointing at a dead path.
	client.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
		r.SetHeader("Connection", "close")
		return nil
	})

	return &Service{
		client: client,
	}
}

// Get issues an authenticated GET and decodes the JSON body into result.
// No retries here: retry policy belongs to the poller.
func (s *Service) Get(ctx context.Context, path string, result any) (err error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("Get %s: %v: %w", path, err, errs.ErrUnreachable)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("Get %s: %d %s: %w", path, resp.StatusCode(), resp.Status(), errs.ErrAuth)
	case resp.IsError():
		return fmt.Errorf("Get %s: %d %s: %w", path, resp.StatusCode(), resp.Status(), errs.ErrProtocol)
	}

	// Decode manually so a malformed body is distinguishable from a network
	// failure.
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("Get %s: %v: %w", path, err, errs.ErrProtocol)
	}

	return nil
}
